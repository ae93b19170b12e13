package claim_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"insura/internal/api/controllers"
	"insura/internal/repositories"
	"insura/internal/services"
)

var Module = fx.Provide(
	provideClaimRepo, providePaymentRepo, provideClaimService, provideClaimController)

func provideClaimRepo(db *gorm.DB) repositories.ClaimRepository {
	return repositories.NewClaimRepository(db)
}

func providePaymentRepo(db *gorm.DB) repositories.PaymentRepository {
	return repositories.NewPaymentRepository(db)
}

func provideClaimService(
	claimRepo repositories.ClaimRepository,
	policyRepo repositories.PolicyRepository,
	subRepo repositories.SubscriptionRepository,
	paymentRepo repositories.PaymentRepository,
) services.ClaimServiceInterface {
	return services.NewClaimService(claimRepo, policyRepo, subRepo, paymentRepo)
}

func provideClaimController(claimService services.ClaimServiceInterface) *controllers.ClaimController {
	return controllers.NewClaimController(claimService)
}
