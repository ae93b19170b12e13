package subscription_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"insura/internal/api/controllers"
	"insura/internal/repositories"
	"insura/internal/services"
)

var Module = fx.Provide(
	provideSubscriptionRepo, provideSubscriptionService, provideSubscriptionController)

func provideSubscriptionRepo(db *gorm.DB) repositories.SubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideSubscriptionService(policyRepo repositories.PolicyRepository, subRepo repositories.SubscriptionRepository) services.SubscriptionServiceInterface {
	return services.NewSubscriptionService(policyRepo, subRepo)
}

func provideSubscriptionController(subscriptionService services.SubscriptionServiceInterface) *controllers.SubscriptionController {
	return controllers.NewSubscriptionController(subscriptionService)
}
