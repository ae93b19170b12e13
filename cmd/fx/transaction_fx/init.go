package transaction_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"insura/internal/api/controllers"
	"insura/internal/repositories"
	"insura/internal/services"
)

var Module = fx.Provide(
	provideTransactionRepo, provideDashboardRepo,
	provideTransactionService, provideDashboardService,
	provideTransactionController)

func provideTransactionRepo(db *gorm.DB) repositories.TransactionRepository {
	return repositories.NewTransactionRepository(db)
}

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

func provideTransactionService(txnRepo repositories.TransactionRepository) services.TransactionServiceInterface {
	return services.NewTransactionService(txnRepo)
}

func provideDashboardService(dashboardRepo repositories.DashboardRepository) services.DashboardServiceInterface {
	return services.NewDashboardService(dashboardRepo)
}

func provideTransactionController(
	transactionService services.TransactionServiceInterface,
	dashboardService services.DashboardServiceInterface,
) *controllers.TransactionController {
	return controllers.NewTransactionController(transactionService, dashboardService)
}
