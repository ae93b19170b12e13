package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"insura/internal/api/controllers"
	"insura/internal/repositories"
	"insura/internal/services"
)

var Module = fx.Provide(
	provideCategoryRepo, providePolicyRepo, provideCatalogService, provideCatalogController)

func provideCategoryRepo(db *gorm.DB) repositories.CategoryRepository {
	return repositories.NewCategoryRepository(db)
}

func providePolicyRepo(db *gorm.DB) repositories.PolicyRepository {
	return repositories.NewPolicyRepository(db)
}

func provideCatalogService(categoryRepo repositories.CategoryRepository, policyRepo repositories.PolicyRepository) services.CatalogServiceInterface {
	return services.NewCatalogService(categoryRepo, policyRepo)
}

func provideCatalogController(catalogService services.CatalogServiceInterface) *controllers.CatalogController {
	return controllers.NewCatalogController(catalogService)
}
