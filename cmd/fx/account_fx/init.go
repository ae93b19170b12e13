package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"insura/internal/api/controllers"
	"insura/internal/repositories"
	"insura/internal/services"
	mem "insura/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountRepo, provideTokenDenylist, provideAccountService, provideAccountController)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideTokenDenylist() mem.TokenDenylist {
	return mem.NewDenylistedTokens()
}

func provideAccountService(accountRepo repositories.AccountRepository, denylist mem.TokenDenylist) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, denylist)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
