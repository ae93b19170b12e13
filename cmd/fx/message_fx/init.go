package message_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"insura/internal/api/controllers"
	"insura/internal/repositories"
	"insura/internal/services"
)

var Module = fx.Provide(
	provideMessageRepo, provideMessageService, provideMessageController)

func provideMessageRepo(db *gorm.DB) repositories.MessageRepository {
	return repositories.NewMessageRepository(db)
}

func provideMessageService(messageRepo repositories.MessageRepository, accountRepo repositories.AccountRepository) services.MessageServiceInterface {
	return services.NewMessageService(messageRepo, accountRepo)
}

func provideMessageController(messageService services.MessageServiceInterface) *controllers.MessageController {
	return controllers.NewMessageController(messageService)
}
