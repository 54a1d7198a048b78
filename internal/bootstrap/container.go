package bootstrap

import (
	"time"

	"member-portal-be/internal/config"
	"member-portal-be/internal/controller"
	"member-portal-be/internal/pkg/logger"
	"member-portal-be/internal/repository/implementation"
	"member-portal-be/internal/repository/memory"
	"member-portal-be/internal/service"
	"member-portal-be/pkg/faq"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController controller.IChatController

	// Exposed for graceful shutdown
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Repositories
	faqRepo := implementation.NewFaqRepository(db)
	contextRepo := memory.NewContextRepository(
		time.Duration(cfg.Chat.ContextTTLMinutes)*time.Minute,
		time.Duration(cfg.Chat.ChoiceTTLMinutes)*time.Minute,
		time.Duration(cfg.Chat.SweepMinutes)*time.Minute,
	)

	// 3. Engine + Services
	catalogue := service.NewFaqCatalogue(faqRepo, sysLogger)
	engine := faq.NewEngine(catalogue, contextRepo, sysLogger)
	chatService := service.NewChatService(engine, faqRepo, sysLogger)

	// 4. Controllers
	return &Container{
		ChatController: controller.NewChatController(chatService),
		Logger:         sysLogger,
	}
}
