package bootstrap

import (
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"ytchat-web/internal/config"
	"ytchat-web/internal/constant"
	"ytchat-web/internal/controller"
	"ytchat-web/internal/pkg/logger"
	"ytchat-web/internal/repository/memory"
	"ytchat-web/internal/service"
	"ytchat-web/internal/websocket"
	"ytchat-web/pkg/gateway"
)

// Sessions idle this long are purged along with their threads.
const sessionTTL = 1 * time.Hour

type Container struct {
	// Controllers
	VideoController  controller.IVideoController
	ChatController   controller.IChatController
	StatusController controller.IStatusController

	// Background services (exposed for main.go to run)
	MonitorService  service.IMonitorService
	ConsumerService service.IConsumerService

	// WebSockets
	WebSocketHub *websocket.Hub

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	statusLogger := logger.NewIsolatedLogger(cfg.App.StatusLogFilePath)

	// 2. Gateway to the RAG backend
	backendGateway := gateway.NewClient(
		cfg.Backend.BaseURL,
		cfg.Backend.RequestTimeout,
		cfg.Backend.HealthTimeout,
		sysLogger,
	)

	// 3. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	publisherService := service.NewPublisherService(pubSub, constant.StatusChangedTopic)

	// 4. WebSocket hub for connectivity pushes
	hub := websocket.NewHub(statusLogger)

	// 5. Services
	sessionRepo := memory.NewSessionRepository(sessionTTL)
	videoService := service.NewVideoService(backendGateway, sessionRepo, sysLogger)
	chatService := service.NewChatService(backendGateway, sessionRepo, sysLogger)
	monitorService := service.NewMonitorService(backendGateway, publisherService, sysLogger, cfg.Backend.HealthInterval)
	consumerService := service.NewConsumerService(pubSub, constant.StatusChangedTopic, hub, statusLogger)

	// 6. Controllers
	return &Container{
		VideoController:  controller.NewVideoController(videoService),
		ChatController:   controller.NewChatController(chatService),
		StatusController: controller.NewStatusController(monitorService),

		MonitorService:  monitorService,
		ConsumerService: consumerService,

		WebSocketHub: hub,
		Logger:       sysLogger,
	}
}
