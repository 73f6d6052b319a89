package bootstrap

import (
	"context"
	"log"

	"focuscam-be/internal/config"
	"focuscam-be/internal/controller"
	"focuscam-be/internal/handler"
	"focuscam-be/internal/pkg/companion"
	"focuscam-be/internal/pkg/logger"
	"focuscam-be/internal/pkg/mailer"
	"focuscam-be/internal/repository/memory"
	"focuscam-be/internal/repository/unitofwork"
	"focuscam-be/internal/service"
	"focuscam-be/internal/websocket"

	pktNats "focuscam-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	OAuthController     controller.IOAuthController
	SessionController   controller.ISessionController
	DashboardController controller.IDashboardController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Streaming
	StreamHandler *handler.StreamHandler
	WebSocketHub  *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	companionNotifier := companion.NewNotifier(cfg.Companion.CallbackURL, sysLogger)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/stream.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	rowCache := memory.NewRowCache()

	publisherService := service.NewPublisherService(cfg.App.ReportTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.ReportTopic,
		uowFactory,
		rowCache,
		natsPub,
	)

	authService := service.NewAuthService(uowFactory, emailService, natsPub, companionNotifier)
	oauthService := service.NewOAuthService(uowFactory, companionNotifier)
	sessionService := service.NewSessionService(uowFactory, publisherService, rowCache)

	// 3.5 Row Streaming
	streamService := service.NewStreamService(sessionService, natsSub, wsHub, wsLogger)
	if natsSub != nil {
		go streamService.Start()
	}

	streamHandler := handler.NewStreamHandler(wsHub, wsLogger)

	// 4. Controllers
	return &Container{
		StreamHandler: streamHandler,
		WebSocketHub:  wsHub,

		AuthController:      controller.NewAuthController(authService),
		OAuthController:     controller.NewOAuthController(oauthService),
		SessionController:   controller.NewSessionController(sessionService),
		DashboardController: controller.NewDashboardController(sessionService),

		ConsumerService: consumerService,
	}
}
