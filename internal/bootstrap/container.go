package bootstrap

import (
	"context"
	"log"

	"legalbridge-be/internal/config"
	"legalbridge-be/internal/controller"
	"legalbridge-be/internal/handler"
	"legalbridge-be/internal/pkg/logger"
	"legalbridge-be/internal/pkg/mailer"
	"legalbridge-be/internal/repository/memory"
	"legalbridge-be/internal/repository/unitofwork"
	"legalbridge-be/internal/service"
	"legalbridge-be/internal/websocket"
	"legalbridge-be/pkg/assistant/factory"

	pktNats "legalbridge-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	OAuthController        controller.IOAuthController
	ProfileController      controller.IProfileController
	AssistantController    controller.IAssistantController
	CatalogController      controller.ICatalogController
	ConsultationController controller.IConsultationController
	PagesController        controller.IPagesController

	// WebSockets & events
	EventHandler *handler.EventHandler
	WebSocketHub *websocket.Hub

	// Session infrastructure. The cache is written only by the bus consumer;
	// the Protected middleware reads it.
	SessionBus   *service.SessionBus
	SessionCache *memory.SessionCache

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Session event bus and cache
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	sessionBus := service.NewSessionBus(pubSub, sysLogger)
	sessionCache := memory.NewSessionCache()

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

	// WebSocket hub
	wsLogger := logger.NewIsolatedLogger("logs/events.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Assistant provider
	provider, err := factory.NewProvider(
		cfg.Assistant.Provider,
		cfg.Assistant.Model,
		cfg.Assistant.BaseURL,
		cfg.Assistant.APIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize assistant provider: %v", err)
	}
	log.Printf("[INFO] Using assistant provider: %s", cfg.Assistant.Provider)

	// 4. Services
	authService := service.NewAuthService(uowFactory, emailService, natsPub, sessionBus, cfg.Auth.JWTSecret, sysLogger)
	oauthService := service.NewOAuthService(uowFactory, authService, sysLogger)
	profileService := service.NewProfileService(uowFactory, sessionBus, natsPub, sysLogger)
	assistantService := service.NewAssistantService(uowFactory, provider, sysLogger)
	catalogService := service.NewCatalogService()
	consultationService := service.NewConsultationService(uowFactory, emailService, natsPub, sysLogger)
	notificationService := service.NewNotificationService(uowFactory, sysLogger)

	// 5. Event handler (socket + NATS fan-out)
	eventHandler := handler.NewEventHandler(
		notificationService,
		natsSub,
		wsHub,
		sessionCache,
		cfg.Auth.JWTSecret,
		wsLogger,
	)

	return &Container{
		AuthController:         controller.NewAuthController(authService),
		OAuthController:        controller.NewOAuthController(oauthService),
		ProfileController:      controller.NewProfileController(profileService),
		AssistantController:    controller.NewAssistantController(assistantService),
		CatalogController:      controller.NewCatalogController(catalogService),
		ConsultationController: controller.NewConsultationController(consultationService),
		PagesController:        controller.NewPagesController(),

		EventHandler: eventHandler,
		WebSocketHub: wsHub,

		SessionBus:   sessionBus,
		SessionCache: sessionCache,

		Logger: sysLogger,
	}
}

// Start launches the background consumers. The session bus consumer must be
// running before the HTTP listener accepts requests, otherwise sign-ins
// published during startup would never reach the cache.
func (c *Container) Start(ctx context.Context) error {
	if err := c.SessionBus.Run(ctx, c.SessionCache, c.WebSocketHub); err != nil {
		return err
	}
	return c.EventHandler.StartEventFanout()
}
