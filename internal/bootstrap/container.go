package bootstrap

import (
	"context"
	"log"
	"time"

	"genui-be/internal/config"
	"genui-be/internal/controller"
	"genui-be/internal/metrics"
	"genui-be/internal/pkg/lock"
	"genui-be/internal/pkg/logger"
	"genui-be/internal/repository/unitofwork"
	"genui-be/internal/service"
	"genui-be/internal/websocket"
	"genui-be/pkg/llm/factory"

	pktNats "genui-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SessionController    controller.ISessionController
	GenerationController controller.IGenerationController
	PreviewController    controller.IPreviewController
	WsController         controller.IWsController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	metrics.MustRegister()

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Initialize LLM Provider based on Config
	apiKey := cfg.Keys.GoogleGemini
	baseURL := cfg.Ai.OllamaBaseURL
	if cfg.Ai.Provider == "openai" {
		apiKey = cfg.Keys.OpenAI
		baseURL = cfg.Ai.OpenAIBaseURL
	}
	llmProvider, err := factory.NewLLMProvider(context.Background(), factory.ProviderConfig{
		Type:    cfg.Ai.Provider,
		APIKey:  apiKey,
		BaseURL: baseURL,
		Model:   cfg.Ai.Model,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	// 2.5 Infrastructure
	// NATS is optional, outbound events are skipped without it.
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		}
	}

	// Redis backs the generation lock and the websocket cluster relay.
	// Without it both fall back to single-instance behavior.
	var rdb *redis.Client
	var locker lock.Locker = lock.NewMemoryLocker()
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
			rdb = nil
		} else {
			locker = lock.NewRedisLocker(rdb)
		}
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger(cfg.App.WsLogFilePath)
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	var eventPublisher service.IEventPublisher
	if natsPub != nil {
		eventPublisher = natsPub
	}

	publisherService := service.NewPublisherService(pubSub, cfg.Keys.GenerationTopic)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.GenerationTopic,
		wsHub,
		eventPublisher,
		sysLogger,
	)

	sessionService := service.NewSessionService(uowFactory, eventPublisher)
	generationService := service.NewGenerationService(
		uowFactory,
		llmProvider,
		cfg.Ai.Model,
		locker,
		publisherService,
		sysLogger,
		time.Duration(cfg.Ai.GatewayTimeoutSec)*time.Second,
	)

	// 4. Controllers
	return &Container{
		SessionController:    controller.NewSessionController(sessionService),
		GenerationController: controller.NewGenerationController(generationService),
		PreviewController:    controller.NewPreviewController(sessionService),
		WsController:         controller.NewWsController(wsHub, wsLogger),

		ConsumerService: consumerService,
		WebSocketHub:    wsHub,
	}
}
