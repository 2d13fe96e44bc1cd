package bootstrap

import (
	"context"
	"log"

	"smart-negotiator-be/internal/config"
	"smart-negotiator-be/internal/controller"
	"smart-negotiator-be/internal/pkg/logger"
	"smart-negotiator-be/internal/repository/contract"
	"smart-negotiator-be/internal/repository/implementation"
	"smart-negotiator-be/internal/repository/memory"
	"smart-negotiator-be/internal/repository/unitofwork"
	"smart-negotiator-be/internal/service"
	"smart-negotiator-be/pkg/embedding"
	"smart-negotiator-be/pkg/llm/factory"
	"smart-negotiator-be/pkg/negotiation"
	"smart-negotiator-be/pkg/rag/intent"
	"smart-negotiator-be/pkg/rag/response"
	"smart-negotiator-be/pkg/rag/retrieval"
	"smart-negotiator-be/pkg/rag/router"

	pktNats "smart-negotiator-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController    controller.IChatController
	ProductController controller.IProductController
	CartController    controller.ICartController
	AdminController   controller.IAdminController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	// Dialogue traffic is chatty; it gets its own file so the main log stays
	// readable.
	chatLogger := logger.NewIsolatedLogger("logs/chat.log")
	uowFactory := unitofwork.NewRepositoryFactory(db)

	// In-process pub/sub for the embed pipeline
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)

	// 2. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
	}
	log.Printf("[INFO] Using Embedding Provider: %s", cfg.Ai.EmbeddingProvider)

	llmChain := factory.NewProviderChain(factory.ChainConfig{
		OpenAIKey:    cfg.Keys.OpenAI,
		GeminiKey:    cfg.Keys.GoogleGemini,
		AnthropicKey: cfg.Keys.Anthropic,
		OllamaURL:    cfg.Ai.OllamaBaseURL,
		OllamaModel:  cfg.Ai.LLMModel,
	})
	log.Printf("[INFO] LLM provider chain length: %d", len(llmChain))

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Session store: redis when configured, in-process cache otherwise
	var sessionRepo contract.SessionContextRepository
	if cfg.App.SessionStore == "redis" {
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
		sessionRepo = memory.NewRedisSessionContextRepository(rdb)
	} else {
		sessionRepo = memory.NewSessionContextRepository()
	}

	// The chat surface is useless without a reachable index, so refuse to boot
	// rather than serve fallbacks for every message.
	embeddingRepo := implementation.NewProductEmbeddingRepository(db)
	indexed, err := embeddingRepo.Count(context.Background())
	if err != nil {
		log.Fatalf("[FATAL] Product embedding index is unreachable: %v", err)
	}
	log.Printf("[INFO] Product embedding index ready (%d records)", indexed)

	// 3. Dialogue Core
	thresholds := negotiation.NewManager(negotiation.Thresholds{
		HighStockThreshold: cfg.Negotiation.HighStockThreshold,
		LowStockThreshold:  cfg.Negotiation.LowStockThreshold,
		HighDiscountRate:   cfg.Negotiation.HighDiscountRate,
		MediumDiscountRate: cfg.Negotiation.MediumDiscountRate,
		LowDiscountRate:    cfg.Negotiation.LowDiscountRate,
		DefaultMinPricePct: cfg.Negotiation.DefaultMinPricePct,
	})

	pipeline := retrieval.NewPipeline(embeddingProvider, embeddingRepo, chatLogger, retrieval.DefaultTopK)
	classifier := intent.NewClassifier(llmChain, chatLogger)

	var polisher router.AnswerPolisher
	if cfg.Ai.PolishAnswers && len(llmChain) > 0 {
		polisher = response.NewPolisher(llmChain, chatLogger)
	}

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Keys.EmbedTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.EmbedTopic,
		uowFactory,
		embeddingProvider,
		sysLogger,
	)

	productService := service.NewProductService(uowFactory, publisherService, embeddingProvider, sysLogger)
	cartService := service.NewCartService(uowFactory, natsPub, sysLogger)

	dialogueRouter := router.NewRouter(
		classifier,
		pipeline,
		thresholds,
		productService,
		cartService,
		polisher,
		chatLogger,
	)

	chatService := service.NewChatService(uowFactory, dialogueRouter, sessionRepo, natsPub, sysLogger)
	adminService := service.NewAdminService(uowFactory, thresholds, embeddingProvider, natsPub, sysLogger)

	// 5. Controllers
	return &Container{
		ChatController:    controller.NewChatController(chatService),
		ProductController: controller.NewProductController(productService),
		CartController:    controller.NewCartController(cartService),
		AdminController:   controller.NewAdminController(adminService),

		ConsumerService: consumerService,
	}
}
