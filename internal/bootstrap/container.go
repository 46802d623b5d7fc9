package bootstrap

import (
	"context"
	"log"
	"time"

	"ai-careercompass-be/internal/config"
	"ai-careercompass-be/internal/controller"
	"ai-careercompass-be/internal/pkg/logger"
	"ai-careercompass-be/internal/repository/contract"
	"ai-careercompass-be/internal/repository/implementation"
	"ai-careercompass-be/internal/repository/memory"
	"ai-careercompass-be/internal/service"
	"ai-careercompass-be/pkg/analyst"
	"ai-careercompass-be/pkg/catalog"
	"ai-careercompass-be/pkg/llm/factory"
	"ai-careercompass-be/pkg/match"

	pktNats "ai-careercompass-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	RecommenderController controller.IRecommenderController
	SuggesterController   controller.ISuggesterController
	ChatbotController     controller.IChatbotController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

// NewContainer wires the whole object graph. db and NATS are both optional:
// without a database resolved sessions are not archived, without NATS events
// stay on the internal bus.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Domain Components
	llmProvider, err := factory.NewLLMProvider(context.Background(), factory.ProviderConfig{
		Provider:   cfg.Ai.Provider,
		Model:      cfg.Ai.Model,
		GroqAPIKey: cfg.Ai.GroqAPIKey,
		GroqURL:    cfg.Ai.GroqBaseURL,
		GeminiKey:  cfg.Ai.GoogleGemini,
		MaxRetries: cfg.Ai.MaxRetries,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s", cfg.Ai.Provider)

	jobCatalog := catalog.NewStaticCatalog()

	sessionStore := memory.NewSessionStore(
		time.Duration(cfg.Recommender.SessionTTLSeconds) * time.Second,
	)

	matchAnalyst := analyst.NewAnalyst(llmProvider)
	merger := match.NewMerger(
		matchAnalyst,
		time.Duration(cfg.Recommender.AnalysisTimeoutSeconds)*time.Second,
		cfg.Recommender.TopResults,
	)

	// 3.5 Infrastructure
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		}
	}

	var archiveRepo contract.RecommendationArchiveRepository
	if db != nil {
		archiveRepo = implementation.NewRecommendationArchiveRepository(db)
	} else {
		log.Println("[WARN] No database configured, resolved sessions will not be archived")
	}

	// 4. Services
	recommenderService := service.NewRecommenderService(
		jobCatalog,
		sessionStore,
		merger,
		cfg.Recommender.ShortlistSize,
		pubSub,
		cfg.Recommender.ResolvedTopic,
		sysLogger,
	)
	suggesterService := service.NewSuggesterService(llmProvider, sysLogger)
	chatbotService := service.NewChatbotService(llmProvider, sysLogger)

	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Recommender.ResolvedTopic,
		archiveRepo,
		natsPub,
	)

	// 5. Controllers
	return &Container{
		RecommenderController: controller.NewRecommenderController(recommenderService),
		SuggesterController:   controller.NewSuggesterController(suggesterService),
		ChatbotController:     controller.NewChatbotController(chatbotService),

		ConsumerService: consumerService,
	}
}
