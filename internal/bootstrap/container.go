package bootstrap

import (
	"log"

	"mindgarden-be/internal/config"
	"mindgarden-be/internal/controller"
	"mindgarden-be/internal/pkg/logger"
	"mindgarden-be/internal/repository/memory"
	"mindgarden-be/internal/repository/unitofwork"
	"mindgarden-be/internal/service"
	"mindgarden-be/pkg/csvlog"
	"mindgarden-be/pkg/llm/factory"
	"mindgarden-be/pkg/mood"
	"mindgarden-be/pkg/sentiment"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SessionController  controller.ISessionController
	CheckInController  controller.ICheckInController
	QuizController     controller.IQuizController
	GuideController    controller.IGuideController
	ChatController     controller.IChatController
	FeedbackController controller.IFeedbackController
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	csvAppender, err := csvlog.NewAppender(cfg.Data.Dir)
	if err != nil {
		log.Fatalf("[FATAL] Failed to prepare data directory: %v", err)
	}

	// 2. AI Backends
	sentimentProvider, err := sentiment.NewProvider(cfg.Ai.SentimentProvider)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize sentiment provider: %v", err)
	}
	log.Printf("[INFO] Using Sentiment Provider: %s", cfg.Ai.SentimentProvider)

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OpenAIAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	evaluator := mood.NewEvaluator(sentimentProvider)

	// Initialize In-Memory Session Storage
	sessionRepo := memory.NewSessionRepository()

	// 3. Services
	sessionService := service.NewSessionService(sessionRepo, uowFactory, csvAppender, sysLogger)
	checkInService := service.NewCheckInService(sessionRepo, evaluator, uowFactory, sysLogger)
	quizService := service.NewQuizService(sessionRepo)
	guideService := service.NewGuideService(sessionRepo)
	chatService := service.NewChatService(sessionRepo, llmProvider, sysLogger)
	feedbackService := service.NewFeedbackService(sessionRepo, uowFactory, csvAppender, sysLogger)

	// 4. Controllers
	return &Container{
		SessionController:  controller.NewSessionController(sessionService),
		CheckInController:  controller.NewCheckInController(checkInService),
		QuizController:     controller.NewQuizController(quizService),
		GuideController:    controller.NewGuideController(guideService),
		ChatController:     controller.NewChatController(chatService),
		FeedbackController: controller.NewFeedbackController(feedbackService),
	}
}
