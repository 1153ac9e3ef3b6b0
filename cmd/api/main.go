// @title Question Bank API
// @version 1.0
// @description Concurrent question generation service: one shared content summary fanned out to MCQ, true/false and fill-in-the-blank generators.
// @host localhost:8000
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_SERVICE_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"question-bank/internal/adapter"
	"question-bank/internal/adapter/questiongen"
	"question-bank/internal/adapter/summary"
	"question-bank/internal/cache"
	"question-bank/internal/config"
	"question-bank/internal/database"
	"question-bank/internal/domain"
	"question-bank/internal/handler"
	"question-bank/internal/logger"
	"question-bank/internal/middleware"
	"question-bank/internal/repository"
	"question-bank/internal/service"
	"question-bank/internal/validation"
	"strconv"
	"syscall"
	"time"

	"github.com/tmc/langchaingo/llms/ollama"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// LLM client shared by the summary provider and all generators
	ollamaHTTPClient := &http.Client{Timeout: cfg.LLM.Timeout}
	llm, err := ollama.New(
		ollama.WithServerURL(cfg.LLM.ServerURL),
		ollama.WithModel(cfg.LLM.Model),
		ollama.WithHTTPClient(ollamaHTTPClient),
	)
	if err != nil {
		appLogger.Fatal("Failed to create LLM client", zap.Error(err))
	}

	// Summary provider, optionally wrapped with the Redis cache
	var summaries domain.SummaryProvider = summary.NewLLMSummaryProvider(llm, cfg.LLM.Timeout)
	if cfg.Generation.SummaryCacheEnabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Warn("Failed to connect to Redis, summary caching disabled", zap.Error(err))
		} else {
			cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)
			summaries = summary.NewCachedSummaryProvider(summaries, cacheAdapter, cfg.Generation.SummaryCacheTTL)
			appLogger.Info("Summary cache enabled", zap.Duration("ttl", cfg.Generation.SummaryCacheTTL))
		}
	}

	// Generation history store; the service degrades to log-only when the
	// database is unreachable.
	var historyRepo domain.GenerationHistoryRepository
	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Warn("Failed to connect to database, generation history disabled", zap.Error(err))
	} else {
		defer db.Close()
		historyRepo = repository.NewSQLXGenerationHistoryRepository(db)
	}
	historyService := service.NewGenerationHistoryService(historyRepo)

	// Question generators, one per type
	generators := []domain.QuestionGenerator{
		questiongen.NewMCQGenerator(llm, summaries, cfg.LLM.Timeout),
		questiongen.NewTrueFalseGenerator(llm, summaries, cfg.LLM.Timeout),
		questiongen.NewFIBGenerator(llm, summaries, cfg.LLM.Timeout),
	}

	generationService := service.NewGenerationService(summaries, generators, historyService)

	// Initialize handlers
	validator := validation.NewValidator(cfg.Generation.MaxTotalQuestions)
	generationHandler := handler.NewGenerationHandler(generationService, validator, cfg.Generation)
	healthHandler := handler.NewHealthHandler()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/health", healthHandler.Check)

	// API group
	apiGroup := app.Group("/api")
	generateRoute := apiGroup.Group("/question-bank")
	if cfg.Auth.Enabled {
		generateRoute.Use(middleware.Protected(cfg.Auth.SecretKey))
	}
	generateRoute.Post("/sources/:sourceId/questions/generate", generationHandler.GenerateQuestions)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
