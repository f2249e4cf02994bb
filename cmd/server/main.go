package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	_ "github.com/legalneuro/backend/docs"
	"github.com/legalneuro/backend/internal/config"
	"github.com/legalneuro/backend/internal/handlers"
	"github.com/legalneuro/backend/internal/logger"
	"github.com/legalneuro/backend/internal/middleware"
	"github.com/legalneuro/backend/internal/repositories"
	"github.com/legalneuro/backend/internal/services"
	"github.com/legalneuro/backend/internal/session"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title Legal Neuro Trainer API
// @version 1.0
// @description Vocabulary trainer for English legal terms with Russian translations
// @termsOfService http://swagger.io/terms/

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:5000
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting Legal Neuro Trainer", zap.String("data_file", cfg.Storage.DataFile))

	// Initialize session store
	sessionStore, closeStore, err := newSessionStore(cfg)
	if err != nil {
		logger.Logger.Fatal("Failed to initialize session store", zap.Error(err))
	}
	defer closeStore()

	// Initialize repositories
	wordsRepo := repositories.NewWordsRepository(cfg.Storage.DataFile, logger.Logger)

	// Make sure the data file exists before serving
	if _, err := wordsRepo.Load(context.Background()); err != nil {
		logger.Logger.Fatal("Failed to initialize vocabulary storage", zap.Error(err))
	}

	// Initialize services
	wordsService := services.NewWordsService(wordsRepo, logger.Logger)
	quizService := services.NewQuizService(wordsRepo, sessionStore, logger.Logger)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(logger.Logger)
	pagesHandler := handlers.NewPagesHandler(wordsService, logger.Logger)
	quizHandler := handlers.NewQuizHandler(quizService, logger.Logger)
	wordsHandler := handlers.NewWordsHandler(wordsService, logger.Logger)

	// Initialize session middleware
	sessionMiddleware := middleware.SessionMiddleware(cfg.Session.TTL, cfg.Session.CookieSecure)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggerMiddleware(logger.Logger))
	r.Use(middleware.RecoveryMiddleware(logger.Logger))
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(cfg.RateLimit.RequestsPerMinute, time.Minute))
	r.Use(middleware.RequestSizeLimitMiddleware(1 * 1024 * 1024)) // 1MB

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Register routes
	healthHandler.RegisterRoutes(r)
	pagesHandler.RegisterRoutes(r)
	quizHandler.RegisterRoutes(r, sessionMiddleware)
	wordsHandler.RegisterRoutes(r)

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// newSessionStore builds the configured quiz session store and its cleanup function
func newSessionStore(cfg *config.Config) (services.QuizSessionStore, func(), error) {
	if cfg.Session.Store != config.SessionStoreRedis {
		logger.Logger.Info("Using in-memory session store", zap.Duration("ttl", cfg.Session.TTL))
		return session.NewMemoryStore(cfg.Session.TTL), func() {}, nil
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Logger.Info("Using Redis session store", zap.String("addr", cfg.RedisAddr()), zap.Duration("ttl", cfg.Session.TTL))
	return session.NewRedisStore(rdb, cfg.Session.TTL), func() { rdb.Close() }, nil
}
