package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"egyan/database"
	"egyan/internal/config"
	"egyan/internal/http-api/handler"
	"egyan/internal/http-api/middleware"
	"egyan/internal/http-api/repository"
	"egyan/internal/http-api/service"
	"egyan/pkg/ai"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logger := newLogger(cfg)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	rdb, err := database.ConnectRedis(cfg, logger)
	if err != nil {
		logger.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	defer rdb.Close()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	bookRepo := repository.NewBookRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	libraryRepo := repository.NewLibraryRepository(db)
	progressRepo := repository.NewProgressRepository(rdb)
	sessionRepo := repository.NewSessionRepository(rdb, cfg.SessionTTL)
	prefRepo := repository.NewPreferenceRepository(rdb)

	// AI gateway
	var generator ai.TextGenerator
	if cfg.GeminiAPIKey != "" {
		client, err := ai.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiBaseURL)
		if err != nil {
			logger.Error("gemini client init failed", "error", err)
			os.Exit(1)
		}
		generator = client
	} else {
		logger.Warn("GEMINI_API_KEY not set, AI features will return fallbacks")
		generator = ai.Disabled{}
	}

	// Services
	authService := service.NewAuthService(userRepo, libraryRepo, sessionRepo, cfg)
	payments := service.NewSimulatedProcessor(cfg.PaymentDelay)
	subscriptionService := service.NewSubscriptionService(userRepo, subRepo, payments, authService)
	bookService := service.NewBookService(bookRepo)
	reviewService := service.NewReviewService(reviewRepo, bookRepo, subscriptionService)
	libraryService := service.NewLibraryService(libraryRepo, bookRepo, subscriptionService)
	progressService := service.NewProgressService(progressRepo, bookRepo)
	preferenceService := service.NewPreferenceService(prefRepo)
	aiService := service.NewAIService(generator, cfg.GeminiModel, bookRepo, subscriptionService, logger)
	userService := service.NewUserService(userRepo, bookRepo, reviewRepo, subRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionService)
	bookHandler := handler.NewBookHandler(bookService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	libraryHandler := handler.NewLibraryHandler(libraryService)
	progressHandler := handler.NewProgressHandler(progressService)
	preferenceHandler := handler.NewPreferenceHandler(preferenceService)
	aiHandler := handler.NewAIHandler(aiService)
	adminHandler := handler.NewAdminHandler(userService)

	if cfg.GoEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	auth := middleware.AuthMiddleware(authService)

	// Public routes
	authHandler.RegisterRoutes(api.Group("/auth"))
	subscriptionHandler.RegisterRoutes(api.Group("/subscriptions"))
	bookHandler.RegisterRoutes(api.Group("/books"))
	reviewHandler.RegisterRoutes(api.Group("/reviews"))

	// Authenticated routes
	authHandler.RegisterProtectedRoutes(api.Group("/auth", auth))
	subscriptionHandler.RegisterProtectedRoutes(api.Group("/subscriptions", auth))
	bookHandler.RegisterProtectedRoutes(api.Group("/books", auth))
	reviewHandler.RegisterProtectedRoutes(api.Group("/reviews", auth))
	libraryHandler.RegisterRoutes(api.Group("/library", auth))
	progressHandler.RegisterRoutes(api.Group("/progress", auth))
	preferenceHandler.RegisterRoutes(api.Group("/preferences", auth))
	aiHandler.RegisterRoutes(api.Group("/ai", auth, middleware.AIRateLimiter(cfg.AIRequestsPerMinute)))
	adminHandler.RegisterRoutes(api.Group("/admin", auth, middleware.RequireAdmin()))

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("api server listening", "addr", addr)
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(h)
}
