package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alumninet/internal/core/ports"
	"alumninet/internal/core/services"
	httphandlers "alumninet/internal/handlers/http"
	"alumninet/internal/infrastructure/middleware"
	"alumninet/internal/infrastructure/monitoring"
	"alumninet/internal/infrastructure/notify"
	"alumninet/internal/infrastructure/repositories"
	"alumninet/pkg/config"
	"alumninet/pkg/logger"
	"alumninet/pkg/tracing"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

func main() {
	startTime := time.Now()

	configPaths := []string{
		"configs/config.yaml",
		"./configs/config.yaml",
		"config.yaml",
	}

	var cfg *config.Config
	var err error

	for _, path := range configPaths {
		cfg, err = config.Load(path)
		if err == nil {
			break
		}
	}

	if err != nil {
		cfg = config.DefaultConfig()
	}

	zapLogger := logger.New(cfg.Logging.Level)
	defer zapLogger.Sync()

	log := zapLogger.Sugar()
	ctxLog := logger.NewContextLogger(zapLogger)

	// Tracing
	tp, err := tracing.Init(tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.Tracing.ServiceName,
		JaegerURL:   cfg.Tracing.JaegerURL,
		Environment: cfg.Tracing.Environment,
		SampleRate:  cfg.Tracing.SampleRate,
	})
	if err != nil {
		log.Fatalw("failed to initialize tracing", "error", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		tp.Shutdown(ctx)
	}()

	// Repositories
	repoFactory, err := repositories.NewRepositoryFactory(cfg, log)
	if err != nil {
		log.Fatalw("failed to create repository factory", "error", err)
	}
	defer repoFactory.Close()

	userRepo := repoFactory.CreateUserRepository()
	postRepo := repoFactory.CreatePostRepository()
	commentRepo := repoFactory.CreateCommentRepository()
	likeRepo := repoFactory.CreateLikeRepository()
	connectionRepo := repoFactory.CreateConnectionRepository()
	messageRepo := repoFactory.CreateMessageRepository()
	eventRepo := repoFactory.CreateEventRepository()
	feedbackRepo := repoFactory.CreateFeedbackRepository()
	jobRepo := repoFactory.CreateJobRepository()
	donationRepo := repoFactory.CreateDonationRepository()
	storyRepo := repoFactory.CreateStoryRepository()

	// Notifier: Redis event bus when configured, no-op otherwise
	var notifier ports.Notifier = notify.NopNotifier{}
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warnw("failed to connect to Redis, notifications disabled", "error", err)
			redisClient.Close()
			redisClient = nil
		} else {
			notifier = notify.NewEventBus(redisClient, cfg.Notify.Channel, log)
			log.Info("Redis event bus enabled")
		}
		cancel()
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Services
	authService := services.NewAuthService(
		cfg.Auth.JWTSecret,
		cfg.Auth.SignupTokenTTL,
		cfg.Auth.SessionTokenTTL,
	)
	userService := services.NewUserService(userRepo, authService)
	postService := services.NewPostService(postRepo, commentRepo, likeRepo)
	connectionService := services.NewConnectionService(connectionRepo, userRepo)
	messageService := services.NewMessageService(messageRepo, userRepo, notifier, log)
	eventService := services.NewEventService(eventRepo)
	feedbackService := services.NewFeedbackService(feedbackRepo)
	jobService := services.NewJobService(jobRepo)
	donationService := services.NewDonationService(donationRepo, userRepo)
	storyService := services.NewStoryService(storyRepo, userRepo)
	networkService := services.NewNetworkService(userRepo)

	// Monitoring
	prometheusCollector := monitoring.NewPrometheusCollector()

	// Handlers
	var domainMetrics httphandlers.Metrics = httphandlers.NopMetrics{}
	if cfg.Monitoring.PrometheusEnabled {
		domainMetrics = prometheusCollector
	}

	userHandler := httphandlers.NewUserHandler(userService, authService, domainMetrics)
	postHandler := httphandlers.NewPostHandler(postService, domainMetrics)
	connectionHandler := httphandlers.NewConnectionHandler(connectionService, domainMetrics)
	messageHandler := httphandlers.NewMessageHandler(messageService, domainMetrics)
	eventHandler := httphandlers.NewEventHandler(eventService)
	feedbackHandler := httphandlers.NewFeedbackHandler(feedbackService)
	jobHandler := httphandlers.NewJobHandler(jobService)
	donationHandler := httphandlers.NewDonationHandler(donationService, domainMetrics)
	storyHandler := httphandlers.NewStoryHandler(storyService)
	networkHandler := httphandlers.NewNetworkHandler(networkService)

	// Router
	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.ErrorHandlerMiddleware(ctxLog))
	if cfg.Tracing.Enabled {
		router.Use(middleware.TracingMiddleware())
	}
	if cfg.Monitoring.PrometheusEnabled {
		router.Use(middleware.MetricsMiddleware(prometheusCollector))
	}

	auth := middleware.AuthMiddleware(authService)

	userHandler.SetupRoutes(router, auth)
	postHandler.SetupRoutes(router, auth)
	connectionHandler.SetupRoutes(router, auth)
	messageHandler.SetupRoutes(router, auth)
	eventHandler.SetupRoutes(router, auth)
	feedbackHandler.SetupRoutes(router, auth)
	jobHandler.SetupRoutes(router, auth)
	donationHandler.SetupRoutes(router, auth)
	storyHandler.SetupRoutes(router, auth)
	networkHandler.SetupRoutes(router, auth)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"uptime":    time.Since(startTime).String(),
		})
	})

	router.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := repoFactory.HealthCheck(ctx); err != nil {
			c.JSON(503, gin.H{
				"status":       "not_ready",
				"timestamp":    time.Now(),
				"dependencies": "unhealthy",
				"error":        err.Error(),
			})
			return
		}

		c.JSON(200, gin.H{
			"status":       "ready",
			"timestamp":    time.Now(),
			"dependencies": "ok",
		})
	})

	if cfg.Monitoring.PrometheusEnabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
		log.Info("Prometheus metrics enabled")
	}

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infof("Starting AlumniNet API server on %s", cfg.Server.Address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Fatalw("Server failed", "error", err)
	case sig := <-sigChan:
		log.Infow("Received shutdown signal", "signal", sig)
	}

	log.Info("Shutting down AlumniNet API server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("Error during server shutdown", "error", err)
		if closeErr := srv.Close(); closeErr != nil {
			log.Errorw("Error force closing server", "error", closeErr)
		}
	} else {
		log.Info("Server shutdown gracefully")
	}

	if err := repoFactory.Close(); err != nil {
		log.Errorw("Error closing repository factory", "error", err)
	}

	log.Info("AlumniNet API server stopped")
}
