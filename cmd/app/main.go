package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"taskboard-backend/docs"
	"taskboard-backend/internal/common/config"
	"taskboard-backend/internal/common/events"
	"taskboard-backend/internal/common/logger"
	"taskboard-backend/internal/common/middleware"
	taskhttp "taskboard-backend/internal/features/task/delivery/http"
	taskstore "taskboard-backend/internal/features/task/repository/sqlstore"
	taskservice "taskboard-backend/internal/features/task/service"
	userhttp "taskboard-backend/internal/features/user/delivery/http"
	userrepo "taskboard-backend/internal/features/user/repository"
	usercache "taskboard-backend/internal/features/user/repository/redis"
	userstore "taskboard-backend/internal/features/user/repository/sqlstore"
	userservice "taskboard-backend/internal/features/user/service"
	wallethttp "taskboard-backend/internal/features/wallet/delivery/http"
	walletservice "taskboard-backend/internal/features/wallet/service"
	"taskboard-backend/internal/platform/amqp"
	"taskboard-backend/internal/platform/database"
	"taskboard-backend/internal/platform/ethereum"
	"taskboard-backend/internal/platform/redis"
	"taskboard-backend/internal/platform/tracing"
)

const (
	serviceName = "taskboard-backend"
	version     = "1.0.0"
)

// @title           Taskboard API
// @version         1.0
// @description     Task board backend: tasks, users and wallet linking.

// @host      localhost:8080
// @BasePath  /api

// @tag.name tasks
// @tag.description Task CRUD, filtering and statistics

// @tag.name users
// @tag.description User management

// @tag.name wallet
// @tag.description Linking Ethereum wallets to users

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(serviceName, cfg.Debug, logger.FileOptions{
		Path:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	logger.Info().
		Str("version", version).
		Bool("debug", cfg.Debug).
		Str("db_driver", cfg.Database.Driver).
		Msg("Starting Taskboard Backend")

	ctx := context.Background()

	shutdownTracing, err := tracing.Init(ctx, serviceName, version, cfg.Tracing.OTLPEndpoint, cfg.Tracing.Environment)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize tracing")
	}

	db, err := database.Open(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	logger.Info().Str("driver", db.Driver()).Msg("Database connection established")

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(ctx); err != nil {
			logger.Fatal().Err(err).Msg("Failed to migrate database")
		}
		logger.Info().Msg("Database schema migrated")
	}

	var users userrepo.UserRepository = userstore.NewUserRepository(db.DB)

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = redis.Open(ctx, cfg.RedisAddr(), cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		users = usercache.NewCachedUserRepository(users, redisClient, cfg.Redis.UserCacheTTL)
		logger.Info().Str("addr", cfg.RedisAddr()).Msg("User cache enabled")
	}

	var publisher events.Publisher = events.Noop{}
	var amqpPublisher *amqp.Publisher
	if cfg.AMQP.URL != "" {
		amqpPublisher, err = amqp.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to connect to message broker")
		}
		publisher = amqpPublisher
		logger.Info().Str("exchange", cfg.AMQP.Exchange).Msg("Event publishing enabled")
	}

	balances, err := ethereum.Dial(ctx, cfg.Ethereum.RPCURL, cfg.Ethereum.BalanceTimeout)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to Ethereum RPC")
	}

	taskSvc := taskservice.NewTaskService(taskstore.NewTaskRepository(db.DB), publisher)
	userSvc := userservice.NewUserService(users)
	walletSvc := walletservice.NewWalletService(users, balances, publisher, cfg.Ethereum.Network)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.Tracing(serviceName))
	router.Use(middleware.HandleErrors())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "Accept"}
	router.Use(cors.New(corsConfig))

	setupRoutes(router, db, redisClient,
		taskhttp.NewTaskHandler(taskSvc),
		userhttp.NewUserHandler(userSvc),
		wallethttp.NewWalletHandler(walletSvc),
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	balances.Close()
	if amqpPublisher != nil {
		if err := amqpPublisher.Close(); err != nil {
			logger.Warn().Err(err).Msg("Failed to close message broker connection")
		}
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Warn().Err(err).Msg("Failed to close Redis client")
		}
	}
	if err := db.Close(); err != nil {
		logger.Warn().Err(err).Msg("Failed to close database")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Warn().Err(err).Msg("Failed to flush traces")
	}

	logger.Info().Msg("Server exited")
}

type routeRegistrar interface {
	RegisterRoutes(router *gin.RouterGroup)
}

func setupRoutes(router *gin.Engine, db *database.DB, redisClient *redis.Client, handlers ...routeRegistrar) {
	api := router.Group("/api")
	for _, h := range handlers {
		h.RegisterRoutes(api)
	}

	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   serviceName,
		})
	})

	router.GET("/live", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	router.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.HealthCheck(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unready",
				"error":   "database unavailable",
				"details": err.Error(),
			})
			return
		}

		if redisClient != nil {
			if err := redisClient.HealthCheck(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":  "unready",
					"error":   "redis unavailable",
					"details": err.Error(),
				})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "ready",
			"timestamp": time.Now().UTC(),
			"service":   serviceName,
		})
	})
}
