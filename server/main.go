package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"venuegate/api/routes"
	"venuegate/internal/notify"
	"venuegate/internal/shared/config"
	"venuegate/pkg/cache"
	"venuegate/pkg/logger"
	"venuegate/pkg/ratelimit"

	"github.com/IBM/sarama"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	appLogger := logger.GetDefault()

	if err := godotenv.Load(); err != nil {
		appLogger.Info("No .env file found, using system environment variables")
	}

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	if cfg.Roller.Mock {
		appLogger.Info("Mock mode enabled: all provider responses are synthetic")
	} else if !cfg.Roller.Configured() {
		appLogger.Warn("Upstream provider not configured, serving synthetic fallbacks")
	}

	// Redis backs the rate limiter; the gateway runs without it
	var redisClient *redis.Client
	if cfg.RateLimit.Enabled {
		client, err := cache.Connect(cache.Config{
			Address:  cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			appLogger.Warn("Redis unavailable, rate limiting disabled", slog.Any("error", err))
		} else {
			redisClient = client
			defer redisClient.Close()
		}
	}

	var limiter *ratelimit.RateLimiter
	if cfg.RateLimit.Enabled && redisClient != nil {
		limiter = ratelimit.NewRateLimiter(redisClient, &ratelimit.Config{
			Enabled:         cfg.RateLimit.Enabled,
			WindowDuration:  cfg.RateLimit.WindowDuration,
			DefaultRequests: cfg.RateLimit.DefaultRequests,
			BookingRequests: cfg.RateLimit.BookingRequests,
			HealthRequests:  cfg.RateLimit.HealthRequests,
			WhitelistedIPs:  cfg.RateLimit.WhitelistedIPs,
		})
		appLogger.Info("Rate limiter initialized",
			slog.Duration("window", cfg.RateLimit.WindowDuration),
			slog.Int("default_requests", cfg.RateLimit.DefaultRequests),
		)
	}

	// Kafka backs the payment-link sender; without it dispatches are synthetic
	var producer sarama.SyncProducer
	if cfg.Kafka.Enabled {
		p, err := notify.NewKafkaProducer(cfg.Kafka)
		if err != nil {
			appLogger.Warn("Kafka unavailable, payment-link dispatch is synthetic", slog.Any("error", err))
		} else {
			producer = p
			defer producer.Close()
		}
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		AllowWildcard:    true,
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))

	router := routes.NewRouter(cfg, appLogger, redisClient, limiter, producer)
	router.SetupRoutes(engine)

	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        engine,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	go func() {
		appLogger.Info("API listening",
			slog.String("address", cfg.GetServerAddress()),
			slog.Bool("live_upstream", cfg.Roller.Live()),
			slog.Bool("rate_limiting", limiter != nil),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("forced shutdown", slog.Any("error", err))
	}
	appLogger.Info("Server exited")
}
