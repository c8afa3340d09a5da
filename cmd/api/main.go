package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"moodlens/internal/config"
	"moodlens/internal/content"
	"moodlens/internal/db"
	"moodlens/internal/emotion"
	apihttp "moodlens/internal/http"
	"moodlens/internal/repository"
	"moodlens/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	userRepo := repository.NewPgUserRepository(pool)
	checkInRepo := repository.NewPgCheckInRepository(pool)

	var (
		checkInLimiter service.RateLimiter
		tokenStore     service.RefreshTokenStore
		redisClient    *redis.Client
	)
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			if cfg.CheckInRateLimit > 0 {
				checkInLimiter = service.NewRedisCheckInRateLimiter(redisClient, time.Hour, cfg.CheckInRateLimit)
			}
			tokenStore = service.NewRedisRefreshTokenStore(redisClient)
		}
		cancel()
	}
	if checkInLimiter == nil && cfg.CheckInRateLimit > 0 {
		checkInLimiter = service.NewRateLimiter(time.Hour, cfg.CheckInRateLimit)
	}

	jwtSvc := service.NewJWTServiceWithStore(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL, tokenStore)

	userSvc := service.NewUserService(logger, userRepo)
	detectionSvc := service.NewDetectionService(logger, emotion.NewDefaultDetector(), checkInRepo, checkInLimiter)
	patternSvc := service.NewPatternService(logger, checkInRepo)
	recommendationSvc := service.NewRecommendationService(content.NewRecommender())

	userHandler := apihttp.NewUserHandler(logger, userSvc, jwtSvc)
	checkInHandler := apihttp.NewCheckInHandler(logger, detectionSvc, patternSvc, recommendationSvc)
	contentHandler := apihttp.NewContentHandler(logger, content.NewQuestionCatalog(), recommendationSvc)
	router := apihttp.NewRouter(logger, jwtSvc, userHandler, checkInHandler, contentHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
