package main

import (
	"context"
	"log"
	"time"

	"learningapp/config"
	"learningapp/internal/application/usecase"
	"learningapp/internal/fixture"
	"learningapp/internal/infrastructure/repository"
	"learningapp/internal/logger"
	"learningapp/internal/middleware"
	handlers "learningapp/internal/transport/http"

	"github.com/redis/go-redis/v9"
)

func main() {
	// 1. Конфиг
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLog, err := logger.New(cfg.GinMode)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer appLog.Sync()

	// 2. Redis нужен только рейт-лимитеру; без него просто работаем без лимитов
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			appLog.Fatal("Failed to connect to Redis", "addr", cfg.RedisAddr, "err", err)
		}
		appLog.Info("Connected to Redis", "addr", cfg.RedisAddr)
	} else {
		appLog.Info("REDIS_ADDR not set, rate limiting disabled")
	}
	rateLimiter := middleware.NewRateLimiter(rdb)

	// 3. Статические данные: каталог книг и мок-учетки
	catalogRepo := repository.NewCatalogRepository(fixture.Books())
	credRepo := repository.NewCredentialRepository(fixture.MockUsers())

	// 4. Usecase-ы
	catalogUC := usecase.NewCatalogUseCase(catalogRepo)
	authUC := usecase.NewAuthUseCase(
		credRepo,
		time.Duration(cfg.LoginDelayMs)*time.Millisecond,
		time.Duration(cfg.RegisterDelayMs)*time.Millisecond,
		appLog,
	)
	screens := usecase.NewScreenManager(catalogRepo)

	// 5. Хендлеры и роутер
	authHandler := handlers.NewAuthHandler(authUC)
	catalogHandler := handlers.NewCatalogHandler(catalogUC)
	screenHandler := handlers.NewScreenHandler(screens)

	router := handlers.NewRouter(authHandler, catalogHandler, screenHandler, rateLimiter, cfg.AllowedOrigins)

	// 6. Запуск HTTP сервера
	appLog.Info("Learning app API running", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		appLog.Fatal("Failed to run server", "err", err)
	}
}
