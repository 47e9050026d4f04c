// main.go — точка входа Video Module.
// In-memory ресурс видео: config, logger, хранилище, сервис, HTTP API.
package main

import (
	"log"
	"log/slog"

	"github.com/bigkaa/goartstore/video-module/internal/api/handlers"
	"github.com/bigkaa/goartstore/video-module/internal/config"
	"github.com/bigkaa/goartstore/video-module/internal/server"
	"github.com/bigkaa/goartstore/video-module/internal/service"
	"github.com/bigkaa/goartstore/video-module/internal/storage/videostore"
)

func main() {
	// 1. Загрузка конфигурации из переменных окружения
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	// 2. Настройка логгера
	logger := config.SetupLogger(cfg)
	logger.Info("Video Module запускается",
		slog.String("version", config.Version),
		slog.Int("port", cfg.Port),
		slog.Bool("testing_endpoints", cfg.TestingEndpointsEnabled),
		slog.Int("rate_limit_requests", cfg.RateLimitRequests),
	)

	// 3. Хранилище и сервис
	store := videostore.New(logger)
	videos := service.NewVideoService(store, logger)

	// 4. Обработчики
	healthHandler := handlers.NewHealthHandler(videos)
	apiHandler := handlers.NewAPIHandler(healthHandler, videos, cfg.TestingEndpointsEnabled, logger)

	// 5. HTTP-сервер
	srv := server.New(cfg, logger, apiHandler, server.DefaultMiddlewares(cfg, logger)...)

	// 6. Запуск сервера (блокирующий вызов с graceful shutdown)
	if err := srv.Run(); err != nil {
		logger.Error("Ошибка сервера", slog.String("error", err.Error()))
		log.Fatalf("Сервер завершился с ошибкой: %v", err)
	}

	logger.Info("Video Module остановлен")
}
