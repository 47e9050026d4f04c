// handler.go — основной обработчик API, реализующий generated.ServerInterface.
// Объединяет health и обработчики ресурса /videos, делегируя запросы в сервисный слой.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bigkaa/goartstore/video-module/internal/api/generated"
	"github.com/bigkaa/goartstore/video-module/internal/service"
)

// Проверка соответствия интерфейсу на этапе компиляции.
var _ generated.ServerInterface = (*APIHandler)(nil)

// APIHandler — основной обработчик API Video Module.
type APIHandler struct {
	health         *HealthHandler
	videos         *service.VideoService
	testingEnabled bool
	logger         *slog.Logger
}

// NewAPIHandler создаёт основной обработчик API.
// testingEnabled — разрешён ли сброс данных через DELETE /testing/all-data.
func NewAPIHandler(
	health *HealthHandler,
	videos *service.VideoService,
	testingEnabled bool,
	logger *slog.Logger,
) *APIHandler {
	return &APIHandler{
		health:         health,
		videos:         videos,
		testingEnabled: testingEnabled,
		logger:         logger.With(slog.String("component", "api_handler")),
	}
}

// --- Health endpoints (делегируются в HealthHandler) ---

// HealthLive — liveness probe.
func (h *APIHandler) HealthLive(w http.ResponseWriter, r *http.Request) {
	h.health.HealthLive(w, r)
}

// HealthReady — readiness probe.
func (h *APIHandler) HealthReady(w http.ResponseWriter, r *http.Request) {
	h.health.HealthReady(w, r)
}

// GetMetrics — Prometheus метрики.
func (h *APIHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	h.health.GetMetrics(w, r)
}

// --- Вспомогательные функции ---

// writeJSON записывает JSON-ответ с указанным статусом.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
