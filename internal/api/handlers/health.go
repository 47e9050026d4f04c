// health.go — обработчики health endpoints Video Module.
// /health/live — liveness probe (процесс жив)
// /health/ready — readiness probe (хранилище отвечает)
// /metrics — Prometheus метрики
package handlers

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bigkaa/goartstore/video-module/internal/config"
)

const serviceName = "video-module"

// VideoCounter — источник количества видео для readiness probe.
type VideoCounter interface {
	Count() int
}

// HealthHandler — обработчик health endpoints.
type HealthHandler struct {
	videos      VideoCounter
	promHandler http.Handler
}

// NewHealthHandler создаёт обработчик health endpoints.
// videos может быть nil — readiness вернёт 503.
func NewHealthHandler(videos VideoCounter) *HealthHandler {
	return &HealthHandler{
		videos:      videos,
		promHandler: promhttp.Handler(),
	}
}

// healthLiveResponse — ответ liveness probe.
type healthLiveResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
	Service   string `json:"service"`
}

// healthReadyResponse — ответ readiness probe.
type healthReadyResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
	Service   string `json:"service"`
	Checks    struct {
		Store healthCheckResult `json:"store"`
	} `json:"checks"`
}

// healthCheckResult — результат проверки одной зависимости.
type healthCheckResult struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Videos  *int   `json:"videos,omitempty"`
}

// HealthLive — liveness probe. Возвращает 200 если процесс жив.
func (h *HealthHandler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthLiveResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   config.Version,
		Service:   serviceName,
	})
}

// HealthReady — readiness probe. 200 если хранилище инициализировано, иначе 503.
func (h *HealthHandler) HealthReady(w http.ResponseWriter, _ *http.Request) {
	resp := healthReadyResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   config.Version,
		Service:   serviceName,
	}

	if h.videos == nil {
		resp.Status = "fail"
		resp.Checks.Store = healthCheckResult{Status: "fail", Message: "не инициализировано"}
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	count := h.videos.Count()
	resp.Checks.Store = healthCheckResult{Status: "ok", Videos: &count}
	writeJSON(w, http.StatusOK, resp)
}

// GetMetrics — Prometheus метрики.
func (h *HealthHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	h.promHandler.ServeHTTP(w, r)
}
