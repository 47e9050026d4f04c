// ratelimit.go — ограничение частоты запросов по IP (go-chi/httprate).
// Используется скользящее окно; при превышении лимита — 429 в стандартном формате ошибок.
package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/httprate"

	apierrors "github.com/bigkaa/goartstore/video-module/internal/api/errors"
)

// RateLimitConfig — параметры ограничения частоты запросов.
type RateLimitConfig struct {
	// RequestLimit — максимальное количество запросов в окне
	RequestLimit int
	// WindowSize — размер окна
	WindowSize time.Duration
	// KeyFunc — ключ лимита; nil — IP клиента
	KeyFunc func(r *http.Request) (string, error)
}

// RateLimit создаёт middleware ограничения частоты запросов.
func RateLimit(cfg RateLimitConfig) func(http.Handler) http.Handler {
	keyFunc := cfg.KeyFunc
	if keyFunc == nil {
		keyFunc = httprate.KeyByIP
	}

	return httprate.Limit(
		cfg.RequestLimit,
		cfg.WindowSize,
		httprate.WithKeyFuncs(keyFunc),
		httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Retry-After", strconv.Itoa(int(cfg.WindowSize.Seconds())))
			apierrors.TooManyRequests(w, "Превышен лимит запросов, повторите позже")
		}),
	)
}
