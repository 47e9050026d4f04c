// Пакет service — бизнес-логика Video Module.
// videos.go — VideoService: валидация входных данных и операции над хранилищем.
// Хранилище вызывается только после успешной валидации.
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/bigkaa/goartstore/video-module/internal/domain/model"
	"github.com/bigkaa/goartstore/video-module/internal/domain/validation"
)

// Ошибки сервисного слоя.
var (
	// ErrNotFound — видео не найдено.
	ErrNotFound = errors.New("видео не найдено")
)

// ValidationError — входные данные нарушают одно или несколько правил.
// Errors всегда содержит полный упорядоченный список нарушений.
type ValidationError struct {
	Errors validation.Errors
}

func (e *ValidationError) Error() string {
	return "некорректные входные данные: " + e.Errors.Error()
}

// Prometheus-метрики видео.
var (
	videosTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "vm_videos",
		Help: "Текущее количество видео в хранилище.",
	})
	validationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vm_validation_failures_total",
		Help: "Количество нарушений правил валидации по операциям и полям.",
	}, []string{"operation", "field"})
)

// VideoStore — хранилище видео.
// Реализуется *videostore.Store.
type VideoStore interface {
	List() []model.Video
	Create(in model.CreateVideoInput) model.Video
	Get(id int64) (model.Video, bool)
	Replace(id int64, in model.UpdateVideoInput) bool
	Delete(id int64) bool
	ClearAll()
	Count() int
}

// VideoService — операции над ресурсом video.
type VideoService struct {
	store  VideoStore
	logger *slog.Logger
}

// NewVideoService создаёт сервис видео.
func NewVideoService(store VideoStore, logger *slog.Logger) *VideoService {
	s := &VideoService{
		store:  store,
		logger: logger.With(slog.String("component", "video_service")),
	}
	videosTotal.Set(float64(store.Count()))
	return s
}

// List возвращает все видео в порядке создания.
func (s *VideoService) List(_ context.Context) []model.Video {
	return s.store.List()
}

// Create проверяет данные и создаёт видео.
// Возвращает *ValidationError, если данные не прошли проверку.
func (s *VideoService) Create(ctx context.Context, in model.CreateVideoInput) (model.Video, error) {
	if errs := validation.ValidateCreate(in); len(errs) > 0 {
		return model.Video{}, s.rejected(ctx, "create", errs)
	}

	v := s.store.Create(in)
	s.updateGauge()

	s.logger.InfoContext(ctx, "Видео создано",
		slog.Int64("id", v.ID),
		slog.String("title", v.Title),
	)
	return v, nil
}

// Get возвращает видео по id или ErrNotFound.
func (s *VideoService) Get(_ context.Context, id int64) (model.Video, error) {
	v, ok := s.store.Get(id)
	if !ok {
		return model.Video{}, ErrNotFound
	}
	return v, nil
}

// Replace полностью заменяет изменяемые поля видео.
// Сначала проверяется существование записи (ErrNotFound),
// затем данные (*ValidationError).
func (s *VideoService) Replace(ctx context.Context, id int64, in model.UpdateVideoInput) error {
	if _, ok := s.store.Get(id); !ok {
		return ErrNotFound
	}

	if errs := validation.ValidateUpdate(in); len(errs) > 0 {
		return s.rejected(ctx, "replace", errs)
	}

	// Запись могла быть удалена между проверкой и заменой
	if !s.store.Replace(id, in) {
		return ErrNotFound
	}

	s.logger.InfoContext(ctx, "Видео обновлено", slog.Int64("id", id))
	return nil
}

// Delete удаляет видео по id или возвращает ErrNotFound.
func (s *VideoService) Delete(ctx context.Context, id int64) error {
	if !s.store.Delete(id) {
		return ErrNotFound
	}
	s.updateGauge()

	s.logger.InfoContext(ctx, "Видео удалено", slog.Int64("id", id))
	return nil
}

// ClearAll удаляет все видео. Используется только для сброса тестового окружения.
func (s *VideoService) ClearAll(ctx context.Context) {
	s.store.ClearAll()
	s.updateGauge()

	s.logger.WarnContext(ctx, "Все видео удалены")
}

// Count возвращает количество видео.
func (s *VideoService) Count() int {
	return s.store.Count()
}

// rejected учитывает нарушения в метриках и оборачивает их в ValidationError.
func (s *VideoService) rejected(ctx context.Context, operation string, errs validation.Errors) error {
	for _, fe := range errs {
		validationFailuresTotal.WithLabelValues(operation, fe.Field).Inc()
	}

	s.logger.DebugContext(ctx, "Входные данные отклонены",
		slog.String("operation", operation),
		slog.Any("fields", errs.Fields()),
	)
	return &ValidationError{Errors: errs}
}

func (s *VideoService) updateGauge() {
	videosTotal.Set(float64(s.store.Count()))
}
