// Пакет videostore — потокобезопасное in-memory хранилище видео.
//
// Записи хранятся в порядке добавления. Идентификаторы выдаёт
// монотонный счётчик: значения не повторяются за время жизни процесса,
// в том числе после ClearAll.
//
// Не персистентный: при рестарте хранилище пустое.
// Хранилище не проверяет входные данные — это делает validation
// до вызова Create/Replace.
package videostore

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/bigkaa/goartstore/video-module/internal/domain/model"
)

// Store — in-memory коллекция видео.
// sync.RWMutex сериализует изменения: каждая операция выполняется
// целиком, без чередования с другими.
type Store struct {
	mu     sync.RWMutex
	videos []*model.Video
	lastID int64
	now    func() time.Time
	logger *slog.Logger
}

// Option — функциональная опция Store.
type Option func(*Store)

// WithClock задаёт источник текущего времени (для тестов).
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New создаёт пустое хранилище.
func New(logger *slog.Logger, opts ...Option) *Store {
	s := &Store{
		now:    time.Now,
		logger: logger.With(slog.String("component", "videostore")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List возвращает копии всех записей в порядке добавления.
func (s *Store) List() []model.Video {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Video, 0, len(s.videos))
	for _, v := range s.videos {
		result = append(result, v.Clone())
	}
	return result
}

// Create добавляет новую запись и возвращает её копию.
// createdAt — текущее время с точностью до миллисекунд (UTC),
// publicationDate — то же время следующего календарного дня.
func (s *Store) Create(in model.CreateVideoInput) model.Video {
	s.mu.Lock()
	defer s.mu.Unlock()

	createdAt := s.now().UTC().Truncate(time.Millisecond)

	s.lastID++
	v := &model.Video{
		ID:                   s.lastID,
		Title:                in.Title,
		Author:               in.Author,
		AvailableResolutions: slices.Clone(in.AvailableResolutions),
		CanBeDownloaded:      false,
		MinAgeRestriction:    nil,
		CreatedAt:            createdAt,
		PublicationDate:      model.FormatTimestamp(createdAt.AddDate(0, 0, 1)),
	}
	s.videos = append(s.videos, v)

	s.logger.Debug("Видео добавлено",
		slog.Int64("id", v.ID),
		slog.Int("total", len(s.videos)),
	)

	return v.Clone()
}

// Get возвращает копию записи по id.
// ok == false, если запись не найдена.
func (s *Store) Get(id int64) (model.Video, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.Video{}, false
	}
	return s.videos[i].Clone(), true
}

// Replace перезаписывает все изменяемые поля записи.
// ID и CreatedAt не меняются. Возвращает false, если запись не найдена;
// в этом случае хранилище не изменяется.
func (s *Store) Replace(id int64, in model.UpdateVideoInput) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}

	v := s.videos[i]
	v.Title = in.Title
	v.Author = in.Author
	v.AvailableResolutions = slices.Clone(in.AvailableResolutions)
	v.CanBeDownloaded = in.CanBeDownloaded != nil && *in.CanBeDownloaded
	v.MinAgeRestriction = in.AgeRestriction()
	v.PublicationDate = in.PublicationDate

	s.logger.Debug("Видео обновлено", slog.Int64("id", id))
	return true
}

// Delete удаляет запись по id, сохраняя порядок остальных.
// Возвращает true, если запись была найдена и удалена.
func (s *Store) Delete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.videos = slices.Delete(s.videos, i, i+1)

	s.logger.Debug("Видео удалено",
		slog.Int64("id", id),
		slog.Int("total", len(s.videos)),
	)
	return true
}

// ClearAll удаляет все записи. Счётчик идентификаторов не сбрасывается.
func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := len(s.videos)
	s.videos = nil

	s.logger.Info("Хранилище очищено", slog.Int("removed", removed))
}

// Count возвращает количество записей.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.videos)
}

// indexOf — линейный поиск по id. Вызывается под блокировкой.
func (s *Store) indexOf(id int64) int {
	return slices.IndexFunc(s.videos, func(v *model.Video) bool {
		return v.ID == id
	})
}
