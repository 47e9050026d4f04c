// videos.go — обработчики ресурса /videos.
// Список, создание, получение, полная замена и удаление видео.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	apierrors "github.com/bigkaa/goartstore/video-module/internal/api/errors"
	"github.com/bigkaa/goartstore/video-module/internal/api/generated"
	"github.com/bigkaa/goartstore/video-module/internal/domain/model"
	"github.com/bigkaa/goartstore/video-module/internal/service"
)

// ListVideos — GET /videos.
func (h *APIHandler) ListVideos(w http.ResponseWriter, r *http.Request) {
	videos := h.videos.List(r.Context())

	items := make([]generated.Video, 0, len(videos))
	for _, v := range videos {
		items = append(items, mapVideo(v))
	}

	writeJSON(w, http.StatusOK, items)
}

// CreateVideo — POST /videos.
func (h *APIHandler) CreateVideo(w http.ResponseWriter, r *http.Request) {
	in := decodeCreateInput(readFields(r))

	v, err := h.videos.Create(r.Context(), in)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, mapVideo(v))
}

// GetVideo — GET /videos/{id}.
func (h *APIHandler) GetVideo(w http.ResponseWriter, r *http.Request, id generated.VideoId) {
	v, err := h.videos.Get(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, mapVideo(v))
}

// UpdateVideo — PUT /videos/{id}.
func (h *APIHandler) UpdateVideo(w http.ResponseWriter, r *http.Request, id generated.VideoId) {
	in := decodeUpdateInput(readFields(r))

	if err := h.videos.Replace(r.Context(), id, in); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteVideo — DELETE /videos/{id}.
func (h *APIHandler) DeleteVideo(w http.ResponseWriter, r *http.Request, id generated.VideoId) {
	if err := h.videos.Delete(r.Context(), id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeServiceError маппит ошибки сервисного слоя в HTTP-ответы.
func (h *APIHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		apierrors.FieldErrors(w, verr.Errors)
	case errors.Is(err, service.ErrNotFound):
		apierrors.NotFound(w, "Видео не найдено")
	default:
		h.logger.ErrorContext(r.Context(), "Ошибка обработки запроса",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		apierrors.InternalError(w, "Внутренняя ошибка сервера")
	}
}

// mapVideo конвертирует доменную модель в API-ответ.
func mapVideo(v model.Video) generated.Video {
	resolutions := make([]generated.Resolution, 0, len(v.AvailableResolutions))
	for _, res := range v.AvailableResolutions {
		resolutions = append(resolutions, generated.Resolution(res))
	}

	return generated.Video{
		Id:                   v.ID,
		Title:                v.Title,
		Author:               v.Author,
		AvailableResolutions: resolutions,
		CanBeDownloaded:      v.CanBeDownloaded,
		MinAgeRestriction:    v.MinAgeRestriction,
		CreatedAt:            model.FormatTimestamp(v.CreatedAt),
		PublicationDate:      v.PublicationDate,
	}
}
