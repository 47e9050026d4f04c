// Пакет model — доменные модели Video Module.
// Video — единственная сущность сервиса, хранится только в памяти процесса.
package model

import (
	"encoding/json"
	"slices"
	"time"
)

// Resolution — тег разрешения видео.
type Resolution string

const (
	ResolutionP144  Resolution = "P144"
	ResolutionP240  Resolution = "P240"
	ResolutionP360  Resolution = "P360"
	ResolutionP480  Resolution = "P480"
	ResolutionP720  Resolution = "P720"
	ResolutionP1080 Resolution = "P1080"
	ResolutionP1440 Resolution = "P1440"
	ResolutionP2160 Resolution = "P2160"
)

// Resolutions — фиксированное перечисление допустимых разрешений.
var Resolutions = []Resolution{
	ResolutionP144,
	ResolutionP240,
	ResolutionP360,
	ResolutionP480,
	ResolutionP720,
	ResolutionP1080,
	ResolutionP1440,
	ResolutionP2160,
}

// IsValid возвращает true, если тег входит в перечисление Resolutions.
func (r Resolution) IsValid() bool {
	return slices.Contains(Resolutions, r)
}

// TimestampLayout — формат ISO-8601 UTC с миллисекундами (2024-01-02T15:04:05.000Z).
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// FormatTimestamp форматирует время в TimestampLayout (всегда UTC).
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Video — запись видео.
// ID и CreatedAt задаются хранилищем при создании и больше не меняются.
type Video struct {
	// ID — уникальный идентификатор (монотонный счётчик хранилища)
	ID int64
	// Title — название, 1–40 символов
	Title string
	// Author — автор, 1–20 символов
	Author string
	// AvailableResolutions — непустой список разрешений
	AvailableResolutions []Resolution
	// CanBeDownloaded — разрешено ли скачивание (false при создании)
	CanBeDownloaded bool
	// MinAgeRestriction — возрастное ограничение 1..18, nil — без ограничения
	MinAgeRestriction *int
	// CreatedAt — время создания, точность до миллисекунд, UTC
	CreatedAt time.Time
	// PublicationDate — дата публикации в формате TimestampLayout.
	// Хранится строкой: при обновлении сохраняется значение клиента без изменений.
	PublicationDate string
}

// Clone возвращает глубокую копию записи.
func (v Video) Clone() Video {
	c := v
	c.AvailableResolutions = slices.Clone(v.AvailableResolutions)
	if v.MinAgeRestriction != nil {
		age := *v.MinAgeRestriction
		c.MinAgeRestriction = &age
	}
	return c
}

// CreateVideoInput — входные данные создания видео.
// Структура уже разобрана из запроса, но ещё не проверена валидатором.
type CreateVideoInput struct {
	Title                string
	Author               string
	AvailableResolutions []Resolution
}

// UpdateVideoInput — входные данные полной замены видео.
// Поля, пришедшие с неверным JSON-типом, представлены значениями,
// которые валидатор гарантированно отклонит.
type UpdateVideoInput struct {
	Title                string
	Author               string
	AvailableResolutions []Resolution
	// CanBeDownloaded — nil, если поле отсутствует или не boolean
	CanBeDownloaded *bool
	// MinAgeRestriction — числовой литерал из запроса, nil — null
	MinAgeRestriction *json.Number
	PublicationDate   string
}

// AgeRestriction возвращает minAgeRestriction в виде *int.
// nil для null и для литерала, не являющегося целым числом
// (после ValidateUpdate второй случай невозможен).
func (in UpdateVideoInput) AgeRestriction() *int {
	if in.MinAgeRestriction == nil {
		return nil
	}
	v, err := in.MinAgeRestriction.Int64()
	if err != nil {
		return nil
	}
	age := int(v)
	return &age
}
