// decode.go — разбор тела запросов /videos в входные структуры сервиса.
// Поле неверного JSON-типа превращается в значение, которое отклонит валидатор,
// поэтому клиент всегда получает полный список нарушений, а не ошибку разбора.
package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/bigkaa/goartstore/video-module/internal/domain/model"
)

// maxBodySize — максимальный размер тела запроса (1 MiB).
const maxBodySize = 1 << 20

// readFields читает тело запроса как JSON-объект.
// Тело, не являющееся объектом (или некорректный JSON), даёт пустой набор полей.
func readFields(r *http.Request) map[string]any {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return map[string]any{}
	}
	return parseFields(body)
}

func parseFields(body []byte) map[string]any {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil || fields == nil {
		return map[string]any{}
	}
	return fields
}

// decodeCreateInput формирует CreateVideoInput из полей запроса.
func decodeCreateInput(fields map[string]any) model.CreateVideoInput {
	return model.CreateVideoInput{
		Title:                stringField(fields, "title"),
		Author:               stringField(fields, "author"),
		AvailableResolutions: resolutionsField(fields, "availableResolutions"),
	}
}

// decodeUpdateInput формирует UpdateVideoInput из полей запроса.
func decodeUpdateInput(fields map[string]any) model.UpdateVideoInput {
	return model.UpdateVideoInput{
		Title:                stringField(fields, "title"),
		Author:               stringField(fields, "author"),
		AvailableResolutions: resolutionsField(fields, "availableResolutions"),
		CanBeDownloaded:      boolField(fields, "canBeDownloaded"),
		MinAgeRestriction:    numberField(fields, "minAgeRestriction"),
		PublicationDate:      stringField(fields, "publicationDate"),
	}
}

// stringField — строка или "" для отсутствующего поля и поля другого типа.
func stringField(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}

// boolField — nil, если поле отсутствует или не boolean.
func boolField(fields map[string]any, key string) *bool {
	b, ok := fields[key].(bool)
	if !ok {
		return nil
	}
	return &b
}

// numberField — nil для отсутствующего поля и null.
// Значение другого типа становится пустым числом, которое не проходит проверку.
func numberField(fields map[string]any, key string) *json.Number {
	raw, ok := fields[key]
	if !ok || raw == nil {
		return nil
	}
	n, ok := raw.(json.Number)
	if !ok {
		n = ""
	}
	return &n
}

// resolutionsField — nil, если поле не массив.
// Элемент, не являющийся строкой, становится пустым (недопустимым) тегом.
func resolutionsField(fields map[string]any, key string) []model.Resolution {
	items, ok := fields[key].([]any)
	if !ok {
		return nil
	}

	out := make([]model.Resolution, 0, len(items))
	for _, item := range items {
		s, _ := item.(string)
		out = append(out, model.Resolution(s))
	}
	return out
}
