// Пакет errors — конструкторы стандартных ошибок Video Module.
// Единый формат: {"error": {"code": "...", "message": "..."}}.
// Исключение — ошибки валидации полей: {"errorsMessages": [{"message", "field"}]},
// этот формат ожидают клиенты ресурса /videos.
package errors //nolint:revive // TODO: переименовать пакет errors, конфликт со stdlib

import (
	"encoding/json"
	"net/http"

	"github.com/bigkaa/goartstore/video-module/internal/api/generated"
	"github.com/bigkaa/goartstore/video-module/internal/domain/validation"
)

// Коды ошибок, определённые в OpenAPI контракте.
const (
	CodeNotFound        = "NOT_FOUND"
	CodeBadRequest      = "BAD_REQUEST"
	CodeTooManyRequests = "TOO_MANY_REQUESTS"
	CodeInternalError   = "INTERNAL_ERROR"
)

// WriteError записывает ответ ошибки в стандартном формате.
// statusCode — HTTP статус-код, code — машиночитаемый код, message — описание.
func WriteError(w http.ResponseWriter, statusCode int, code, message string) {
	var body generated.Error
	body.Error.Code = code
	body.Error.Message = message

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// FieldErrors — 400 с полным упорядоченным списком нарушений.
func FieldErrors(w http.ResponseWriter, errs validation.Errors) {
	items := make([]generated.FieldError, 0, len(errs))
	for _, fe := range errs {
		items = append(items, generated.FieldError{Field: fe.Field, Message: fe.Message})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(generated.APIErrorResult{ErrorsMessages: items})
}

// --- Конструкторы для типичных ошибок ---

// NotFound — 404 ресурс не найден.
func NotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, CodeNotFound, message)
}

// BadRequest — 400 запрос не удалось разобрать.
func BadRequest(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, CodeBadRequest, message)
}

// TooManyRequests — 429 превышен лимит запросов.
func TooManyRequests(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusTooManyRequests, CodeTooManyRequests, message)
}

// InternalError — 500 внутренняя ошибка.
func InternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, CodeInternalError, message)
}
