// Пакет validation — правила проверки входных данных видео.
// Все проверки выполняются всегда, без раннего выхода: клиент получает
// полный список нарушений за один запрос.
package validation

import (
	"encoding/json"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/bigkaa/goartstore/video-module/internal/domain/model"
)

// Имена полей в списке ошибок.
const (
	FieldAvailableResolutions = "availableResolutions"
	FieldTitle                = "title"
	FieldAuthor               = "author"
	FieldMinAgeRestriction    = "minAgeRestriction"
	FieldPublicationDate      = "publicationDate"
	FieldCanBeDownloaded      = "canBeDownloaded"
)

// Сообщения об ошибках. Клиенты сравнивают их буквально.
const (
	MsgResolutionsRequired = "error!!!"
	MsgInvalidResolution   = "Invalid resolution format."
	MsgInvalidTitle        = "Invalid title."
	MsgInvalidAuthor       = "Invalid author name."
	MsgInvalidAgeRange     = "An incorrect value range was passed."
	MsgInvalidDate         = "Invalid date format."
	MsgInvalidType         = "Invalid type passed."
)

// Ограничения полей.
const (
	MaxTitleLength  = 40
	MaxAuthorLength = 20
	MinAge          = 1
	MaxAge          = 18
)

// isoPattern — ISO-8601 UTC с миллисекундами: YYYY-MM-DDTHH:mm:ss.sssZ.
var isoPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z$`)

// FieldError — нарушение правила для одного поля.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors — упорядоченный список нарушений.
// Порядок определяется порядком проверок и является частью контракта.
type Errors []FieldError

// Error реализует интерфейс error.
func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return strings.Join(parts, "; ")
}

// Fields возвращает имена полей в порядке следования ошибок.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for _, fe := range e {
		fields = append(fields, fe.Field)
	}
	return fields
}

// ValidateCreate проверяет данные создания видео.
// Пустой результат означает, что данные приняты.
func ValidateCreate(in model.CreateVideoInput) Errors {
	var errs Errors
	errs = checkResolutions(errs, in.AvailableResolutions)
	errs = checkTitle(errs, in.Title)
	errs = checkAuthor(errs, in.Author)
	return errs
}

// ValidateUpdate проверяет данные полной замены видео.
// К правилам ValidateCreate добавляются minAgeRestriction,
// publicationDate и canBeDownloaded — строго в этом порядке.
func ValidateUpdate(in model.UpdateVideoInput) Errors {
	var errs Errors
	errs = checkResolutions(errs, in.AvailableResolutions)
	errs = checkTitle(errs, in.Title)
	errs = checkAuthor(errs, in.Author)

	if in.MinAgeRestriction != nil && !validAge(*in.MinAgeRestriction) {
		errs = append(errs, FieldError{Field: FieldMinAgeRestriction, Message: MsgInvalidAgeRange})
	}

	if !isoPattern.MatchString(in.PublicationDate) {
		errs = append(errs, FieldError{Field: FieldPublicationDate, Message: MsgInvalidDate})
	}

	if in.CanBeDownloaded == nil {
		errs = append(errs, FieldError{Field: FieldCanBeDownloaded, Message: MsgInvalidType})
	}

	return errs
}

// checkResolutions — непустой список, затем первый недопустимый тег.
// Обе проверки независимы: при пустом списке вторая ничего не находит.
func checkResolutions(errs Errors, resolutions []model.Resolution) Errors {
	if len(resolutions) == 0 {
		errs = append(errs, FieldError{Field: FieldAvailableResolutions, Message: MsgResolutionsRequired})
	}

	for _, r := range resolutions {
		if !r.IsValid() {
			errs = append(errs, FieldError{Field: FieldAvailableResolutions, Message: MsgInvalidResolution})
			break
		}
	}

	return errs
}

func checkTitle(errs Errors, title string) Errors {
	if title == "" || utf8.RuneCountInString(title) > MaxTitleLength {
		errs = append(errs, FieldError{Field: FieldTitle, Message: MsgInvalidTitle})
	}
	return errs
}

func checkAuthor(errs Errors, author string) Errors {
	if author == "" || utf8.RuneCountInString(author) > MaxAuthorLength {
		errs = append(errs, FieldError{Field: FieldAuthor, Message: MsgInvalidAuthor})
	}
	return errs
}

// validAge — целое число в диапазоне [MinAge, MaxAge].
// Дробные значения (12.5) и экспоненциальная запись отклоняются.
func validAge(n json.Number) bool {
	age, err := n.Int64()
	return err == nil && age >= MinAge && age <= MaxAge
}
