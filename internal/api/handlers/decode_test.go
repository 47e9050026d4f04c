package handlers

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bigkaa/goartstore/video-module/internal/domain/model"
)

func ptrBool(b bool) *bool { return &b }

func ptrNumber(s string) *json.Number {
	n := json.Number(s)
	return &n
}

func TestParseFields_NotObject(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"пустое тело", ""},
		{"некорректный JSON", "{title:"},
		{"массив", `["P144"]`},
		{"строка", `"video"`},
		{"число", `42`},
		{"null", `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := parseFields([]byte(tt.body))
			if fields == nil {
				t.Fatal("parseFields не должен возвращать nil")
			}
			if len(fields) != 0 {
				t.Errorf("ожидался пустой набор полей, получено %v", fields)
			}
		})
	}
}

func TestDecodeCreateInput(t *testing.T) {
	tests := []struct {
		name string
		body string
		want model.CreateVideoInput
	}{
		{
			name: "корректные данные",
			body: `{"title":"Intro","author":"Ann","availableResolutions":["P144","P720"]}`,
			want: model.CreateVideoInput{
				Title:                "Intro",
				Author:               "Ann",
				AvailableResolutions: []model.Resolution{model.ResolutionP144, model.ResolutionP720},
			},
		},
		{
			name: "поля отсутствуют",
			body: `{}`,
			want: model.CreateVideoInput{},
		},
		{
			name: "неверные типы",
			body: `{"title":42,"author":true,"availableResolutions":"P144"}`,
			want: model.CreateVideoInput{},
		},
		{
			name: "нестроковый тег",
			body: `{"title":"t","author":"a","availableResolutions":["P144",7,null]}`,
			want: model.CreateVideoInput{
				Title:                "t",
				Author:               "a",
				AvailableResolutions: []model.Resolution{model.ResolutionP144, "", ""},
			},
		},
		{
			name: "пустой массив",
			body: `{"title":"t","author":"a","availableResolutions":[]}`,
			want: model.CreateVideoInput{
				Title:                "t",
				Author:               "a",
				AvailableResolutions: []model.Resolution{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeCreateInput(parseFields([]byte(tt.body)))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("decodeCreateInput() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeUpdateInput(t *testing.T) {
	tests := []struct {
		name string
		body string
		want model.UpdateVideoInput
	}{
		{
			name: "корректные данные",
			body: `{"title":"New","author":"Bob","availableResolutions":["P1080"],` +
				`"canBeDownloaded":true,"minAgeRestriction":16,"publicationDate":"2024-06-01T10:00:00.000Z"}`,
			want: model.UpdateVideoInput{
				Title:                "New",
				Author:               "Bob",
				AvailableResolutions: []model.Resolution{model.ResolutionP1080},
				CanBeDownloaded:      ptrBool(true),
				MinAgeRestriction:    ptrNumber("16"),
				PublicationDate:      "2024-06-01T10:00:00.000Z",
			},
		},
		{
			name: "null возраст",
			body: `{"canBeDownloaded":false,"minAgeRestriction":null}`,
			want: model.UpdateVideoInput{CanBeDownloaded: ptrBool(false)},
		},
		{
			name: "дробный возраст сохраняется литералом",
			body: `{"minAgeRestriction":12.5}`,
			want: model.UpdateVideoInput{MinAgeRestriction: ptrNumber("12.5")},
		},
		{
			name: "возраст строкой",
			body: `{"minAgeRestriction":"12"}`,
			want: model.UpdateVideoInput{MinAgeRestriction: ptrNumber("")},
		},
		{
			name: "canBeDownloaded строкой",
			body: `{"canBeDownloaded":"true"}`,
			want: model.UpdateVideoInput{},
		},
		{
			name: "дата числом",
			body: `{"publicationDate":1700000000}`,
			want: model.UpdateVideoInput{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeUpdateInput(parseFields([]byte(tt.body)))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("decodeUpdateInput() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
