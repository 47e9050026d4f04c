package api

import (
	"slices"
	"testing"
)

func TestLoad(t *testing.T) {
	doc, err := Load()
	if err != nil {
		t.Fatalf("Load() вернул ошибку: %v", err)
	}

	want := []string{"/videos", "/videos/{id}", "/testing/all-data", "/health/live", "/health/ready", "/metrics"}
	for _, path := range want {
		if doc.Paths.Find(path) == nil {
			t.Errorf("путь %s отсутствует в контракте", path)
		}
	}

	res, ok := doc.Components.Schemas["Resolution"]
	if !ok || res.Value == nil {
		t.Fatal("схема Resolution отсутствует")
	}
	var tags []string
	for _, v := range res.Value.Enum {
		if s, ok := v.(string); ok {
			tags = append(tags, s)
		}
	}
	for _, tag := range []string{"P144", "P240", "P360", "P480", "P720", "P1080", "P1440", "P2160"} {
		if !slices.Contains(tags, tag) {
			t.Errorf("тег %s отсутствует в перечислении Resolution", tag)
		}
	}
}
