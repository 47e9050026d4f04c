// Пакет api — OpenAPI контракт Video Module.
// Контракт встраивается в бинарник и отдаётся по GET /openapi.yaml.
// По нему сгенерирован internal/api/generated (oapi-codegen chi-server).
package api

import (
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:generate oapi-codegen -generate types,chi-server -package generated -o ../internal/api/generated/generated.go openapi.yaml

// SpecYAML — исходный текст контракта.
//
//go:embed openapi.yaml
var SpecYAML []byte

// Load разбирает и проверяет встроенный контракт.
func Load() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(SpecYAML)
	if err != nil {
		return nil, fmt.Errorf("разбор OpenAPI контракта: %w", err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("проверка OpenAPI контракта: %w", err)
	}
	return doc, nil
}
