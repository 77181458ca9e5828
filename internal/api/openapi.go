package api

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var openapiYAML []byte

var (
	openapiOnce sync.Once
	openapiDoc  []byte
	openapiErr  error
)

// OpenAPIJSON loads, validates, and serializes the embedded API document.
// The result is computed once and cached.
func OpenAPIJSON() ([]byte, error) {
	openapiOnce.Do(func() {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromData(openapiYAML)
		if err != nil {
			openapiErr = fmt.Errorf("load openapi document: %w", err)
			return
		}
		if err := doc.Validate(loader.Context); err != nil {
			openapiErr = fmt.Errorf("validate openapi document: %w", err)
			return
		}
		openapiDoc, openapiErr = doc.MarshalJSON()
	})
	return openapiDoc, openapiErr
}
