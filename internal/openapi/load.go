// Package openapi loads OpenAPI documents and answers the questions the
// completion engine asks of them: which operation a request targets, which
// parameters it declares, and what a $ref points to.
package openapi

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/invopop/yaml"

	"github.com/NikitaCOEUR/ding/internal/derrors"
)

// LoadFile reads and decodes the document at path.
// A missing or empty file is a SpecError, like a document that fails to decode.
func LoadFile(path string) (*openapi3.T, error) {
	if strings.TrimSpace(path) == "" {
		return nil, derrors.NewSpecError(path, "no spec file given", nil)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, derrors.NewSpecError(path, "failed to read spec file", err)
	}
	if len(data) == 0 {
		return nil, derrors.NewSpecError(path, "spec file is empty", nil)
	}

	return Load(path, data)
}

// Load decodes data as JSON when path has a .json extension and as YAML
// otherwise. References are left unresolved; Resolver follows them on demand
// so that a dangling $ref only fails the request that needs it.
func Load(path string, data []byte) (*openapi3.T, error) {
	raw := data
	if !strings.EqualFold(filepath.Ext(path), ".json") {
		converted, err := yaml.YAMLToJSON(data)
		if err != nil {
			return nil, derrors.NewSpecError(path, "failed to parse YAML OpenAPI spec", err)
		}
		raw = converted
	}

	doc := &openapi3.T{}
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, derrors.NewSpecError(path, "failed to parse OpenAPI spec", err)
	}

	return doc, nil
}
