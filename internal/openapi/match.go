package openapi

import (
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/NikitaCOEUR/ding/internal/derrors"
)

// Match returns the operation declared for the literal path and method.
// Path templates are not expanded: "/pets/{id}" does not match "/pets/123".
// The method comparison is case-sensitive.
func Match(doc *openapi3.T, path, method string) (*openapi3.Operation, error) {
	if doc == nil || doc.Paths == nil {
		return nil, derrors.NewNoMatchError(path, method, "spec declares no paths")
	}

	item := doc.Paths.Value(path)
	if item == nil {
		return nil, derrors.NewNoMatchError(path, method, fmt.Sprintf("no path item for %s", path))
	}
	if item.Ref != "" {
		return nil, derrors.NewNoMatchError(path, method, fmt.Sprintf("path item for %s is a reference", path))
	}

	op := operationFor(item, method)
	if op == nil {
		return nil, derrors.NewNoMatchError(path, method, fmt.Sprintf("no %s operation for %s", method, path))
	}
	return op, nil
}

func operationFor(item *openapi3.PathItem, method string) *openapi3.Operation {
	switch method {
	case http.MethodGet:
		return item.Get
	case http.MethodPost:
		return item.Post
	case http.MethodPut:
		return item.Put
	case http.MethodDelete:
		return item.Delete
	case http.MethodPatch:
		return item.Patch
	case http.MethodHead:
		return item.Head
	case http.MethodOptions:
		return item.Options
	default:
		return nil
	}
}
