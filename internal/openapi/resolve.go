package openapi

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/NikitaCOEUR/ding/internal/derrors"
)

// Kind names the component table a reference points into.
type Kind string

const (
	KindParameter   Kind = "parameters"
	KindRequestBody Kind = "requestBodies"
	KindResponse    Kind = "responses"
	KindSchema      Kind = "schemas"
)

// maxReferenceDepth bounds a chain of references so that a cycle fails
// instead of looping forever.
const maxReferenceDepth = 32

// Resolver follows references into a document's component tables.
// It never mutates the document.
type Resolver struct {
	components *openapi3.Components
}

// NewResolver creates a resolver over the components of doc
func NewResolver(doc *openapi3.T) *Resolver {
	if doc == nil {
		return &Resolver{}
	}
	return &Resolver{components: doc.Components}
}

// ComponentKey returns the lookup key of a reference: everything after the last '/'.
func ComponentKey(ref string) string {
	return ref[strings.LastIndex(ref, "/")+1:]
}

// Parameter resolves a parameter reference to its definition
func (r *Resolver) Parameter(ref *openapi3.ParameterRef) (*openapi3.Parameter, error) {
	if ref == nil {
		return nil, unresolved(KindParameter, "", "parameter reference is nil")
	}
	return follow(r.components, KindParameter, ref.Ref, ref.Value,
		func(c *openapi3.Components, key string) (string, *openapi3.Parameter, bool) {
			next, ok := c.Parameters[key]
			if !ok || next == nil {
				return "", nil, false
			}
			return next.Ref, next.Value, true
		})
}

// RequestBody resolves a request body reference to its definition
func (r *Resolver) RequestBody(ref *openapi3.RequestBodyRef) (*openapi3.RequestBody, error) {
	if ref == nil {
		return nil, unresolved(KindRequestBody, "", "request body reference is nil")
	}
	return follow(r.components, KindRequestBody, ref.Ref, ref.Value,
		func(c *openapi3.Components, key string) (string, *openapi3.RequestBody, bool) {
			next, ok := c.RequestBodies[key]
			if !ok || next == nil {
				return "", nil, false
			}
			return next.Ref, next.Value, true
		})
}

// Response resolves a response reference to its definition
func (r *Resolver) Response(ref *openapi3.ResponseRef) (*openapi3.Response, error) {
	if ref == nil {
		return nil, unresolved(KindResponse, "", "response reference is nil")
	}
	return follow(r.components, KindResponse, ref.Ref, ref.Value,
		func(c *openapi3.Components, key string) (string, *openapi3.Response, bool) {
			next, ok := c.Responses[key]
			if !ok || next == nil {
				return "", nil, false
			}
			return next.Ref, next.Value, true
		})
}

// Schema resolves a schema reference to its definition
func (r *Resolver) Schema(ref *openapi3.SchemaRef) (*openapi3.Schema, error) {
	if ref == nil {
		return nil, unresolved(KindSchema, "", "schema reference is nil")
	}
	return follow(r.components, KindSchema, ref.Ref, ref.Value,
		func(c *openapi3.Components, key string) (string, *openapi3.Schema, bool) {
			next, ok := c.Schemas[key]
			if !ok || next == nil {
				return "", nil, false
			}
			return next.Ref, next.Value, true
		})
}

// lookupFunc fetches one entry of a component table: the entry's own
// reference (empty when inline) and its inline value.
type lookupFunc[T any] func(c *openapi3.Components, key string) (string, *T, bool)

// follow resolves one level per iteration until an inline item is reached.
func follow[T any](components *openapi3.Components, kind Kind, ref string, value *T, lookup lookupFunc[T]) (*T, error) {
	origin := ref
	for depth := 0; ref != ""; depth++ {
		if depth >= maxReferenceDepth {
			return nil, unresolved(kind, origin, fmt.Sprintf("reference %s does not terminate", origin))
		}
		if components == nil {
			return nil, unresolved(kind, ref, fmt.Sprintf("cannot resolve %s: document has no components", ref))
		}

		key := ComponentKey(ref)
		next, nextValue, ok := lookup(components, key)
		if !ok {
			return nil, unresolved(kind, ref, fmt.Sprintf("key %s is missing from components/%s", key, kind))
		}
		ref, value = next, nextValue
	}

	if value == nil {
		return nil, unresolved(kind, origin, "definition is empty")
	}
	return value, nil
}

func unresolved(kind Kind, ref, message string) error {
	return derrors.NewUnresolvedReferenceError(string(kind), ref, message)
}
