package completion

import (
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/NikitaCOEUR/ding/internal/curl"
	"github.com/NikitaCOEUR/ding/internal/openapi"
)

const mediaTypeJSON = "application/json"

// SelectBody computes the body edit for op.
// It returns a NoOp decision when op declares no application/json request body.
// A media type example wins over the resolved schema's example; with neither,
// only the content headers are set.
func SelectBody(r *openapi.Resolver, op *openapi3.Operation) (Decision, error) {
	if op == nil || op.RequestBody == nil {
		return Decision{Action: NoOp}, nil
	}

	body, err := r.RequestBody(op.RequestBody)
	if err != nil {
		return Decision{}, err
	}

	media := body.Content[mediaTypeJSON]
	if media == nil {
		return Decision{Action: NoOp}, nil
	}

	d := Decision{Action: FillBody, Name: mediaTypeJSON}
	if media.Example != nil {
		d.Value = exampleJSON(media.Example)
		return d, nil
	}
	if media.Schema == nil {
		return d, nil
	}

	schema, err := r.Schema(media.Schema)
	if err != nil {
		return Decision{}, err
	}
	if schema.Example != nil {
		d.Value = exampleJSON(schema.Example)
	}
	return d, nil
}

func exampleJSON(v any) string {
	s, ok := curl.CompactJSON(v)
	if !ok {
		return "{}"
	}
	return s
}
