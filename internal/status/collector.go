// Package status collects and renders a summary of what ding can complete
// for an OpenAPI document.
package status

import (
	"net/http"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/NikitaCOEUR/ding/internal/completion"
	"github.com/NikitaCOEUR/ding/internal/curl"
	"github.com/NikitaCOEUR/ding/internal/openapi"
	"github.com/NikitaCOEUR/ding/pkg/version"
)

// methods in display order
var methods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodHead,
	http.MethodOptions,
}

// Collect gathers the status of every operation declared in doc.
// Resolution failures are recorded per operation instead of aborting.
func Collect(doc *openapi3.T, specPath string) *Data {
	data := &Data{
		SpecPath:       specPath,
		OpenAPIVersion: doc.OpenAPI,
		Version:        version.Version,
	}
	if doc.Info != nil {
		data.Title = doc.Info.Title
		data.APIVersion = doc.Info.Version
	}
	if doc.Paths == nil {
		return data
	}

	resolver := openapi.NewResolver(doc)

	paths := make([]string, 0, doc.Paths.Len())
	for path := range doc.Paths.Map() {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		for _, method := range methods {
			op, err := openapi.Match(doc, path, method)
			if err != nil {
				continue
			}
			data.Operations = append(data.Operations, collectOperation(resolver, path, method, op))
		}
	}

	return data
}

func collectOperation(r *openapi.Resolver, path, method string, op *openapi3.Operation) Operation {
	info := Operation{
		Path:    path,
		Method:  method,
		ID:      op.OperationID,
		Summary: op.Summary,
	}

	table, err := openapi.BuildTable(r, op.Parameters)
	if err != nil {
		info.Error = err.Error()
	}
	for _, p := range table {
		param := Parameter{
			Name:        p.Name,
			In:          p.Declared,
			HasExample:  p.HasExample(),
			Completable: p.In != openapi.LocationOther,
		}
		if p.HasExample() {
			param.Example, _ = curl.CompactJSON(p.Example)
		}
		info.Parameters = append(info.Parameters, param)
	}

	if op.Responses != nil {
		codes := make([]string, 0, op.Responses.Len())
		for code := range op.Responses.Map() {
			codes = append(codes, code)
		}
		sort.Strings(codes)

		for _, code := range codes {
			resp := Response{Code: code}
			value, err := r.Response(op.Responses.Value(code))
			switch {
			case err != nil:
				if info.Error == "" {
					info.Error = err.Error()
				}
			case value.Description != nil:
				resp.Description = *value.Description
			}
			info.Responses = append(info.Responses, resp)
		}
	}

	info.Body.Declared = op.RequestBody != nil
	d, err := completion.SelectBody(r, op)
	if err != nil {
		if info.Error == "" {
			info.Error = err.Error()
		}
		return info
	}
	info.Body.JSON = d.Action == completion.FillBody
	info.Body.Example = d.Value

	return info
}
