package status

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NikitaCOEUR/ding/internal/openapi"
)

func collectPetstore(t *testing.T) *Data {
	t.Helper()
	doc, err := openapi.LoadFile("../../testdata/petstore.yaml")
	require.NoError(t, err)
	return Collect(doc, "petstore.yaml")
}

func findOperation(t *testing.T, data *Data, method, path string) Operation {
	t.Helper()
	for _, op := range data.Operations {
		if op.Method == method && op.Path == path {
			return op
		}
	}
	t.Fatalf("operation %s %s not collected", method, path)
	return Operation{}
}

func TestCollect_Petstore(t *testing.T) {
	data := collectPetstore(t)

	assert.Equal(t, "Swagger Petstore", data.Title)
	assert.Equal(t, "1.0.0", data.APIVersion)
	assert.Equal(t, "3.0.3", data.OpenAPIVersion)
	require.Len(t, data.Operations, 6)

	// paths sorted, then methods in display order
	assert.Equal(t, "/pets", data.Operations[0].Path)
	assert.Equal(t, "GET", data.Operations[0].Method)
	assert.Equal(t, "POST", data.Operations[1].Method)
	assert.Equal(t, "/pets/{petId}", data.Operations[4].Path)
	assert.Equal(t, "/petsHeader", data.Operations[5].Path)
}

func TestCollect_Parameters(t *testing.T) {
	data := collectPetstore(t)

	list := findOperation(t, data, "GET", "/pets")
	require.Len(t, list.Parameters, 3)
	assert.Equal(t, Parameter{Name: "age", In: "query", Example: "3", HasExample: true, Completable: true}, list.Parameters[0])
	assert.Equal(t, `"doggie"`, list.Parameters[2].Example)
	assert.Empty(t, list.Error)

	header := findOperation(t, data, "GET", "/petsHeader")
	assert.False(t, header.Parameters[1].HasExample)

	show := findOperation(t, data, "GET", "/pets/{petId}")
	assert.False(t, show.Parameters[0].Completable)
}

func TestCollect_ResponsesResolveReferences(t *testing.T) {
	list := findOperation(t, collectPetstore(t), "GET", "/pets")

	require.Len(t, list.Responses, 2)
	assert.Equal(t, Response{Code: "200", Description: "A paged array of pets"}, list.Responses[0])
	assert.Equal(t, Response{Code: "default", Description: "unexpected error"}, list.Responses[1])
}

func TestCollect_Bodies(t *testing.T) {
	data := collectPetstore(t)

	post := findOperation(t, data, "POST", "/pets")
	assert.Equal(t, Body{Declared: true, JSON: true, Example: `{"name":"doggie","tag":"dog"}`}, post.Body)

	put := findOperation(t, data, "PUT", "/pets")
	assert.Equal(t, `{"name":"kitty","tag":"cat"}`, put.Body.Example)

	patch := findOperation(t, data, "PATCH", "/pets")
	assert.Equal(t, Body{Declared: true}, patch.Body)

	get := findOperation(t, data, "GET", "/pets")
	assert.Equal(t, Body{}, get.Body)
}

func TestCollect_RecordsResolutionErrors(t *testing.T) {
	doc := &openapi3.T{
		OpenAPI:    "3.0.0",
		Components: &openapi3.Components{},
		Paths: openapi3.NewPaths(openapi3.WithPath("/broken", &openapi3.PathItem{
			Get: &openapi3.Operation{
				Parameters: openapi3.Parameters{{Ref: "#/components/parameters/Missing"}},
			},
		})),
	}

	data := Collect(doc, "inline")
	require.Len(t, data.Operations, 1)
	assert.Contains(t, data.Operations[0].Error, "Missing")
	assert.Empty(t, data.Title)
}

func TestCollect_NoPaths(t *testing.T) {
	data := Collect(&openapi3.T{OpenAPI: "3.1.0"}, "empty.yaml")
	assert.Empty(t, data.Operations)
}

func TestRender(t *testing.T) {
	data := collectPetstore(t)
	data.ConfigFiles = []string{"/repo/.ding.yml"}
	data.PathPrefix = "/api"

	output := Render(data)

	for _, want := range []string{
		"Spec:", "petstore.yaml",
		"Swagger Petstore 1.0.0", "OpenAPI 3.0.3",
		"Configuration:", "/repo/.ding.yml", "Path prefix:", "/api",
		"Operations (6):", "listPets",
		"age", "[query]", "no example",
		`{"name":"doggie","tag":"dog"}`, "not application/json",
		"Responses:", "200, default",
	} {
		assert.Contains(t, output, want)
	}
}

func TestRender_Empty(t *testing.T) {
	output := Render(&Data{SpecPath: "x.yaml"})

	assert.Contains(t, output, "No configuration files found")
	assert.Contains(t, output, "No operations declared")
}

func TestRender_Error(t *testing.T) {
	output := Render(&Data{Operations: []Operation{{Method: "GET", Path: "/x", Error: "reference not found"}}})
	assert.Contains(t, output, "reference not found")
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", truncateString("short", 10))
	assert.Equal(t, "abcdefg...", truncateString("abcdefghijklmnop", 10))
}
