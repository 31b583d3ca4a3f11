// Package curl parses a single curl command into a Request and renders a
// Request back into curl command text.
package curl

import (
	"net/url"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Request is a parsed curl invocation.
// Headers and Fields keep insertion order so that re-rendering is stable.
type Request struct {
	Method string
	// URL is the target as written on the command line
	URL string
	// Path is the path component of URL
	Path    string
	Headers *orderedmap.OrderedMap[string, string]
	// Fields holds --data-urlencode name/value pairs
	Fields *orderedmap.OrderedMap[string, string]
	Body   string
}

// NewRequest creates an empty request for method and rawURL.
// A URL without a scheme is read as http://, as curl does.
func NewRequest(method, rawURL string) (*Request, error) {
	target := rawURL
	if !strings.Contains(target, "://") {
		target = "http://" + target
	}
	u, err := url.Parse(target)
	if err != nil {
		return nil, err
	}
	path := u.Path
	if path == "" {
		path = "/"
	}
	return &Request{
		Method:  method,
		URL:     rawURL,
		Path:    path,
		Headers: orderedmap.New[string, string](),
		Fields:  orderedmap.New[string, string](),
	}, nil
}

// HeaderKey normalizes a header name for storage and lookup
func HeaderKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Header returns the value of a header, matched case-insensitively
func (r *Request) Header(name string) (string, bool) {
	return r.Headers.Get(HeaderKey(name))
}

// SetHeader inserts or overwrites a header. An overwritten header keeps its position.
func (r *Request) SetHeader(name, value string) {
	r.Headers.Set(HeaderKey(name), value)
}

// DelHeader removes a header if present
func (r *Request) DelHeader(name string) {
	r.Headers.Delete(HeaderKey(name))
}

// Field returns the value of a URL-encoded field
func (r *Request) Field(name string) (string, bool) {
	return r.Fields.Get(name)
}

// SetField inserts or overwrites a URL-encoded field
func (r *Request) SetField(name, value string) {
	r.Fields.Set(name, value)
}

// DelField removes a URL-encoded field if present
func (r *Request) DelField(name string) {
	r.Fields.Delete(name)
}

// HasBody reports whether a non-empty body is set
func (r *Request) HasBody() bool {
	return r.Body != ""
}

// PopulatedHeaders returns the names of headers with a non-empty value
func (r *Request) PopulatedHeaders() map[string]bool {
	return populated(r.Headers)
}

// PopulatedFields returns the names of fields with a non-empty value
func (r *Request) PopulatedFields() map[string]bool {
	return populated(r.Fields)
}

func populated(m *orderedmap.OrderedMap[string, string]) map[string]bool {
	names := make(map[string]bool, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value != "" {
			names[pair.Key] = true
		}
	}
	return names
}
