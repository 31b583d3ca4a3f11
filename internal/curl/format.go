package curl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Format renders a request as a single-line curl command:
//
//	curl -X <METHOD> [-G ]<url> [-H "<name>: <value>"]... [-d '<json>' | --data-urlencode '<k>=<v>'...]
//
// -G is emitted only when the request has no body and at least one field.
func Format(r *Request) string {
	var b strings.Builder

	b.WriteString("curl -X ")
	b.WriteString(r.Method)
	b.WriteString(" ")
	if !r.HasBody() && r.Fields.Len() > 0 {
		b.WriteString("-G ")
	}
	b.WriteString(r.URL)

	for pair := r.Headers.Oldest(); pair != nil; pair = pair.Next() {
		value := pair.Value
		if value == `""` {
			value = ""
		}
		fmt.Fprintf(&b, " -H \"%s: %s\"", pair.Key, value)
	}

	if r.HasBody() {
		fmt.Fprintf(&b, " -d '%s'", PrettyJSON(r.Body))
	} else if r.Fields.Len() > 0 {
		fields := make([]string, 0, r.Fields.Len())
		for pair := r.Fields.Oldest(); pair != nil; pair = pair.Next() {
			fields = append(fields, fmt.Sprintf("--data-urlencode '%s=%s'", pair.Key, pair.Value))
		}
		b.WriteString(" ")
		b.WriteString(strings.Join(fields, " "))
	}

	return b.String()
}

// PrettyJSON re-indents a JSON document with two spaces.
// Anything that is not exactly one JSON value renders as {}.
func PrettyJSON(body string) string {
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return "{}"
	}
	if _, err := dec.Token(); err != io.EOF {
		return "{}"
	}

	return encodeJSON(v, "  ")
}

// CompactJSON serializes v without indentation or HTML escaping.
// It returns false when v cannot be serialized.
func CompactJSON(v any) (string, bool) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", false
	}
	return strings.TrimSuffix(buf.String(), "\n"), true
}

func encodeJSON(v any, indent string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(v); err != nil {
		return "{}"
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
