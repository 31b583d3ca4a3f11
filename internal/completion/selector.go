// Package completion decides which single header, query field or JSON body
// to add to a curl request, based on the operation declared in an OpenAPI
// document.
package completion

import (
	"github.com/NikitaCOEUR/ding/internal/curl"
	"github.com/NikitaCOEUR/ding/internal/openapi"
)

// Action is the kind of edit a Decision makes
type Action int

const (
	// NoOp leaves the request untouched
	NoOp Action = iota
	// FillHeader sets a request header
	FillHeader
	// FillQuery sets a URL-encoded field
	FillQuery
	// FillBody sets the JSON content headers and, when Value is not empty, the body
	FillBody
)

func (a Action) String() string {
	switch a {
	case FillHeader:
		return "header"
	case FillQuery:
		return "query"
	case FillBody:
		return "body"
	default:
		return "noop"
	}
}

// invalidHeaderValue replaces examples that cannot travel in a header
const invalidHeaderValue = "invalid"

// emptyHeaderValue marks a header inserted without an example.
// It renders as an empty value.
const emptyHeaderValue = `""`

// Slot is a single header or query field on the request
type Slot struct {
	Name string
	In   openapi.Location
}

// Decision is the one edit computed for an invocation
type Decision struct {
	Action Action
	Name   string
	Value  string
	// Cleared is the emptied slot that is removed before the fill, if any
	Cleared *Slot
}

// Select computes the parameter edit for req.
//
// An emptied slot (present with an empty value) is replaced by the next
// parameter in table order whose name is not already populated, wrapping
// around at the end. Without an emptied slot, the first parameter absent
// from the request is added.
func Select(table openapi.Table, req *curl.Request) Decision {
	slot, idx, found := emptiedSlot(table, req)
	if !found {
		return firstAbsent(table, req)
	}

	populated := req.PopulatedFields()
	if slot.In == openapi.LocationHeader {
		populated = req.PopulatedHeaders()
	}

	d := fill(advance(table, idx, slot.In, populated))
	d.Cleared = &slot
	return d
}

// Apply performs d on req
func Apply(d Decision, req *curl.Request) {
	if d.Cleared != nil {
		switch d.Cleared.In {
		case openapi.LocationHeader:
			req.DelHeader(d.Cleared.Name)
		case openapi.LocationQuery:
			req.DelField(d.Cleared.Name)
		}
	}

	switch d.Action {
	case FillHeader:
		req.SetHeader(d.Name, d.Value)
	case FillQuery:
		req.SetField(d.Name, d.Value)
	case FillBody:
		req.SetHeader("content-type", mediaTypeJSON)
		req.SetHeader("accept", mediaTypeJSON)
		if d.Value != "" {
			req.Body = d.Value
		}
	}
}

func emptiedSlot(table openapi.Table, req *curl.Request) (Slot, int, bool) {
	for i, p := range table {
		var (
			value   string
			present bool
		)
		switch p.In {
		case openapi.LocationHeader:
			value, present = req.Header(p.Name)
		case openapi.LocationQuery:
			value, present = req.Field(p.Name)
		default:
			continue
		}
		if present && value == "" {
			return Slot{Name: p.Name, In: p.In}, i, true
		}
	}
	return Slot{}, -1, false
}

// advance walks the table cyclically from the entry after idx and stops at
// the first name missing from populated. After len(table) steps it stops
// wherever it is, even on a populated entry.
func advance(table openapi.Table, idx int, kind openapi.Location, populated map[string]bool) openapi.Parameter {
	n := len(table)
	i := (idx + 1) % n
	for steps := 0; steps < n && populated[slotKey(table[i].Name, kind)]; steps++ {
		i = (i + 1) % n
	}
	return table[i]
}

func slotKey(name string, kind openapi.Location) string {
	if kind == openapi.LocationHeader {
		return curl.HeaderKey(name)
	}
	return name
}

func firstAbsent(table openapi.Table, req *curl.Request) Decision {
	for _, p := range table {
		var present bool
		switch p.In {
		case openapi.LocationHeader:
			_, present = req.Header(p.Name)
		case openapi.LocationQuery:
			_, present = req.Field(p.Name)
		default:
			continue
		}
		if !present {
			return fill(p)
		}
	}
	return Decision{Action: NoOp}
}

func fill(p openapi.Parameter) Decision {
	switch p.In {
	case openapi.LocationHeader:
		return Decision{Action: FillHeader, Name: p.Name, Value: headerValue(p)}
	case openapi.LocationQuery:
		return Decision{Action: FillQuery, Name: p.Name, Value: queryValue(p)}
	default:
		return Decision{Action: NoOp, Name: p.Name}
	}
}

func headerValue(p openapi.Parameter) string {
	if !p.HasExample() {
		return emptyHeaderValue
	}
	s, ok := curl.CompactJSON(p.Example)
	if !ok || !validHeaderValue(s) {
		return invalidHeaderValue
	}
	return s
}

func queryValue(p openapi.Parameter) string {
	if !p.HasExample() {
		return ""
	}
	s, ok := curl.CompactJSON(p.Example)
	if !ok {
		return ""
	}
	return s
}

// validHeaderValue accepts visible ASCII, space and horizontal tab
func validHeaderValue(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\t' && (c < 0x20 || c > 0x7e) {
			return false
		}
	}
	return true
}
