package openapi

import (
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
)

// Location is where a parameter travels. Only headers and query fields can be
// completed; every other location is carried as LocationOther.
type Location int

const (
	// LocationOther covers path, cookie and unknown locations
	LocationOther Location = iota
	// LocationHeader is a request header
	LocationHeader
	// LocationQuery is a URL-encoded query field
	LocationQuery
)

func (l Location) String() string {
	switch l {
	case LocationHeader:
		return openapi3.ParameterInHeader
	case LocationQuery:
		return openapi3.ParameterInQuery
	default:
		return "other"
	}
}

func locationOf(in string) Location {
	switch in {
	case openapi3.ParameterInHeader:
		return LocationHeader
	case openapi3.ParameterInQuery:
		return LocationQuery
	default:
		return LocationOther
	}
}

// Parameter is a resolved parameter reduced to what completion needs
type Parameter struct {
	Name    string
	In      Location
	Example any // nil when the spec declares no example
	// Declared is the raw "in" value in the document
	Declared string
}

// HasExample reports whether the spec declares an example
func (p Parameter) HasExample() bool {
	return p.Example != nil
}

// Table holds the parameters of one operation sorted by name.
// The ordering drives the cyclic advance of the completion selector.
type Table []Parameter

// Index returns the position of name in the table, or -1
func (t Table) Index(name string) int {
	i := sort.Search(len(t), func(i int) bool { return t[i].Name >= name })
	if i < len(t) && t[i].Name == name {
		return i
	}
	return -1
}

// BuildTable resolves every parameter reference and sorts the result by name.
// A later declaration replaces an earlier one with the same name.
// Any resolution failure aborts the whole table.
func BuildTable(r *Resolver, refs openapi3.Parameters) (Table, error) {
	byName := make(map[string]Parameter, len(refs))
	for _, ref := range refs {
		p, err := r.Parameter(ref)
		if err != nil {
			return nil, err
		}
		byName[p.Name] = Parameter{
			Name:     p.Name,
			In:       locationOf(p.In),
			Example:  p.Example,
			Declared: p.In,
		}
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	table := make(Table, 0, len(names))
	for _, name := range names {
		table = append(table, byName[name])
	}
	return table, nil
}
