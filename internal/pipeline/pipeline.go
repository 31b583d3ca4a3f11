// Package pipeline locates the curl command inside a shell pipeline and splices
// a rewritten command back into place.
package pipeline

import "strings"

const (
	separator = "|"
	joiner    = " | "
	curlWord  = "curl"
)

// Pipeline is a command line split on "|" with each segment trimmed
type Pipeline struct {
	segments  []string
	curlIndex int
}

// Split splits input into trimmed segments and finds the first curl segment
func Split(input string) *Pipeline {
	parts := strings.Split(input, separator)
	p := &Pipeline{segments: make([]string, 0, len(parts)), curlIndex: -1}
	for i, part := range parts {
		segment := strings.TrimSpace(part)
		if p.curlIndex < 0 && strings.HasPrefix(segment, curlWord) {
			p.curlIndex = i
		}
		p.segments = append(p.segments, segment)
	}
	return p
}

// Curl returns the curl segment, if there is one
func (p *Pipeline) Curl() (string, bool) {
	if p.curlIndex < 0 {
		return "", false
	}
	return p.segments[p.curlIndex], true
}

// Segments returns the trimmed segments
func (p *Pipeline) Segments() []string {
	return append([]string(nil), p.segments...)
}

// Replace substitutes command for the curl segment and rejoins the pipeline
// with " | ". The cursor is the summed length of the segments before the curl
// segment plus the offset of the last character of command; separators are
// not counted.
// Without a curl segment the pipeline is rejoined unchanged and the cursor
// is zero.
func (p *Pipeline) Replace(command string) (output string, cursor int) {
	if p.curlIndex < 0 {
		return strings.Join(p.segments, joiner), 0
	}

	segments := p.Segments()
	segments[p.curlIndex] = command
	for _, s := range segments[:p.curlIndex] {
		cursor += len(s)
	}
	cursor += len(command) - 1
	return strings.Join(segments, joiner), cursor
}
