package completion

import (
	"io"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/NikitaCOEUR/ding/internal/curl"
	"github.com/NikitaCOEUR/ding/internal/logger"
	"github.com/NikitaCOEUR/ding/internal/openapi"
)

// Engine completes curl commands against one OpenAPI document
type Engine struct {
	doc        *openapi3.T
	resolver   *openapi.Resolver
	pathPrefix string
	log        *logger.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithPathPrefix strips prefix from request paths before matching
func WithPathPrefix(prefix string) Option {
	return func(e *Engine) {
		e.pathPrefix = strings.TrimSuffix(prefix, "/")
	}
}

// WithLogger sets the logger used for debug output
func WithLogger(log *logger.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// NewEngine creates an engine for doc
func NewEngine(doc *openapi3.T, opts ...Option) *Engine {
	e := &Engine{
		doc:      doc,
		resolver: openapi.NewResolver(doc),
		log:      logger.New("error", io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Result is the outcome of a completed command
type Result struct {
	Request   *curl.Request
	Operation *openapi3.Operation
	// Decisions lists the edits applied, parameter edit first
	Decisions []Decision
}

// Command renders the completed request as curl text
func (r *Result) Command() string {
	return curl.Format(r.Request)
}

// Complete parses command, applies at most one parameter edit and, when the
// request has no body, the body edit.
// Any failure leaves nothing partially applied: the caller gets an error and
// keeps the original command.
func (e *Engine) Complete(command string) (*Result, error) {
	req, err := curl.Parse(command)
	if err != nil {
		return nil, err
	}
	// Accept is recomputed from the operation
	req.DelHeader("accept")

	path := e.operationPath(req.Path)
	e.log.Debug().Str("method", req.Method).Str("path", path).Msg("Matching operation")

	op, err := openapi.Match(e.doc, path, req.Method)
	if err != nil {
		return nil, err
	}

	table, err := openapi.BuildTable(e.resolver, op.Parameters)
	if err != nil {
		return nil, err
	}
	e.log.Debug().Str("operation", op.OperationID).Int("parameters", len(table)).Msg("Built parameter table")

	result := &Result{Request: req, Operation: op}

	d := Select(table, req)
	e.logDecision(d)
	Apply(d, req)
	result.Decisions = append(result.Decisions, d)

	if !req.HasBody() {
		bd, err := SelectBody(e.resolver, op)
		if err != nil {
			return nil, err
		}
		e.logDecision(bd)
		Apply(bd, req)
		result.Decisions = append(result.Decisions, bd)
	}

	return result, nil
}

func (e *Engine) operationPath(path string) string {
	if e.pathPrefix == "" || !strings.HasPrefix(path, e.pathPrefix) {
		return path
	}
	trimmed := strings.TrimPrefix(path, e.pathPrefix)
	if trimmed == "" {
		return "/"
	}
	if !strings.HasPrefix(trimmed, "/") {
		// Prefix ended mid-segment
		return path
	}
	return trimmed
}

func (e *Engine) logDecision(d Decision) {
	entry := e.log.Debug().Str("action", d.Action.String()).Str("name", d.Name).Str("value", d.Value)
	if d.Cleared != nil {
		entry = entry.Str("cleared", d.Cleared.Name)
	}
	entry.Msg("Completion decision")
}
