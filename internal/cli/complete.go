// Package cli implements the ding commands on top of the completion engine.
package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/NikitaCOEUR/ding/internal/completion"
	"github.com/NikitaCOEUR/ding/internal/logger"
	"github.com/NikitaCOEUR/ding/internal/openapi"
	"github.com/NikitaCOEUR/ding/internal/pipeline"
	"github.com/NikitaCOEUR/ding/internal/timing"
	"github.com/NikitaCOEUR/ding/internal/trace"
)

// CompleteParams contains parameters for the root completion command
type CompleteParams struct {
	LogLevel   string
	SpecPath   string
	PathPrefix string
	JSON       bool
	Input      io.Reader
	Output     io.Writer
	// LogOutput defaults to stderr
	LogOutput io.Writer
}

// envelope is the --json output read by the shell widgets
type envelope struct {
	CursorPosition int    `json:"cursor_position"`
	Stdout         string `json:"stdout"`
}

// Complete reads a pipeline from Input and writes it back with its curl
// command completed.
//
// Input without a curl command is echoed and Complete returns nil. Any other
// failure to complete echoes the input and returns a derrors.DingError, so the
// caller can exit non-zero without printing anything.
func Complete(params CompleteParams) error {
	ctx := context.Background()
	timer := timing.NewTimer()
	log := logger.New(params.LogLevel, params.LogOutput)

	if params.Input == nil {
		params.Input = os.Stdin
	}
	if params.Output == nil {
		params.Output = os.Stdout
	}

	data, err := io.ReadAll(params.Input)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	input := string(data)

	p := pipeline.Split(input)
	command, ok := p.Curl()
	if !ok {
		log.Debug().Msg("No curl command in input")
		return echo(params.Output, input)
	}

	passThrough := func(err error) error {
		log.Debug().Err(err).Str("command", command).Msg("Leaving command unchanged")
		if werr := echo(params.Output, input); werr != nil {
			return werr
		}
		return err
	}

	endLoad := trace.Region(ctx, "load")
	doc, err := openapi.LoadFile(params.SpecPath)
	endLoad()
	log.Debug().Str("spec", params.SpecPath).Dur("duration_ms", timer.Mark("load")).Msg("Loaded spec")
	if err != nil {
		return passThrough(err)
	}

	engine := completion.NewEngine(doc,
		completion.WithPathPrefix(params.PathPrefix),
		completion.WithLogger(log),
	)

	endComplete := trace.Region(ctx, "complete")
	result, err := engine.Complete(command)
	endComplete()
	timer.Mark("complete")
	if err != nil {
		return passThrough(err)
	}

	rendered := result.Command()
	output, cursor := p.Replace(rendered)
	if log.DebugEnabled() {
		log.Debug().Str("edit", describeEdit(command, rendered)).Int("cursor", cursor).Msg("Rewrote curl command")
	}

	if params.JSON {
		err = writeEnvelope(params.Output, envelope{CursorPosition: cursor, Stdout: output})
	} else {
		err = echo(params.Output, output)
	}

	timer.Mark("write")
	log.Debug().Str("timing", timer.Summary()).Msg("Completion finished")
	return err
}

func echo(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func writeEnvelope(w io.Writer, e envelope) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(e); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return echo(w, strings.TrimSuffix(buf.String(), "\n"))
}

// describeEdit renders the character-level changes from before to after,
// with insertions as +"..." and deletions as -"..."
func describeEdit(before, after string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(before, after, false))

	var parts []string
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			parts = append(parts, fmt.Sprintf("+%q", d.Text))
		case diffmatchpatch.DiffDelete:
			parts = append(parts, fmt.Sprintf("-%q", d.Text))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}
