package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/NikitaCOEUR/ding/internal/openapi"
	"github.com/NikitaCOEUR/ding/internal/status"
)

// StatusParams contains parameters for the Status command
type StatusParams struct {
	Settings Settings
	Output   io.Writer
}

// Status displays what ding can complete for the configured spec
func Status(params StatusParams) error {
	if params.Settings.SpecPath == "" {
		return fmt.Errorf("no spec given: use --spec or set spec in a .ding.yml file")
	}

	doc, err := openapi.LoadFile(params.Settings.SpecPath)
	if err != nil {
		return fmt.Errorf("failed to load spec: %w", err)
	}

	data := status.Collect(doc, params.Settings.SpecPath)
	data.ConfigFiles = params.Settings.ConfigFiles
	data.PathPrefix = params.Settings.PathPrefix

	if params.Output == nil {
		params.Output = os.Stdout
	}
	_, err = fmt.Fprintln(params.Output, status.Render(data))
	return err
}
