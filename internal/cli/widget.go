package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/NikitaCOEUR/ding/internal/shell"
	"github.com/NikitaCOEUR/ding/pkg/version"
)

// WidgetParams contains parameters for the widget command
type WidgetParams struct {
	Shell      string
	Key        string
	SpecPath   string
	PathPrefix string
	Output     io.Writer
}

// Widget prints the line-editor widget for the requested shell.
// The spec path is made absolute so the widget works from any directory.
func Widget(params WidgetParams) error {
	binary, err := os.Executable()
	if err != nil {
		binary = "ding" // Fallback to PATH
	}

	spec := params.SpecPath
	if spec != "" {
		if abs, err := filepath.Abs(spec); err == nil {
			spec = abs
		}
	}

	code, err := shell.GenerateWidget(shell.WidgetOptions{
		Shell:      shell.DetectShell(params.Shell),
		Key:        params.Key,
		Binary:     binary,
		Spec:       spec,
		PathPrefix: params.PathPrefix,
		Version:    version.Version,
	})
	if err != nil {
		return err
	}

	if params.Output == nil {
		params.Output = os.Stdout
	}
	_, err = fmt.Fprint(params.Output, code)
	return err
}
