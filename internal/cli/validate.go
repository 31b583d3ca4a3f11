package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/NikitaCOEUR/ding/internal/config"
)

// Validate validates a ding configuration file.
// Without a path, the project config of the current directory is used.
func Validate(configPath string, out io.Writer) error {
	if out == nil {
		out = os.Stdout
	}

	if configPath == "" {
		currentDir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}

		files := config.FindConfigFiles(currentDir)
		if len(files) == 0 {
			return fmt.Errorf("no config file found in current directory or its parents")
		}
		configPath = files[len(files)-1]
	}

	fmt.Fprintf(out, "Validating: %s\n\n", configPath)

	result, err := config.Validate(configPath)
	if err != nil {
		return err
	}

	if result.Valid {
		fmt.Fprintln(out, "✅ Configuration is valid!")
		return nil
	}

	fmt.Fprintln(out, "❌ Configuration has errors:")
	for i, validationErr := range result.Errors {
		fmt.Fprintf(out, "%d. [%s] %s\n", i+1, validationErr.Field, validationErr.Message)
	}

	fmt.Fprintf(out, "\nFound %d error(s)\n", len(result.Errors))

	return fmt.Errorf("validation failed")
}
