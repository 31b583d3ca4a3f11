package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// ValidationError represents a validation error with details
type ValidationError struct {
	Field   string
	Message string
}

// ValidationResult contains the results of config validation
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

func (r *ValidationResult) addError(field, message string) {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: message})
}

// Validate validates a config file: schema first, then the values the
// loader would act on
func Validate(path string) (*ValidationResult, error) {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	result, err := ValidateWithSchema(path, content)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return result, nil
	}

	cfg, err := New().Load(path)
	if err != nil {
		result.addError("syntax", fmt.Sprintf("Failed to parse config: %v", err))
		return result, nil
	}

	if cfg.Spec != "" {
		info, err := os.Stat(cfg.Spec)
		switch {
		case err != nil:
			result.addError("spec", fmt.Sprintf("Spec file not found: %s", cfg.Spec))
		case info.IsDir():
			result.addError("spec", fmt.Sprintf("Spec path is a directory: %s", cfg.Spec))
		}
	}

	if cfg.LogLevel != "" {
		if _, err := logrus.ParseLevel(strings.ToLower(cfg.LogLevel)); err != nil {
			result.addError("log_level", fmt.Sprintf("Unknown log level: %s", cfg.LogLevel))
		}
	}

	if cfg.PathPrefix != "" && strings.TrimSuffix(cfg.PathPrefix, "/") == "" {
		result.addError("path_prefix", "Path prefix strips nothing")
	}

	return result, nil
}
