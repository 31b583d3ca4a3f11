// Package derrors provides custom error types for ding.
// Every error defined here is a pass-through failure: the caller echoes the
// original command line unchanged and exits with a non-zero status.
package derrors

import (
	"errors"
	"fmt"
)

// DingError is the base interface for all ding errors
type DingError interface {
	error
	// Code returns a unique error code for programmatic error handling
	Code() string
}

// baseError provides common functionality for all ding errors
type baseError struct {
	code    string
	message string
	cause   error
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Code() string {
	return e.code
}

func (e *baseError) Unwrap() error {
	return e.cause
}

// IsPassThrough reports whether err (or anything it wraps) is a DingError.
func IsPassThrough(err error) bool {
	var de DingError
	return errors.As(err, &de)
}

// SpecError represents a missing, empty or unparseable OpenAPI document
type SpecError struct {
	baseError
	Path string
}

// NewSpecError creates a new spec error
func NewSpecError(path string, message string, cause error) *SpecError {
	return &SpecError{
		baseError: baseError{
			code:    "SPEC_ERROR",
			message: message,
			cause:   cause,
		},
		Path: path,
	}
}

// CurlParseError represents a curl command that could not be parsed
type CurlParseError struct {
	baseError
	Command string
}

// NewCurlParseError creates a new curl parse error
func NewCurlParseError(command string, message string, cause error) *CurlParseError {
	return &CurlParseError{
		baseError: baseError{
			code:    "CURL_PARSE_ERROR",
			message: message,
			cause:   cause,
		},
		Command: command,
	}
}

// NoMatchError represents a request whose path or method has no operation
type NoMatchError struct {
	baseError
	Path   string
	Method string
}

// NewNoMatchError creates a new no match error
func NewNoMatchError(path, method string, message string) *NoMatchError {
	return &NoMatchError{
		baseError: baseError{
			code:    "NO_MATCH",
			message: message,
		},
		Path:   path,
		Method: method,
	}
}

// UnresolvedReferenceError represents a $ref that points nowhere
type UnresolvedReferenceError struct {
	baseError
	Kind      string
	Reference string
}

// NewUnresolvedReferenceError creates a new unresolved reference error
func NewUnresolvedReferenceError(kind, reference string, message string) *UnresolvedReferenceError {
	return &UnresolvedReferenceError{
		baseError: baseError{
			code:    "UNRESOLVED_REFERENCE",
			message: message,
		},
		Kind:      kind,
		Reference: reference,
	}
}

// ConfigurationError represents errors in configuration files
type ConfigurationError struct {
	baseError
	Path string
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(path string, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		baseError: baseError{
			code:    "CONFIG_ERROR",
			message: message,
			cause:   cause,
		},
		Path: path,
	}
}
