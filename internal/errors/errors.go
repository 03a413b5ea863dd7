package errors

import (
	"fmt"
)

// ConfigError represents an error related to configuration
type ConfigError struct {
	Section string
	Message string
	Err     error
}

// Error returns the error message
func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration error in %s: %s: %v", e.Section, e.Message, e.Err)
	}
	return fmt.Sprintf("configuration error in %s: %s", e.Section, e.Message)
}

// Unwrap returns the underlying error
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// GenerationError represents a failure while producing a QR code image
type GenerationError struct {
	Op   string
	Path string
	Err  error
}

// Error returns the error message
func (e *GenerationError) Error() string {
	return fmt.Sprintf("qr generation failed during %s (%s): %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *GenerationError) Unwrap() error {
	return e.Err
}
