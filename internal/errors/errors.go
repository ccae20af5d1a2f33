// Package errors provides typed errors for scaledown.
package errors

import "fmt"

// ErrorCode identifies the type of error.
type ErrorCode string

const (
	ErrNoModelSelected   ErrorCode = "NO_MODEL_SELECTED"
	ErrConfigNotFound    ErrorCode = "CONFIG_NOT_FOUND"
	ErrConfigInvalid     ErrorCode = "CONFIG_INVALID"
	ErrGuideInvalid      ErrorCode = "GUIDE_INVALID"
	ErrAPIAuthFailed     ErrorCode = "API_AUTH_FAILED"
	ErrCompressionFailed ErrorCode = "COMPRESSION_FAILED"
)

// ScaleDownError represents a typed error with user-friendly hints.
type ScaleDownError struct {
	Code    ErrorCode
	Message string
	Hint    string
	Cause   error
}

func (e *ScaleDownError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ScaleDownError) Unwrap() error {
	return e.Cause
}

// New creates a new ScaleDownError.
func New(code ErrorCode, message, hint string) *ScaleDownError {
	return &ScaleDownError{
		Code:    code,
		Message: message,
		Hint:    hint,
	}
}

// Wrap creates a new ScaleDownError wrapping an existing error.
func Wrap(code ErrorCode, message, hint string, cause error) *ScaleDownError {
	return &ScaleDownError{
		Code:    code,
		Message: message,
		Hint:    hint,
		Cause:   cause,
	}
}

// NoModelSelected returns an error for operations that require a bound model.
func NoModelSelected() *ScaleDownError {
	return &ScaleDownError{
		Code:    ErrNoModelSelected,
		Message: "no model selected",
		Hint:    "Pass --model or set default_model in ~/.config/scaledown/config.yaml",
	}
}

// ConfigNotFound returns an error for a missing config file.
func ConfigNotFound(path string) *ScaleDownError {
	return &ScaleDownError{
		Code:    ErrConfigNotFound,
		Message: fmt.Sprintf("config file not found: %s", path),
		Hint:    "Create a config at ~/.config/scaledown/config.yaml",
	}
}

// ConfigInvalid returns an error for invalid config.
func ConfigInvalid(reason string) *ScaleDownError {
	return &ScaleDownError{
		Code:    ErrConfigInvalid,
		Message: fmt.Sprintf("invalid config: %s", reason),
		Hint:    "Check your config file at ~/.config/scaledown/config.yaml",
	}
}

// GuideInvalid returns an error for a guide file that failed to parse.
func GuideInvalid(path, reason string) *ScaleDownError {
	return &ScaleDownError{
		Code:    ErrGuideInvalid,
		Message: fmt.Sprintf("invalid guide file %s: %s", path, reason),
		Hint:    "Guide files need a key, a name, and valid rule patterns",
	}
}

// APIAuthFailed returns an error for missing API credentials.
func APIAuthFailed() *ScaleDownError {
	return &ScaleDownError{
		Code:    ErrAPIAuthFailed,
		Message: "ScaleDown API authentication failed",
		Hint:    "Set SCALEDOWN_API_KEY or api.key in your config",
	}
}

// CompressionFailed returns an error for remote compression failures.
func CompressionFailed(message string, cause error) *ScaleDownError {
	return &ScaleDownError{
		Code:    ErrCompressionFailed,
		Message: message,
		Hint:    "The local optimizer still works: run `scaledown optimize`",
		Cause:   cause,
	}
}
