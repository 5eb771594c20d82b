package domain

import "errors"

// --- VALIDATION (expected, surfaced through result.Result) ---
var (
	ErrMessageTooLong = errors.New("message text is too long")
	ErrMessageEmpty   = errors.New("message text cannot be empty")
)

// --- FAULTS (returned as plain errors) ---
var (
	ErrMessageNotFound = errors.New("message not found")
)

// IsValidationError reports whether err is one of the text validation errors.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMessageTooLong) || errors.Is(err, ErrMessageEmpty)
}
