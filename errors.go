package threadview

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a conversation tree failed validation.
	ErrValidation = errors.New("validation error")
)
