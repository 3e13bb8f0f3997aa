package clock

import "errors"

// Domain-specific errors for the clock package.
var (
	ErrEmptyInput     = errors.New("input text is empty")
	ErrClassifyFailed = errors.New("failed to classify input")
)
