package speechrest

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig indicates required settings are missing
	ErrInvalidConfig = errors.New("speechrest: invalid config")

	// ErrEmptyText indicates there is nothing to synthesize
	ErrEmptyText = errors.New("speechrest: text is required")
)

// APIError is a non-2xx response from the speech service.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("speech API error %d", e.StatusCode)
	}
	return fmt.Sprintf("speech API error %d: %s", e.StatusCode, e.Body)
}
