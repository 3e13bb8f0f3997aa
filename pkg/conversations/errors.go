package conversations

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig indicates required settings are missing
	ErrInvalidConfig = errors.New("conversations: invalid config")

	// ErrEmptyText indicates there is nothing to analyse
	ErrEmptyText = errors.New("conversations: text is required")
)

// APIError is a non-2xx response from the service.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code == "" && e.Message == "" {
		return fmt.Sprintf("conversations API error %d", e.StatusCode)
	}
	if e.Code == "" {
		return fmt.Sprintf("conversations API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("conversations API error %d (%s): %s", e.StatusCode, e.Code, e.Message)
}
