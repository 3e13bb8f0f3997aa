package questionanswering

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig indicates required settings are missing
	ErrInvalidConfig = errors.New("questionanswering: invalid config")

	// ErrEmptyQuestion indicates there is nothing to ask
	ErrEmptyQuestion = errors.New("questionanswering: question is required")
)

// APIError is a non-2xx response from the service.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	switch {
	case e.Code == "" && e.Message == "":
		return fmt.Sprintf("question answering API error %d", e.StatusCode)
	case e.Code == "":
		return fmt.Sprintf("question answering API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("question answering API error %d (%s): %s", e.StatusCode, e.Code, e.Message)
}
