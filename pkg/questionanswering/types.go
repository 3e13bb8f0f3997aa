package questionanswering

import (
	"fmt"
	"strings"
	"time"
)

// Config holds the settings for a deployed question answering project.
type Config struct {
	Endpoint       string
	Key            string
	ProjectName    string
	DeploymentName string
	APIVersion     string
	Timeout        time.Duration

	// Top limits the number of answers; 0 leaves it to the service.
	Top int
	// ConfidenceThreshold drops answers scored below it; 0 disables the filter.
	ConfidenceThreshold float64
}

// Validate checks required fields and fills defaults.
func (c *Config) Validate() error {
	var missing []string
	if c.Endpoint == "" {
		missing = append(missing, "endpoint")
	}
	if c.Key == "" {
		missing = append(missing, "key")
	}
	if c.ProjectName == "" {
		missing = append(missing, "project name")
	}
	if c.DeploymentName == "" {
		missing = append(missing, "deployment name")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(missing, ", "))
	}

	c.Endpoint = strings.TrimRight(c.Endpoint, "/")
	if c.APIVersion == "" {
		c.APIVersion = DefaultAPIVersion
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return nil
}

// QueryRequest is the body of a query-knowledgebases call.
type QueryRequest struct {
	Question                 string  `json:"question"`
	Top                      int     `json:"top,omitempty"`
	ConfidenceScoreThreshold float64 `json:"confidenceScoreThreshold,omitempty"`
}

// QueryResponse is the body returned by query-knowledgebases.
type QueryResponse struct {
	Answers []Answer `json:"answers"`
}

// Answer is one ranked candidate answer.
type Answer struct {
	ID         int               `json:"id"`
	Answer     string            `json:"answer"`
	Confidence float64           `json:"confidenceScore"`
	Source     string            `json:"source"`
	Questions  []string          `json:"questions,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// ErrorResponse is the Azure AI services error envelope.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
