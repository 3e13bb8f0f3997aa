package conversations

import (
	"fmt"
	"strings"
	"time"
)

// Config holds the settings for a deployed conversational language understanding project.
type Config struct {
	Endpoint       string
	Key            string
	ProjectName    string
	DeploymentName string
	Language       string
	APIVersion     string
	Timeout        time.Duration
	Verbose        bool
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
	if c.Language == "" {
		c.Language = DefaultLanguage
	}
	if c.APIVersion == "" {
		c.APIVersion = DefaultAPIVersion
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return nil
}

// AnalyzeRequest is the body of an analyze-conversations call.
type AnalyzeRequest struct {
	Kind          string        `json:"kind"`
	AnalysisInput AnalysisInput `json:"analysisInput"`
	Parameters    Parameters    `json:"parameters"`
}

// AnalysisInput wraps the single utterance being analysed.
type AnalysisInput struct {
	ConversationItem ConversationItem `json:"conversationItem"`
	IsLoggingEnabled bool             `json:"isLoggingEnabled"`
}

// ConversationItem is one utterance.
type ConversationItem struct {
	ParticipantID string `json:"participantId"`
	ID            string `json:"id"`
	Modality      string `json:"modality"`
	Language      string `json:"language"`
	Text          string `json:"text"`
}

// Parameters selects the deployed project.
type Parameters struct {
	ProjectName    string `json:"projectName"`
	DeploymentName string `json:"deploymentName"`
	Verbose        bool   `json:"verbose"`
}

// AnalyzeResponse is the body returned by analyze-conversations.
type AnalyzeResponse struct {
	Kind   string `json:"kind"`
	Result Result `json:"result"`
}

// Result contains the query echo and the prediction.
type Result struct {
	Query      string     `json:"query"`
	Prediction Prediction `json:"prediction"`
}

// Prediction is the classification of one utterance.
type Prediction struct {
	TopIntent   string        `json:"topIntent"`
	ProjectKind string        `json:"projectKind"`
	Intents     []IntentScore `json:"intents"`
	Entities    []Entity      `json:"entities"`
}

// IntentScore is one candidate intent.
type IntentScore struct {
	Category        string  `json:"category"`
	ConfidenceScore float64 `json:"confidenceScore"`
}

// Entity is an extracted span.
type Entity struct {
	Category        string  `json:"category"`
	Text            string  `json:"text"`
	Offset          int     `json:"offset"`
	Length          int     `json:"length"`
	ConfidenceScore float64 `json:"confidenceScore"`
}

// TopConfidence returns the score of the top intent, or of the first ranked intent
// when the top intent is not listed.
func (p Prediction) TopConfidence() float64 {
	for _, in := range p.Intents {
		if in.Category == p.TopIntent {
			return in.ConfidenceScore
		}
	}
	if len(p.Intents) > 0 {
		return p.Intents[0].ConfidenceScore
	}
	return 0
}

// ErrorResponse is the Azure AI services error envelope.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
