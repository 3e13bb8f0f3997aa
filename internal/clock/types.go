package clock

import "language-assistant/internal/router"

// AskInput is one user turn.
type AskInput struct {
	Text string `json:"text"`
}

// AskOutput carries the classification alongside the routed answer so callers
// can show both.
type AskOutput struct {
	Query          string                      `json:"query"`
	Classification router.ClassificationResult `json:"classification"`
	Reply          router.Reply                `json:"reply"`
}
