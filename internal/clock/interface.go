package clock

import (
	"context"

	"language-assistant/internal/router"
)

// Classifier labels a user utterance with an intent and entities.
type Classifier interface {
	Classify(ctx context.Context, text string) (router.ClassificationResult, error)
}

// UseCase defines the business logic interface for the clock domain.
type UseCase interface {
	// Ask classifies the user's text and answers it locally.
	Ask(ctx context.Context, input AskInput) (AskOutput, error)
}
