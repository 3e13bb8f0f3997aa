package clock

import (
	"context"
	"fmt"

	"language-assistant/internal/router"
	"language-assistant/pkg/conversations"
)

// CLUClassifier adapts the conversation analysis client to Classifier.
type CLUClassifier struct {
	client conversations.IConversations
}

var _ Classifier = (*CLUClassifier)(nil)

// NewCLUClassifier creates a Classifier backed by a deployed CLU project.
func NewCLUClassifier(client conversations.IConversations) *CLUClassifier {
	return &CLUClassifier{client: client}
}

// Classify sends text to the service and maps its prediction onto router types.
func (c *CLUClassifier) Classify(ctx context.Context, text string) (router.ClassificationResult, error) {
	pred, err := c.client.Analyze(ctx, text)
	if err != nil {
		return router.ClassificationResult{}, fmt.Errorf("%w: %w", ErrClassifyFailed, err)
	}

	entities := make([]router.Entity, 0, len(pred.Entities))
	for _, e := range pred.Entities {
		entities = append(entities, router.Entity{
			Category:   router.Category(e.Category),
			Text:       e.Text,
			Confidence: e.ConfidenceScore,
		})
	}

	return router.ClassificationResult{
		TopIntent:  router.ParseIntent(pred.TopIntent),
		RawIntent:  pred.TopIntent,
		Confidence: pred.TopConfidence(),
		Entities:   entities,
	}, nil
}
