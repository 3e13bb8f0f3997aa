package qna

import (
	"context"

	"language-assistant/pkg/questionanswering"
)

// Answerer looks up answers for a question in a knowledge base.
type Answerer interface {
	GetAnswers(ctx context.Context, question string) ([]questionanswering.Answer, error)
}

// UseCase defines the business logic interface for the Q&A domain.
type UseCase interface {
	// Ask returns every candidate answer for the question, best first.
	Ask(ctx context.Context, input AskInput) (AskOutput, error)
}
