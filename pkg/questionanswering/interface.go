package questionanswering

import "context"

// IQuestionAnswering defines the interface for the question answering client.
// Implementations are safe for concurrent use.
type IQuestionAnswering interface {
	GetAnswers(ctx context.Context, question string) ([]Answer, error)
}

var _ IQuestionAnswering = (*Client)(nil)
