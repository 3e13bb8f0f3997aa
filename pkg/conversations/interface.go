package conversations

import "context"

// IConversations defines the interface for the conversation analysis client.
// Implementations are safe for concurrent use.
type IConversations interface {
	Analyze(ctx context.Context, text string) (*Prediction, error)
}

var _ IConversations = (*Client)(nil)
