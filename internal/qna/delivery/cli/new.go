package cli

import (
	"context"

	"language-assistant/internal/qna"
	pkgLog "language-assistant/pkg/log"
)

const (
	// Banner is printed once before the first question.
	Banner = "Azure AI Question Answering Chatbot (Type 'quit' to exit)"

	// Prompt is shown before every question.
	Prompt = "\nQuestion: "
)

// Handler answers REPL lines for the Q&A demo.
type Handler interface {
	Handle(ctx context.Context, line string) (string, error)
}

type handler struct {
	l  pkgLog.Logger
	uc qna.UseCase
}

// New creates a new Q&A CLI handler.
func New(l pkgLog.Logger, uc qna.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
