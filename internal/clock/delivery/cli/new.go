package cli

import (
	"context"

	"language-assistant/internal/clock"
	pkgLog "language-assistant/pkg/log"
)

// Prompt is shown before every clock turn.
const Prompt = "\nEnter some text (\"quit\" to stop): "

// Handler answers REPL lines for the clock demo.
type Handler interface {
	Handle(ctx context.Context, line string) (string, error)
}

type handler struct {
	l  pkgLog.Logger
	uc clock.UseCase
}

// New creates a new clock CLI handler.
func New(l pkgLog.Logger, uc clock.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
