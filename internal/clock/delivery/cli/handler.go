package cli

import (
	"context"

	"language-assistant/internal/clock"
)

// Handle answers one line of the clock REPL.
func (h *handler) Handle(ctx context.Context, line string) (string, error) {
	h.l.Debugf(ctx, "Handle: %q", line)

	out, err := h.uc.Ask(ctx, clock.AskInput{Text: line})
	if err != nil {
		return "", err
	}
	return present(out), nil
}
