package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"language-assistant/internal/qna"
)

// Handle prints every candidate answer for the question.
func (h *handler) Handle(ctx context.Context, line string) (string, error) {
	out, err := h.uc.Ask(ctx, qna.AskInput{Question: line})
	if err != nil {
		return "", err
	}
	if out.Cached {
		h.l.Debugf(ctx, "Handle: served %q from cache", out.Question)
	}
	return present(out), nil
}

func present(out qna.AskOutput) string {
	if len(out.Answers) == 0 {
		return qna.MsgNoAnswer
	}

	blocks := make([]string, 0, len(out.Answers))
	for _, a := range out.Answers {
		blocks = append(blocks, fmt.Sprintf("\nAnswer: %s\nConfidence: %s\nSource: %s",
			a.Answer, strconv.FormatFloat(a.Confidence, 'f', -1, 64), a.Source))
	}
	return strings.Join(blocks, "\n")
}
