package usecase

import (
	"context"
	"strings"

	"language-assistant/internal/clock"
)

// Ask classifies the text remotely and answers it with the local router.
func (uc *implUseCase) Ask(ctx context.Context, input clock.AskInput) (clock.AskOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return clock.AskOutput{}, clock.ErrEmptyInput
	}

	result, err := uc.classifier.Classify(ctx, text)
	if err != nil {
		uc.l.Errorf(ctx, "Ask: classification failed: %v", err)
		return clock.AskOutput{}, err
	}

	uc.l.Infof(ctx, "Ask: top intent %s (raw %q, confidence %.2f), %d entities",
		result.TopIntent, result.RawIntent, result.Confidence, len(result.Entities))
	for _, e := range result.Entities {
		uc.l.Debugf(ctx, "Ask: entity %s=%q (confidence %.2f)", e.Category, e.Text, e.Confidence)
	}

	reply := uc.router.Dispatch(result)

	return clock.AskOutput{
		Query:          text,
		Classification: result,
		Reply:          reply,
	}, nil
}
