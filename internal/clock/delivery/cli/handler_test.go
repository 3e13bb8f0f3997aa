package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"language-assistant/internal/clock"
	"language-assistant/internal/router"
	pkgLog "language-assistant/pkg/log"
)

type mockUseCase struct {
	out clock.AskOutput
	err error
	got clock.AskInput
}

func (m *mockUseCase) Ask(ctx context.Context, input clock.AskInput) (clock.AskOutput, error) {
	m.got = input
	return m.out, m.err
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name string
		out  clock.AskOutput
		want string
	}{
		{
			name: "With entities",
			out: clock.AskOutput{
				Classification: router.ClassificationResult{
					TopIntent:  router.IntentGetTime,
					RawIntent:  "GetTime",
					Confidence: 0.97,
					Entities:   []router.Entity{{Category: router.CategoryLocation, Text: "london", Confidence: 1}},
				},
				Reply: router.Reply{Label: router.LabelTime, Text: "14:05"},
			},
			want: "\nTop Intent: GetTime\nConfidence Score: 0.97\n\nEntities Found:\n  - Location: london (Confidence: 1)\nTime: 14:05",
		},
		{
			name: "Fallback without entities",
			out: clock.AskOutput{
				Classification: router.ClassificationResult{TopIntent: router.IntentUnknown, RawIntent: "None", Confidence: 0.5},
				Reply:          router.Reply{Text: router.MsgFallback},
			},
			want: "\nTop Intent: None\nConfidence Score: 0.5\nTry asking for the time, day, or date.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{out: tt.out}
			got, err := New(pkgLog.NewNop(), uc).Handle(context.Background(), "what time is it in london")

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "what time is it in london", uc.got.Text)
		})
	}
}

func TestHandle_Error(t *testing.T) {
	boom := errors.New("401 unauthorized")
	_, err := New(pkgLog.NewNop(), &mockUseCase{err: boom}).Handle(context.Background(), "hi")
	assert.ErrorIs(t, err, boom)
}
