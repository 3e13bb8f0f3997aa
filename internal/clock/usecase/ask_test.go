package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"language-assistant/internal/clock"
	"language-assistant/internal/clock/usecase"
	"language-assistant/internal/router"
	"language-assistant/pkg/datemath"
	pkgLog "language-assistant/pkg/log"
)

type fakeClassifier struct {
	result router.ClassificationResult
	err    error
	got    string
}

func (f *fakeClassifier) Classify(ctx context.Context, text string) (router.ClassificationResult, error) {
	f.got = text
	return f.result, f.err
}

// Wednesday, May 1, 2024
var baseTime = time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

func newUseCase(c clock.Classifier) clock.UseCase {
	r := router.New(datemath.NewWithClock(func() time.Time { return baseTime }))
	return usecase.New(pkgLog.NewNop(), c, r)
}

func TestAsk(t *testing.T) {
	t.Run("Routes the classified intent", func(t *testing.T) {
		fc := &fakeClassifier{result: router.ClassificationResult{
			TopIntent:  router.IntentGetTime,
			RawIntent:  "GetTime",
			Confidence: 0.93,
			Entities:   []router.Entity{{Category: router.CategoryLocation, Text: "Nairobi", Confidence: 1}},
		}}

		out, err := newUseCase(fc).Ask(context.Background(), clock.AskInput{Text: "  what's the time in Nairobi?  "})
		require.NoError(t, err)

		assert.Equal(t, "what's the time in Nairobi?", fc.got)
		assert.Equal(t, "what's the time in Nairobi?", out.Query)
		assert.Equal(t, router.IntentGetTime, out.Classification.TopIntent)
		assert.Equal(t, router.Reply{Label: router.LabelTime, Text: "18:30"}, out.Reply)
	})

	t.Run("Unknown intent falls back", func(t *testing.T) {
		fc := &fakeClassifier{result: router.ClassificationResult{TopIntent: router.IntentUnknown, RawIntent: "None"}}

		out, err := newUseCase(fc).Ask(context.Background(), clock.AskInput{Text: "hello"})
		require.NoError(t, err)
		assert.Equal(t, router.MsgFallback, out.Reply.String())
	})

	t.Run("Empty input", func(t *testing.T) {
		fc := &fakeClassifier{}
		_, err := newUseCase(fc).Ask(context.Background(), clock.AskInput{Text: "   "})
		assert.ErrorIs(t, err, clock.ErrEmptyInput)
		assert.Empty(t, fc.got)
	})

	t.Run("Classifier error is returned", func(t *testing.T) {
		boom := errors.New("service unavailable")
		fc := &fakeClassifier{err: boom}
		_, err := newUseCase(fc).Ask(context.Background(), clock.AskInput{Text: "what day is it"})
		assert.ErrorIs(t, err, boom)
	})
}
