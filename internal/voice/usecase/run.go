package usecase

import (
	"context"
	"fmt"
	"strings"

	"language-assistant/internal/voice"
	"language-assistant/pkg/datemath"
)

// Run transcribes one command and, if it asks for the time, speaks the local time.
func (uc *implUseCase) Run(ctx context.Context) (voice.RunOutput, error) {
	tr, err := uc.transcriber.Transcribe(ctx)
	if err != nil {
		return voice.RunOutput{}, err
	}

	if !tr.Recognized {
		uc.l.Warnf(ctx, "Run: speech not recognized: %s %s %s", tr.Reason, tr.CancellationReason, tr.Details)
		return voice.RunOutput{
			Reason:             tr.Reason,
			CancellationReason: tr.CancellationReason,
			Details:            tr.Details,
		}, nil
	}

	out := voice.RunOutput{Command: tr.Text, Recognized: true}
	uc.l.Infof(ctx, "Run: recognized command %q", tr.Text)

	if !strings.EqualFold(strings.TrimSpace(tr.Text), voice.CommandWhatTime) {
		return out, nil
	}

	out.Handled = true
	out.Response = fmt.Sprintf(voice.ResponseTimeTmpl, datemath.FormatClock(uc.cal.Now()))

	if err := uc.synthesizer.Speak(ctx, out.Response); err != nil {
		uc.l.Errorf(ctx, "Run: speech synthesis failed: %v", err)
		out.SpeakFailed = err.Error()
	}

	return out, nil
}
