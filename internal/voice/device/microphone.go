package device

import (
	"context"
	"fmt"

	"language-assistant/internal/voice"
	"language-assistant/pkg/speechsdk"
)

// MicrophoneTranscriber listens on the default microphone through the speech SDK.
type MicrophoneTranscriber struct {
	rec *speechsdk.Recognizer
}

var _ voice.Transcriber = (*MicrophoneTranscriber)(nil)

// NewMicrophoneTranscriber wraps an SDK recognizer.
func NewMicrophoneTranscriber(rec *speechsdk.Recognizer) *MicrophoneTranscriber {
	return &MicrophoneTranscriber{rec: rec}
}

// Transcribe recognises one utterance.
func (m *MicrophoneTranscriber) Transcribe(ctx context.Context) (voice.Transcription, error) {
	res, err := m.rec.RecognizeOnce(ctx)
	if err != nil {
		return voice.Transcription{}, fmt.Errorf("%w: %w", voice.ErrTranscribeFailed, err)
	}
	return voice.Transcription{
		Text:       res.Text,
		Recognized: res.Recognized,
		Reason:     res.Reason,

		CancellationReason: res.CancellationReason,
		Details:            res.Details,
	}, nil
}

// Speaker is the SDK synthesizer; it already satisfies voice.Synthesizer.
var _ voice.Synthesizer = (*speechsdk.Synthesizer)(nil)
