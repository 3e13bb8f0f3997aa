package speechsdk

import (
	"context"
	"fmt"

	"github.com/Microsoft/cognitive-services-speech-sdk-go/audio"
	"github.com/Microsoft/cognitive-services-speech-sdk-go/common"
	"github.com/Microsoft/cognitive-services-speech-sdk-go/speech"
)

// Synthesizer speaks through the default speaker.
type Synthesizer struct {
	cfg Config
}

// NewSynthesizer creates a speaker synthesizer.
func NewSynthesizer(cfg Config) (*Synthesizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Synthesizer{cfg: cfg}, nil
}

// Speak synthesizes text with the configured voice and plays it.
func (s *Synthesizer) Speak(ctx context.Context, text string) error {
	conf, err := s.cfg.newSpeechConfig()
	if err != nil {
		return err
	}
	defer conf.Close()

	if err := conf.SetSpeechSynthesisVoiceName(s.cfg.Voice); err != nil {
		return fmt.Errorf("failed to set synthesis voice: %w", err)
	}

	audioConfig, err := audio.NewAudioConfigFromDefaultSpeakerOutput()
	if err != nil {
		return fmt.Errorf("failed to open default speaker: %w", err)
	}
	defer audioConfig.Close()

	synthesizer, err := speech.NewSpeechSynthesizerFromConfig(conf, audioConfig)
	if err != nil {
		return fmt.Errorf("failed to create speech synthesizer: %w", err)
	}
	defer synthesizer.Close()

	var outcome speech.SpeechSynthesisOutcome
	select {
	case outcome = <-synthesizer.SpeakTextAsync(text):
	case <-ctx.Done():
		return fmt.Errorf("context cancelled while waiting for synthesis result: %w", ctx.Err())
	}
	defer outcome.Close()

	if outcome.Error != nil {
		return fmt.Errorf("synthesis outcome error: %w", outcome.Error)
	}

	if outcome.Result.Reason != common.SynthesizingAudioCompleted {
		details := ""
		if cancellation, cErr := speech.NewCancellationDetailsFromSpeechSynthesisResult(outcome.Result); cErr == nil {
			details = cancellation.ErrorDetails
		}
		return fmt.Errorf("synthesis failed: reason=%s, details=%s", outcome.Result.Reason.String(), details)
	}
	return nil
}
