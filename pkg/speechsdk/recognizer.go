package speechsdk

import (
	"context"
	"fmt"

	"github.com/Microsoft/cognitive-services-speech-sdk-go/audio"
	"github.com/Microsoft/cognitive-services-speech-sdk-go/common"
	"github.com/Microsoft/cognitive-services-speech-sdk-go/speech"
)

// Recognition is the outcome of a single-shot recognition.
type Recognition struct {
	Text       string
	Recognized bool
	Reason     string // SDK result reason, e.g. "NoMatch"

	// Set when Reason is Canceled.
	CancellationReason string
	Details            string
}

// Recognizer listens on the default microphone.
type Recognizer struct {
	cfg Config
}

// NewRecognizer creates a microphone recognizer.
func NewRecognizer(cfg Config) (*Recognizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Recognizer{cfg: cfg}, nil
}

// Region returns the speech resource region.
func (r *Recognizer) Region() string {
	return r.cfg.Region
}

// RecognizeOnce captures one utterance from the default microphone.
// Failing to recognise speech is reported in the result, not as an error.
func (r *Recognizer) RecognizeOnce(ctx context.Context) (Recognition, error) {
	conf, err := r.cfg.newSpeechConfig()
	if err != nil {
		return Recognition{}, err
	}
	defer conf.Close()

	if err := conf.SetSpeechRecognitionLanguage(r.cfg.RecognitionLanguage); err != nil {
		return Recognition{}, fmt.Errorf("failed to set recognition language: %w", err)
	}

	audioConfig, err := audio.NewAudioConfigFromDefaultMicrophoneInput()
	if err != nil {
		return Recognition{}, fmt.Errorf("failed to open default microphone: %w", err)
	}
	defer audioConfig.Close()

	recognizer, err := speech.NewSpeechRecognizerFromConfig(conf, audioConfig)
	if err != nil {
		return Recognition{}, fmt.Errorf("failed to create speech recognizer: %w", err)
	}
	defer recognizer.Close()

	var outcome speech.SpeechRecognitionOutcome
	select {
	case outcome = <-recognizer.RecognizeOnceAsync():
	case <-ctx.Done():
		return Recognition{}, fmt.Errorf("context cancelled while waiting for recognition result: %w", ctx.Err())
	}
	defer outcome.Close()

	if outcome.Error != nil {
		return Recognition{}, fmt.Errorf("recognition outcome error: %w", outcome.Error)
	}

	result := outcome.Result
	rec := Recognition{Reason: result.Reason.String()}
	switch result.Reason {
	case common.RecognizedSpeech:
		rec.Text = result.Text
		rec.Recognized = true
	case common.Canceled:
		cancellation, cErr := speech.NewCancellationDetailsFromSpeechRecognitionResult(result)
		if cErr == nil {
			rec.CancellationReason = fmt.Sprint(cancellation.Reason)
			rec.Details = cancellation.ErrorDetails
		}
	}
	return rec, nil
}
