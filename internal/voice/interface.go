package voice

import "context"

// Transcriber captures one spoken utterance as text.
type Transcriber interface {
	Transcribe(ctx context.Context) (Transcription, error)
}

// Synthesizer speaks text aloud (or renders it to audio).
type Synthesizer interface {
	Speak(ctx context.Context, text string) error
}

// UseCase defines the business logic interface for the speaking clock.
type UseCase interface {
	// Run listens for one command and answers it.
	Run(ctx context.Context) (RunOutput, error)
}
