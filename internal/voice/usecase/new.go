package usecase

import (
	"language-assistant/internal/voice"
	"language-assistant/pkg/datemath"
	pkgLog "language-assistant/pkg/log"
)

type implUseCase struct {
	l           pkgLog.Logger
	transcriber voice.Transcriber
	synthesizer voice.Synthesizer
	cal         *datemath.Calendar
}

// New creates a new speaking clock UseCase instance.
func New(l pkgLog.Logger, transcriber voice.Transcriber, synthesizer voice.Synthesizer, cal *datemath.Calendar) voice.UseCase {
	if cal == nil {
		cal = datemath.New()
	}
	return &implUseCase{
		l:           l,
		transcriber: transcriber,
		synthesizer: synthesizer,
		cal:         cal,
	}
}
