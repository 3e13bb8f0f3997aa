package voice

import "errors"

// Domain-specific errors for the voice package.
var (
	ErrTranscribeFailed = errors.New("failed to transcribe speech")
)
