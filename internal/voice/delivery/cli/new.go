package cli

import (
	"context"
	"io"

	"language-assistant/internal/voice"
	pkgLog "language-assistant/pkg/log"
)

// Handler runs one speaking-clock exchange and reports it on a writer.
type Handler interface {
	Run(ctx context.Context, w io.Writer) error
}

type handler struct {
	l      pkgLog.Logger
	uc     voice.UseCase
	region string
}

// New creates a new speaking clock CLI handler.
func New(l pkgLog.Logger, uc voice.UseCase, region string) Handler {
	return &handler{l: l, uc: uc, region: region}
}
