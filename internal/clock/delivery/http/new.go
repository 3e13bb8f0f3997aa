package http

import (
	"github.com/gin-gonic/gin"

	"language-assistant/internal/clock"
	"language-assistant/pkg/log"
)

// Handler is the public interface for the clock HTTP delivery layer.
type Handler interface {
	Ask(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc clock.UseCase
}

// New creates a new HTTP handler for the clock domain.
func New(l log.Logger, uc clock.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
