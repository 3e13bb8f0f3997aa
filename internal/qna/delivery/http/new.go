package http

import (
	"github.com/gin-gonic/gin"

	"language-assistant/internal/qna"
	"language-assistant/pkg/log"
)

// Handler is the public interface for the Q&A HTTP delivery layer.
type Handler interface {
	Ask(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc qna.UseCase
}

// New creates a new HTTP handler for the Q&A domain.
func New(l log.Logger, uc qna.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
