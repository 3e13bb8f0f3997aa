package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"language-assistant/internal/qna"
	"language-assistant/pkg/questionanswering"
	"language-assistant/pkg/response"
)

// writeError maps use case errors onto HTTP responses.
func (h *handler) writeError(c *gin.Context, err error) {
	var apiErr *questionanswering.APIError
	switch {
	case errors.Is(err, qna.ErrEmptyQuestion):
		response.Error(c, err, nil)
	case errors.As(err, &apiErr):
		response.BadGateway(c, apiErr)
	default:
		response.InternalError(c, err)
	}
}
