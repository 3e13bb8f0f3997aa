package http

import (
	"github.com/gin-gonic/gin"

	"language-assistant/internal/middleware"
)

// RegisterRoutes maps the clock endpoints. Every route is rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/ask", mw.RateLimit(), h.Ask)
}
