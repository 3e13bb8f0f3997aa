package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	clockHTTP "language-assistant/internal/clock/delivery/http"
	"language-assistant/internal/middleware"
	qnaHTTP "language-assistant/internal/qna/delivery/http"
)

const environmentProduction = "production"

func (srv HTTPServer) mapHandlers() {
	mw := middleware.New(srv.l, srv.rateLimitPerMin)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()
	srv.registerDomainRoutes(mw)
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())
	if srv.environment != environmentProduction {
		srv.gin.Use(gin.Logger())
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	if srv.clockUC != nil {
		clockHTTP.RegisterRoutes(api.Group("/clock"), clockHTTP.New(srv.l, srv.clockUC), mw)
		srv.l.Infof(ctx, "Clock routes registered at POST /api/v1/clock/ask")
	} else {
		srv.l.Infof(ctx, "Clock use case not configured, skipping clock routes")
	}

	if srv.qnaUC != nil {
		qnaHTTP.RegisterRoutes(api.Group("/qna"), qnaHTTP.New(srv.l, srv.qnaUC), mw)
		srv.l.Infof(ctx, "Q&A routes registered at POST /api/v1/qna/ask")
	} else {
		srv.l.Infof(ctx, "Q&A use case not configured, skipping Q&A routes")
	}
}
