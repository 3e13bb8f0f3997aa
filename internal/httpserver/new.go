package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"language-assistant/internal/clock"
	"language-assistant/internal/qna"
	"language-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	rateLimitPerMin int

	// Domains (optional, routes are skipped when nil)
	clockUC clock.UseCase
	qnaUC   qna.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	RateLimitPerMin int

	ClockUseCase clock.UseCase
	QnAUseCase   qna.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		rateLimitPerMin: cfg.RateLimitPerMin,
		clockUC:         cfg.ClockUseCase,
		qnaUC:           cfg.QnAUseCase,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.clockUC == nil && srv.qnaUC == nil {
		return errors.New("at least one of the clock or Q&A use cases is required")
	}
	return nil
}
