package usecase

import (
	"language-assistant/internal/clock"
	"language-assistant/internal/router"
	pkgLog "language-assistant/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	classifier clock.Classifier
	router     router.Router
}

// New creates a new clock UseCase instance.
func New(l pkgLog.Logger, classifier clock.Classifier, r router.Router) clock.UseCase {
	return &implUseCase{
		l:          l,
		classifier: classifier,
		router:     r,
	}
}
