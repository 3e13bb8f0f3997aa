package router

import "language-assistant/pkg/datemath"

// Router turns a classified intent into a user-facing answer.
type Router interface {
	Route(intent Intent, entities []Entity) string
	Dispatch(result ClassificationResult) Reply
}

// IntentRouter answers clock intents locally from a Calendar.
type IntentRouter struct {
	cal *datemath.Calendar
}

// Ensure IntentRouter implements Router interface
var _ Router = (*IntentRouter)(nil)

// New creates a new IntentRouter. A nil calendar uses the system clock.
func New(cal *datemath.Calendar) *IntentRouter {
	if cal == nil {
		cal = datemath.New()
	}
	return &IntentRouter{cal: cal}
}
