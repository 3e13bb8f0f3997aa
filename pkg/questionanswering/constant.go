package questionanswering

import "time"

const (
	// DefaultAPIVersion is the question answering API version the client speaks
	DefaultAPIVersion = "2021-10-01"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	queryPath             = "/language/:query-knowledgebases"
	headerSubscriptionKey = "Ocp-Apim-Subscription-Key"
	headerRequestID       = "X-Request-ID"
)
