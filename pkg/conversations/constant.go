package conversations

import "time"

const (
	// DefaultAPIVersion is the conversation analysis API version the client speaks
	DefaultAPIVersion = "2023-04-01"

	// DefaultLanguage is the language tag sent with every utterance
	DefaultLanguage = "en"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	analyzePath           = "/language/:analyze-conversations"
	headerSubscriptionKey = "Ocp-Apim-Subscription-Key"
	headerRequestID       = "X-Request-ID"

	taskKindConversation = "Conversation"
	modalityText         = "text"
	participantID        = "1"
)
