package speechrest

import (
	"fmt"
	"strings"
	"time"
)

// Config holds the speech resource credentials and voice settings.
type Config struct {
	Key          string
	Region       string
	Language     string // recognition language
	Voice        string // synthesis voice name
	OutputFormat string
	Timeout      time.Duration

	// STTBaseURL and TTSBaseURL override the regional endpoints.
	STTBaseURL string
	TTSBaseURL string
}

// Validate checks required fields and fills defaults.
func (c *Config) Validate() error {
	var missing []string
	if c.Key == "" {
		missing = append(missing, "key")
	}
	if c.Region == "" {
		missing = append(missing, "region")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(missing, ", "))
	}

	if c.Language == "" {
		c.Language = DefaultLanguage
	}
	if c.Voice == "" {
		c.Voice = DefaultVoice
	}
	if c.OutputFormat == "" {
		c.OutputFormat = DefaultOutputFormat
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.STTBaseURL == "" {
		c.STTBaseURL = fmt.Sprintf(sttEndpointTmpl, c.Region)
	}
	if c.TTSBaseURL == "" {
		c.TTSBaseURL = fmt.Sprintf(ttsEndpointTmpl, c.Region)
	}
	c.STTBaseURL = strings.TrimRight(c.STTBaseURL, "/")
	c.TTSBaseURL = strings.TrimRight(c.TTSBaseURL, "/")
	return nil
}

// Recognition is the simple-format result of a short-audio recognition.
type Recognition struct {
	RecognitionStatus string
	DisplayText       string
	Offset            int64
	Duration          int64
}

// Recognized reports whether the service transcribed any speech.
func (r Recognition) Recognized() bool {
	return r.RecognitionStatus == StatusSuccess
}
