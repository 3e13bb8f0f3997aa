package speechsdk

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Microsoft/cognitive-services-speech-sdk-go/speech"
)

const (
	DefaultRecognitionLanguage = "en-US"
	DefaultVoice               = "en-GB-LibbyNeural"
)

// ErrInvalidConfig indicates required settings are missing.
var ErrInvalidConfig = errors.New("speechsdk: invalid config")

// Config is the speech resource and voice configuration shared by the
// recognizer and synthesizer. It is passed by value; nothing is cached globally.
type Config struct {
	Key                 string
	Region              string
	RecognitionLanguage string
	Voice               string
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
	if c.RecognitionLanguage == "" {
		c.RecognitionLanguage = DefaultRecognitionLanguage
	}
	if c.Voice == "" {
		c.Voice = DefaultVoice
	}
	return nil
}

// newSpeechConfig builds a fresh SDK config for one recognition or synthesis.
// The caller closes it.
func (c Config) newSpeechConfig() (*speech.SpeechConfig, error) {
	conf, err := speech.NewSpeechConfigFromSubscription(c.Key, c.Region)
	if err != nil {
		return nil, fmt.Errorf("failed to create azure speech config: %w", err)
	}
	return conf, nil
}
