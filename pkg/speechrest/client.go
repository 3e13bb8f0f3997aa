package speechrest

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client talks to the speech-to-text and text-to-speech REST endpoints.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// New creates a new speech REST client.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Region returns the speech resource region.
func (c *Client) Region() string {
	return c.cfg.Region
}

// Recognize transcribes a short utterance (up to 60s of audio).
// A non-Success RecognitionStatus is returned as a result, not an error.
func (c *Client) Recognize(ctx context.Context, audio io.Reader, contentType string) (Recognition, error) {
	if contentType == "" {
		contentType = ContentTypeWAV
	}

	q := url.Values{}
	q.Set("language", c.cfg.Language)
	q.Set("format", "simple")
	u := c.cfg.STTBaseURL + sttPath + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, audio)
	if err != nil {
		return Recognition{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerSubscriptionKey, c.cfg.Key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Recognition{}, fmt.Errorf("failed to call speech-to-text API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Recognition{}, apiError(resp)
	}

	var result Recognition
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Recognition{}, fmt.Errorf("failed to decode speech-to-text response: %w", err)
	}
	return result, nil
}

// Synthesize renders text with the configured voice and returns the audio bytes.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	ssml, err := buildSSML(c.cfg.Voice, text)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.TTSBaseURL+ttsPath, strings.NewReader(ssml))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/ssml+xml")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set(headerOutputFormat, c.cfg.OutputFormat)
	req.Header.Set(headerSubscriptionKey, c.cfg.Key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call text-to-speech API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read synthesized audio: %w", err)
	}
	return audio, nil
}

// buildSSML wraps text in a speak/voice document. The xml:lang is taken from the
// voice name's locale prefix (en-GB-LibbyNeural -> en-GB).
func buildSSML(voice, text string) (string, error) {
	lang := DefaultLanguage
	if parts := strings.SplitN(voice, "-", 3); len(parts) == 3 {
		lang = parts[0] + "-" + parts[1]
	}

	var escaped bytes.Buffer
	if err := xml.EscapeText(&escaped, []byte(text)); err != nil {
		return "", fmt.Errorf("failed to escape text: %w", err)
	}

	return fmt.Sprintf("<speak version='1.0' xml:lang='%s'><voice name='%s'>%s</voice></speak>",
		lang, voice, escaped.String()), nil
}

func apiError(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)
	return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
}
