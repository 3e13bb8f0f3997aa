package questionanswering

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"language-assistant/pkg/log"
)

// Client queries a deployed question answering project.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// New creates a new question answering client.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// WithHTTPClient replaces the underlying HTTP client.
func (c *Client) WithHTTPClient(h *http.Client) *Client {
	c.httpClient = h
	return c
}

// GetAnswers submits question and returns the candidate answers in service order.
func (c *Client) GetAnswers(ctx context.Context, question string) ([]Answer, error) {
	if strings.TrimSpace(question) == "" {
		return nil, ErrEmptyQuestion
	}

	body, err := json.Marshal(QueryRequest{
		Question:                 question,
		Top:                      c.cfg.Top,
		ConfidenceScoreThreshold: c.cfg.ConfidenceThreshold,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.queryURL(), bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(headerSubscriptionKey, c.cfg.Key)
	if id := log.RequestID(ctx); id != "" {
		httpReq.Header.Set(headerRequestID, id)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call question answering API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errResp ErrorResponse
		if jsonErr := json.Unmarshal(raw, &errResp); jsonErr == nil && errResp.Error.Message != "" {
			apiErr.Code = errResp.Error.Code
			apiErr.Message = errResp.Error.Message
		} else {
			apiErr.Message = strings.TrimSpace(string(raw))
		}
		return nil, apiErr
	}

	var result QueryResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode question answering response: %w", err)
	}

	return result.Answers, nil
}

func (c *Client) queryURL() string {
	q := url.Values{}
	q.Set("projectName", c.cfg.ProjectName)
	q.Set("deploymentName", c.cfg.DeploymentName)
	q.Set("api-version", c.cfg.APIVersion)
	return c.cfg.Endpoint + queryPath + "?" + q.Encode()
}
