package conversations

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"language-assistant/pkg/log"
)

// Client calls the conversation analysis endpoint of an Azure AI Language resource.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// New creates a new conversation analysis client.
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

// Project returns the project and deployment the client targets.
func (c *Client) Project() (string, string) {
	return c.cfg.ProjectName, c.cfg.DeploymentName
}

// Analyze classifies text with the deployed project.
func (c *Client) Analyze(ctx context.Context, text string) (*Prediction, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	reqBody := AnalyzeRequest{
		Kind: taskKindConversation,
		AnalysisInput: AnalysisInput{
			ConversationItem: ConversationItem{
				ParticipantID: participantID,
				ID:            uuid.NewString(),
				Modality:      modalityText,
				Language:      c.cfg.Language,
				Text:          text,
			},
		},
		Parameters: Parameters{
			ProjectName:    c.cfg.ProjectName,
			DeploymentName: c.cfg.DeploymentName,
			Verbose:        c.cfg.Verbose,
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.analyzeURL(), bytes.NewBuffer(body))
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
		return nil, fmt.Errorf("failed to call conversations API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	var result AnalyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode conversations response: %w", err)
	}

	return &result.Result.Prediction, nil
}

func (c *Client) analyzeURL() string {
	q := url.Values{}
	q.Set("api-version", c.cfg.APIVersion)
	return c.cfg.Endpoint + analyzePath + "?" + q.Encode()
}

func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var errResp ErrorResponse
	if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Error.Message != "" {
		apiErr.Code = errResp.Error.Code
		apiErr.Message = errResp.Error.Message
	} else {
		apiErr.Message = strings.TrimSpace(string(raw))
	}
	return apiErr
}
