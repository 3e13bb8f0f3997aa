package questionanswering_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"language-assistant/pkg/questionanswering"
)

func TestClient_GetAnswers(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Ocp-Apim-Subscription-Key") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		q := r.URL.Query()
		if q.Get("projectName") != "LearnFAQ" || q.Get("deploymentName") != "production" || q.Get("api-version") == "" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"code":"BadArgument","message":"Invalid project"}}`))
			return
		}

		var req questionanswering.QueryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.WriteHeader(http.StatusOK)
		switch req.Question {
		case "nothing":
			w.Write([]byte(`{"answers": []}`))
		default:
			w.Write([]byte(`{
				"answers": [
					{"questions": ["How do I use the service?"], "answer": "Read the docs.", "confidenceScore": 0.82, "id": 3, "source": "faq.tsv"},
					{"answer": "Ask support.", "confidenceScore": 0.11, "id": 7, "source": "Editorial"}
				]
			}`))
		}
	}))
	defer ts.Close()

	newClient := func(key, project string) *questionanswering.Client {
		c, err := questionanswering.New(questionanswering.Config{
			Endpoint:       ts.URL,
			Key:            key,
			ProjectName:    project,
			DeploymentName: "production",
		})
		require.NoError(t, err)
		return c
	}

	t.Run("Success Flow", func(t *testing.T) {
		answers, err := newClient("test-key", "LearnFAQ").GetAnswers(context.Background(), "How do I use it?")
		require.NoError(t, err)
		require.Len(t, answers, 2)
		assert.Equal(t, "Read the docs.", answers[0].Answer)
		assert.InDelta(t, 0.82, answers[0].Confidence, 1e-9)
		assert.Equal(t, "faq.tsv", answers[0].Source)
		assert.Equal(t, "Editorial", answers[1].Source)
	})

	t.Run("No Answers", func(t *testing.T) {
		answers, err := newClient("test-key", "LearnFAQ").GetAnswers(context.Background(), "nothing")
		require.NoError(t, err)
		assert.Empty(t, answers)
	})

	t.Run("API Error Envelope", func(t *testing.T) {
		_, err := newClient("test-key", "Other").GetAnswers(context.Background(), "hi")
		var apiErr *questionanswering.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "BadArgument", apiErr.Code)
		assert.Equal(t, "question answering API error 400 (BadArgument): Invalid project", err.Error())
	})

	t.Run("Unauthorized", func(t *testing.T) {
		_, err := newClient("bad-key", "LearnFAQ").GetAnswers(context.Background(), "hi")
		var apiErr *questionanswering.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	})

	t.Run("Empty Question", func(t *testing.T) {
		_, err := newClient("test-key", "LearnFAQ").GetAnswers(context.Background(), "")
		assert.ErrorIs(t, err, questionanswering.ErrEmptyQuestion)
	})
}

func TestNew_Validation(t *testing.T) {
	_, err := questionanswering.New(questionanswering.Config{})
	require.ErrorIs(t, err, questionanswering.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "endpoint, key, project name, deployment name")
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestClient_WithHTTPClient(t *testing.T) {
	var gotURL, gotKey string
	transport := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		gotURL = r.URL.String()
		gotKey = r.Header.Get("Ocp-Apim-Subscription-Key")
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"answers":[{"answer":"Read the docs.","confidenceScore":0.82,"source":"faq.tsv"}]}`)),
			Request:    r,
		}, nil
	})

	client, err := questionanswering.New(questionanswering.Config{
		Endpoint:       "https://qna.example.test/",
		Key:            "test-key",
		ProjectName:    "LearnFAQ",
		DeploymentName: "production",
	})
	require.NoError(t, err)

	answers, err := client.WithHTTPClient(&http.Client{Transport: transport}).GetAnswers(context.Background(), "How do I use the service?")
	require.NoError(t, err)

	require.Len(t, answers, 1)
	assert.Equal(t, "Read the docs.", answers[0].Answer)
	assert.Equal(t, "test-key", gotKey)
	assert.Contains(t, gotURL, "https://qna.example.test/language/:query-knowledgebases?")
	assert.Contains(t, gotURL, "projectName=LearnFAQ")
}
