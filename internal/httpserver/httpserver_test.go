package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "language-assistant/docs"
	"language-assistant/internal/clock"
	"language-assistant/internal/router"
	"language-assistant/pkg/log"
)

type stubClock struct{}

func (stubClock) Ask(ctx context.Context, input clock.AskInput) (clock.AskOutput, error) {
	return clock.AskOutput{
		Query:          input.Text,
		Classification: router.ClassificationResult{TopIntent: router.IntentGetTime, RawIntent: "GetTime", Confidence: 0.9},
		Reply:          router.Reply{Label: router.LabelTime, Text: "12:00"},
	}, nil
}

func newServer(t *testing.T, rateLimit int) http.Handler {
	t.Helper()
	srv, err := New(log.NewNop(), Config{
		Port:            8080,
		Mode:            "test",
		Environment:     "production",
		RateLimitPerMin: rateLimit,
		ClockUseCase:    stubClock{},
	})
	require.NoError(t, err)
	return srv.Handler()
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestNew_Validation(t *testing.T) {
	_, err := New(log.NewNop(), Config{Port: 8080, Mode: "test"})
	assert.Error(t, err)

	_, err = New(log.NewNop(), Config{Mode: "test", ClockUseCase: stubClock{}})
	assert.Error(t, err)
}

func TestSystemRoutes(t *testing.T) {
	h := newServer(t, 0)

	for _, path := range []string{"/health", "/ready", "/live"} {
		t.Run(path, func(t *testing.T) {
			w := do(h, http.MethodGet, path, "")
			assert.Equal(t, http.StatusOK, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestDomainRoutes(t *testing.T) {
	h := newServer(t, 0)

	w := do(h, http.MethodPost, "/api/v1/clock/ask", `{"text":"what time is it?"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Label  string `json:"label"`
			Answer string `json:"answer"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Time", body.Data.Label)
	assert.Equal(t, "12:00", body.Data.Answer)

	// Q&A is not configured.
	assert.Equal(t, http.StatusNotFound, do(h, http.MethodPost, "/api/v1/qna/ask", `{"question":"hi"}`).Code)
}

func TestRateLimit(t *testing.T) {
	h := newServer(t, 10)

	assert.Equal(t, http.StatusOK, do(h, http.MethodPost, "/api/v1/clock/ask", `{"text":"a"}`).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(h, http.MethodPost, "/api/v1/clock/ask", `{"text":"b"}`).Code)

	// System routes are not limited.
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/health", "").Code)
}

func TestSwaggerDoc(t *testing.T) {
	h := newServer(t, 0)

	w := do(h, http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "Language Assistant API", doc.Info.Title)
	for _, path := range []string{"/health", "/ready", "/live", "/api/v1/clock/ask", "/api/v1/qna/ask"} {
		assert.Contains(t, doc.Paths, path)
	}
}
