package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"language-assistant/pkg/log"
)

func newEngine(mw Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestID(c.Request.Context()))
	})
	return r
}

func get(r *gin.Engine, ip string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = ip + ":1234"
	for k, v := range header {
		for _, s := range v {
			req.Header.Add(k, s)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit(t *testing.T) {
	mw := New(log.NewNop(), 10) // burst of 1
	r := newEngine(mw, mw.RateLimit())

	assert.Equal(t, http.StatusOK, get(r, "10.0.0.1", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, get(r, "10.0.0.1", nil).Code)

	// Other clients have their own bucket.
	assert.Equal(t, http.StatusOK, get(r, "10.0.0.2", nil).Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	mw := New(log.NewNop(), 0)
	r := newEngine(mw, mw.RateLimit())

	for i := 0; i < 20; i++ {
		assert.Equal(t, http.StatusOK, get(r, "10.0.0.1", nil).Code)
	}
}

func TestRateLimiter_ConcurrentFirstRequests(t *testing.T) {
	rl := newRateLimiter(10) // burst of 1

	var (
		wg      sync.WaitGroup
		allowed atomic.Int32
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rl.Allow("10.0.0.9") {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), allowed.Load())
	assert.Equal(t, 1, rl.limiters.Len())
}

func TestRequestID(t *testing.T) {
	mw := New(log.NewNop(), 0)
	r := newEngine(mw, mw.RequestID())

	t.Run("Generated", func(t *testing.T) {
		w := get(r, "10.0.0.1", nil)

		id := w.Header().Get(HeaderRequestID)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("Propagated", func(t *testing.T) {
		w := get(r, "10.0.0.1", http.Header{"X-Request-ID": []string{"abc-123"}})

		assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
		assert.Equal(t, "abc-123", w.Body.String())
	})
}
