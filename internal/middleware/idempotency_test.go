package middleware

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const cartPayload = `{"cart": {"lines": [{"id": "gid://shopify/CartLine/0", "quantity": 2}]}}`

func idempotencyRouter(cfg IdempotencyConfig, calls *int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Idempotency(cfg))
	handle := func(c *gin.Context) {
		n := atomic.AddInt64(calls, 1)
		c.String(http.StatusOK, fmt.Sprintf("computed-%d", n))
	}
	router.POST("/discounts", handle)
	router.GET("/discounts", handle)
	return router
}

func TestIdempotency(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		idempotencyKey string
		body           string
		expectedStatus int
	}{
		{
			name:           "request without a key passes through",
			method:         http.MethodPost,
			idempotencyKey: "",
			body:           cartPayload,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "GET is never deduplicated",
			method:         http.MethodGet,
			idempotencyKey: "checkout-41",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "keyed POST passes through on first sight",
			method:         http.MethodPost,
			idempotencyKey: "checkout-42",
			body:           cartPayload,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int64
			router := idempotencyRouter(DefaultIdempotencyConfig(), &calls)

			req := httptest.NewRequest(tt.method, "/discounts", bytes.NewReader([]byte(tt.body)))
			if tt.idempotencyKey != "" {
				req.Header.Set(IdempotencyKeyHeader, tt.idempotencyKey)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Empty(t, w.Header().Get("X-Idempotency-Replayed"))
		})
	}
}

func TestIdempotency_ReplaysCachedResponse(t *testing.T) {
	var calls int64
	router := idempotencyRouter(DefaultIdempotencyConfig(), &calls)

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/discounts", bytes.NewReader([]byte(cartPayload)))
		req.Header.Set(IdempotencyKeyHeader, "checkout-99")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	first := send()
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "computed-1", first.Body.String())

	second := send()
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "computed-1", second.Body.String(), "replay must return the original response body")
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
	assert.Equal(t, int64(1), atomic.LoadInt64(&calls), "handler must run once per key")
}

func TestIdempotency_DifferentBodiesComputeSeparately(t *testing.T) {
	var calls int64
	router := idempotencyRouter(DefaultIdempotencyConfig(), &calls)

	for i, body := range []string{cartPayload, `{"cart": {"lines": []}}`} {
		req := httptest.NewRequest(http.MethodPost, "/discounts", bytes.NewReader([]byte(body)))
		req.Header.Set(IdempotencyKeyHeader, "checkout-7")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "request %d", i)
	}

	assert.Equal(t, int64(2), atomic.LoadInt64(&calls),
		"the same key with a different payload is a different request")
}

func TestIdempotency_Disabled(t *testing.T) {
	cfg := DefaultIdempotencyConfig()
	cfg.Enabled = false
	cfg.Cache = nil

	var calls int64
	router := idempotencyRouter(cfg, &calls)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/discounts", bytes.NewReader([]byte(cartPayload)))
		req.Header.Set(IdempotencyKeyHeader, "checkout-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	assert.Equal(t, int64(2), atomic.LoadInt64(&calls), "disabled middleware must not deduplicate")
}

func TestIdempotencyCache_cleanup(t *testing.T) {
	cache := newIdempotencyCache(100 * time.Millisecond)

	cache.mu.Lock()
	cache.items[1] = &cachedResponse{
		StatusCode: 200,
		Headers:    make(map[string]string),
		Body:       []byte("stale"),
		Timestamp:  time.Now().Add(-2 * time.Hour),
	}
	cache.items[2] = &cachedResponse{
		StatusCode: 200,
		Headers:    make(map[string]string),
		Body:       []byte("fresh"),
		Timestamp:  time.Now(),
	}
	cache.mu.Unlock()

	cache.cleanup()

	cache.mu.Lock()
	_, staleExists := cache.items[1]
	_, freshExists := cache.items[2]
	cache.mu.Unlock()

	assert.False(t, staleExists, "expired entry must be removed")
	assert.True(t, freshExists, "live entry must survive cleanup")
}
