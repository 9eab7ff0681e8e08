package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddleware_AllowsUnderLimit(t *testing.T) {
	svc := NewService(newMemStore(), zerolog.Nop()).(*service)
	require.NoError(t, svc.registerLimit("display_poll", Limit{Rate: 5, Period: time.Minute}))

	handler := Middleware(svc, "display_poll", zerolog.Nop())(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/content/tv/TV1", nil)
	req.RemoteAddr = "10.0.0.1:54321"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMiddleware_RejectsOverLimit(t *testing.T) {
	svc := NewService(newMemStore(), zerolog.Nop()).(*service)
	require.NoError(t, svc.registerLimit("display_poll", Limit{Rate: 1, Period: time.Minute}))

	handler := Middleware(svc, "display_poll", zerolog.Nop())(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/content/tv/TV1", nil)
	req.RemoteAddr = "10.0.0.1:54321"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"rate limit exceeded"}`, rec.Body.String())
}

func TestMiddleware_FailsOpenOnStoreError(t *testing.T) {
	store := newMemStore()
	store.err = ErrStoreError
	svc := NewService(store, zerolog.Nop()).(*service)
	require.NoError(t, svc.registerLimit("display_poll", Limit{Rate: 1, Period: time.Minute}))

	handler := Middleware(svc, "display_poll", zerolog.Nop())(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/content/tv/TV1", nil)
	req.RemoteAddr = "10.0.0.1:54321"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
