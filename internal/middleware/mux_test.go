package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/KOFI-GYIMAH/contribution-tracker/pkg/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
	}))

	t.Run("generates an id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/repositories", nil))

		id := rec.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, seen)
	})

	t.Run("keeps a valid incoming id", func(t *testing.T) {
		incoming := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/v1/repositories", nil)
		req.Header.Set(RequestIDHeader, incoming)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, incoming, rec.Header().Get(RequestIDHeader))
		assert.Equal(t, incoming, seen)
	})

	t.Run("replaces garbage", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/repositories", nil)
		req.Header.Set(RequestIDHeader, "not-a-uuid")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.NotEqual(t, "not-a-uuid", rec.Header().Get(RequestIDHeader))
	})
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	defer logger.SetOutput(os.Stdout)

	handler := RequestIDMiddleware(LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/rate-limit", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Contains(t, buf.String(), "GET /v1/rate-limit 418")
	assert.Contains(t, buf.String(), rec.Header().Get(RequestIDHeader))
}
