package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestID_Generates(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r.Context())
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, rr.Header().Get(RequestIDHeader))
}

func TestRequestID_ReusesIncoming(t *testing.T) {
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, "abc-123", rr.Header().Get(RequestIDHeader))
}

func TestLogger_RecordsStatus(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := RequestID(Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("nope"))
	})))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "/missing", fields["path"])
	assert.EqualValues(t, http.StatusNotFound, fields["status"])
	assert.EqualValues(t, 4, fields["bytes"])
	assert.NotEmpty(t, fields["request_id"])
}

func TestLogger_ImplicitOK(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, 1, logs.Len())
	assert.EqualValues(t, http.StatusOK, logs.All()[0].ContextMap()["status"])
}

func TestLogger_KeepsFlusher(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	var flushed bool
	h := Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f, ok := w.(http.Flusher)
		require.True(t, ok, "wrapped writer must still implement http.Flusher")
		_, _ = w.Write([]byte("chunk"))
		f.Flush()
		flushed = true
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/stream", nil))

	assert.True(t, flushed)
	assert.True(t, rr.Flushed)
	require.Equal(t, 1, logs.Len())
	assert.EqualValues(t, 5, logs.All()[0].ContextMap()["bytes"])
}

func TestRecovery(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	h := Recovery(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "panic recovered", logs.All()[0].Message)
}

func TestRateLimit(t *testing.T) {
	h := RateLimit(0.001, 2)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	codes := make([]int, 3)
	for i := range codes {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/projects", nil))
		codes[i] = rr.Code
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
