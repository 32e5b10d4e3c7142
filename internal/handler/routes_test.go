package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Routes(t *testing.T) {
	h := newTestHandler(&stubBackups{})

	tests := []struct {
		method string
		target string
		want   int
	}{
		{http.MethodGet, "/status", http.StatusOK},
		{http.MethodGet, "/version", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/api/backups", http.StatusOK},
		{http.MethodGet, "/api/history", http.StatusOK},
		{http.MethodPost, "/api/backup", http.StatusOK},
		{http.MethodGet, "/unknown", http.StatusNotFound},
		{http.MethodPost, "/status", http.StatusNotFound},
		{http.MethodDelete, "/api/backups", http.StatusNotFound},
		{http.MethodGet, "/api/backup", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rr := serve(h, tt.method, tt.target)
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}

func TestInit_NoMetricsHandler(t *testing.T) {
	h := newTestHandler(&stubBackups{})
	h.metrics = nil

	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodGet, "/metrics").Code)
}

func TestInit_RequestIDHeader(t *testing.T) {
	h := newTestHandler(&stubBackups{})

	rr := serve(h, http.MethodGet, "/version")
	_, err := uuid.Parse(rr.Header().Get(requestIDHeader))
	require.NoError(t, err)
}

func TestInit_RequestIDEchoed(t *testing.T) {
	h := newTestHandler(&stubBackups{})

	req, _ := http.NewRequest(http.MethodGet, "/version", nil)
	req.Header.Set(requestIDHeader, "req-42")
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)

	assert.Equal(t, "req-42", rr.Header().Get(requestIDHeader))
}

func TestGetVersion(t *testing.T) {
	rr := serve(newTestHandler(&stubBackups{}), http.MethodGet, "/version")

	assert.Equal(t, "v1.0.0", rr.Body.String())
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
}
