package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeoutMiddlewarePassesFastHandlers(t *testing.T) {
	handler := TimeoutMiddleware(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/api/v1/patients", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestTimeoutMiddlewareCutsOffSlowHandlers(t *testing.T) {
	handler := TimeoutMiddleware(50*time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/api/v1/patients", nil))

	assert.Equal(t, http.StatusRequestTimeout, rr.Code)
}

func TestWithQueryTimeoutSetsDeadline(t *testing.T) {
	ctx, cancel := WithQueryTimeout(context.Background())
	defer cancel()

	deadline, ok := ctx.Deadline()
	assert.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(QueryTimeout), deadline, time.Second)
}

func TestWithQueryTimeoutNilParent(t *testing.T) {
	ctx, cancel := WithQueryTimeout(nil)
	defer cancel()

	_, ok := ctx.Deadline()
	assert.True(t, ok)
}
