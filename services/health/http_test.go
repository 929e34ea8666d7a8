package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubPinger struct {
	err   error
	block bool
}

func (s stubPinger) Ping(ctx context.Context) error {
	if s.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return s.err
}

func newEngine(p Pinger, timeout time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHTTPHandler(HTTPOptions{Upstream: p, Router: r, Timeout: timeout})
	return r
}

func TestProbes(t *testing.T) {
	cases := []struct {
		name   string
		pinger stubPinger
		path   string
		status int
		body   string
	}{
		{"live", stubPinger{err: errors.New("down")}, "/live", http.StatusOK, `{"status":"alive"}`},
		{"ready", stubPinger{}, "/ready", http.StatusOK, `{"status":"ready"}`},
		{"not ready", stubPinger{err: errors.New("Clawbr API error: 502 /stats")}, "/ready", http.StatusServiceUnavailable,
			`{"status":"unavailable","error":"Clawbr API error: 502 /stats"}`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			newEngine(c.pinger, 0).ServeHTTP(w, httptest.NewRequest(http.MethodGet, c.path, nil))

			assert.Equal(t, c.status, w.Code)
			assert.JSONEq(t, c.body, w.Body.String())
		})
	}
}

func TestReadiness_Timeout(t *testing.T) {
	w := httptest.NewRecorder()
	newEngine(stubPinger{block: true}, 20*time.Millisecond).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestUnknownRoute(t *testing.T) {
	w := httptest.NewRecorder()
	newEngine(stubPinger{}, 0).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/no-such", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
