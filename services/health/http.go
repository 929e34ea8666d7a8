// Package health serves the liveness and readiness probes.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Router is the interface for a router.
type Router interface {
	GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

// Pinger checks that the platform API answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {
	Upstream Pinger
	Router   Router

	// Timeout bounds the readiness probe; zero means no extra bound.
	Timeout time.Duration
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	h := &httpHandler{opts}
	opts.Router.GET("/live", h.liveness)
	opts.Router.GET("/ready", h.readiness)
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

func (h *httpHandler) readiness(c *gin.Context) {
	ctx := c.Request.Context()
	if h.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.Timeout)
		defer cancel()
	}

	if err := h.Upstream.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"error":  err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
