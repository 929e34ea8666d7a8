package preview

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alanwatts07/terrancedejour-site/pkg/response"
)

// Router is the interface for a router.
type Router interface {
	GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

type Previews interface {
	PNG(ctx context.Context, layout Layout) ([]byte, error)
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {
	Service Previews
	Router  Router
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	h := &httpHandler{opts}
	opts.Router.GET("/opengraph-image", h.imageHandler(OpenGraph))
	opts.Router.GET("/twitter-image", h.imageHandler(Twitter))
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) imageHandler(layout Layout) gin.HandlerFunc {
	cacheControl := fmt.Sprintf("public, max-age=%d", int(CacheTTL.Seconds()))
	return func(c *gin.Context) {
		b, err := h.Service.PNG(c.Request.Context(), layout)
		if err != nil {
			response.WriteError(c, err)
			return
		}
		c.Header("Cache-Control", cacheControl)
		c.Data(http.StatusOK, "image/png", b)
	}
}
