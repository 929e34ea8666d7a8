package commentary

import (
	"context"
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

// InputSource gathers the snapshot commentary is written about.
type InputSource interface {
	CommentaryInput(ctx context.Context) (Input, error)
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {
	Composer *Composer
	Source   InputSource

	Router Router
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	h := &httpHandler{opts}
	opts.Router.GET("/commentary", h.commentaryHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) commentaryHandler(c *gin.Context) {
	in, err := h.Source.CommentaryInput(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, h.Composer.Compose(c.Request.Context(), in))
}
