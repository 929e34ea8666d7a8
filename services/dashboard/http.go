package dashboard

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alanwatts07/terrancedejour-site/pkg/response"
	"github.com/alanwatts07/terrancedejour-site/web"
)

// Router is the interface for a router.
type Router interface {
	GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

type Dashboards interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {
	Service Dashboards

	Router    Router
	APIRouter Router

	Site web.Site
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	h := &httpHandler{opts}
	opts.Router.GET("/", h.pageHandler)
	opts.APIRouter.GET("/dashboard", h.jsonHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) pageHandler(c *gin.Context) {
	d, err := h.Service.Dashboard(c.Request.Context())
	if err != nil {
		status, _ := response.MapError(err)
		c.AbortWithStatus(status)
		return
	}
	c.HTML(http.StatusOK, "index.tmpl", h.Site.Page("", "", "/", d))
}

func (h *httpHandler) jsonHandler(c *gin.Context) {
	d, err := h.Service.Dashboard(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, d)
}
