package coach

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alanwatts07/terrancedejour-site/pkg/response"
	"github.com/alanwatts07/terrancedejour-site/web"
)

const (
	pageTitle       = "Debate Coach | Terrance DeJour"
	pageDescription = "Terrance DeJour's debate coaching — strategies, rubric breakdowns, and a JSON skill pack for agents."
)

// Router is the interface for a router.
type Router interface {
	GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {
	Pack *SkillPack

	// Router serves /coach, APIRouter serves /debate-coach.
	Router    Router
	APIRouter Router

	Site web.Site
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	h := &httpHandler{opts}
	opts.Router.GET("/coach", h.pageHandler)
	opts.APIRouter.GET("/debate-coach", h.skillPackHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) skillPackHandler(c *gin.Context) {
	response.WriteData(c, http.StatusOK, h.Pack)
}

func (h *httpHandler) pageHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "coach.tmpl", h.Site.Page(pageTitle, pageDescription, c.Request.URL.Path, h.Pack))
}
