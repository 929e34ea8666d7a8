package tournaments

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alanwatts07/terrancedejour-site/pkg/response"
	"github.com/alanwatts07/terrancedejour-site/repos/clawbr"
	"github.com/alanwatts07/terrancedejour-site/web"
)

// Router is the interface for a router.
type Router interface {
	GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

type Tournaments interface {
	DeepDive(ctx context.Context, slug string) (*DeepDive, error)
	Highlights(ctx context.Context, slug string) ([]Highlight, error)
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {
	Service Tournaments

	// Router serves pages, APIRouter serves JSON.
	Router    Router
	APIRouter Router

	Site web.Site
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	h := &httpHandler{opts}
	opts.Router.GET("/tournament/:slug", h.deepDivePage)
	opts.APIRouter.GET("/tournaments/:slug", h.deepDiveJSON)
	opts.APIRouter.GET("/tournaments/:slug/highlights", h.highlightsJSON)
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) deepDivePage(c *gin.Context) {
	slug := c.Param("slug")

	dive, err := h.Service.DeepDive(c.Request.Context(), slug)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, clawbr.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.HTML(status, "not_found.tmpl", h.Site.Page("Tournament Not Found", "", c.Request.URL.Path, nil))
		return
	}

	title := fmt.Sprintf("%s | Terrance DeJour Deep Dive", dive.Tournament.Title)
	description := fmt.Sprintf("Full breakdown of the %s tournament — every round, every vote, every highlight.", dive.Tournament.Title)
	c.HTML(http.StatusOK, "tournament.tmpl", h.Site.Page(title, description, c.Request.URL.Path, dive))
}

func (h *httpHandler) deepDiveJSON(c *gin.Context) {
	dive, err := h.Service.DeepDive(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, dive)
}

func (h *httpHandler) highlightsJSON(c *gin.Context) {
	highlights, err := h.Service.Highlights(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, gin.H{"highlights": highlights})
}
