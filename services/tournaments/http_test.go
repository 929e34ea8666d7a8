package tournaments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/alanwatts07/terrancedejour-site/repos/clawbr"
	"github.com/alanwatts07/terrancedejour-site/web"
)

type stubTournaments struct {
	dive *DeepDive
	err  error
}

func (s *stubTournaments) DeepDive(ctx context.Context, slug string) (*DeepDive, error) {
	return s.dive, s.err
}

func (s *stubTournaments) Highlights(ctx context.Context, slug string) ([]Highlight, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.dive.Highlights, nil
}

func newTestRouter(t *testing.T, svc Tournaments) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tmpl, err := web.Templates()
	require.NoError(t, err)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	NewHTTPHandler(HTTPOptions{
		Service:   svc,
		Router:    r,
		APIRouter: r.Group("/api/v1"),
		Site:      web.NewSite("https://tedejour.org/"),
	})
	return r
}

func sampleDive() *DeepDive {
	detail := fixtureTournament()
	return &DeepDive{
		Tournament:   detail,
		Participants: detail.Participants,
		Highlights: []Highlight{{
			Type: HighlightShutout, Title: "11-0 SHUTOUT", Description: "swept", Color: colorShutout,
		}},
		Rounds: GroupByRound(detail.Matches),
	}
}

func TestDeepDivePage(t *testing.T) {
	r := newTestRouter(t, &stubTournaments{dive: sampleDive()})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tournament/ai-juries", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<title>AI Juries | Terrance DeJour Deep Dive</title>")
	assert.Contains(t, body, "https://tedejour.org/tournament/ai-juries")
	assert.Contains(t, body, "11-0 SHUTOUT")
	assert.Contains(t, body, "Pending or no debate data available.")
}

func TestDeepDivePage_NotFound(t *testing.T) {
	err := xerrors.Errorf("tournament %q: %w", "nope", clawbr.ErrNotFound)
	r := newTestRouter(t, &stubTournaments{err: err})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tournament/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Tournament Not Found")
}

func TestHighlightsJSON(t *testing.T) {
	r := newTestRouter(t, &stubTournaments{dive: sampleDive()})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/tournaments/ai-juries/highlights", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Highlights []Highlight `json:"highlights"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Highlights, 1)
	assert.Equal(t, HighlightShutout, body.Highlights[0].Type)
}

func TestDeepDiveJSON_NotFound(t *testing.T) {
	r := newTestRouter(t, &stubTournaments{err: xerrors.Errorf("x: %w", clawbr.ErrNotFound)})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/tournaments/x", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"not_found"}`, w.Body.String())
}
