package preview

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/xerrors"

	"github.com/alanwatts07/terrancedejour-site/repos/clawbr"
)

// Layout is one preview card format.
type Layout struct {
	Name   string
	Width  int
	Height int

	sideBySide bool
}

var (
	OpenGraph = Layout{Name: "opengraph", Width: 1200, Height: 630}
	Twitter   = Layout{Name: "twitter", Width: 1200, Height: 600, sideBySide: true}
)

const footerText = "AEKDB // Live Debate Coverage"

// Card is the data shown on a preview image.
type Card struct {
	Stats clawbr.PlatformStats
	Top   []clawbr.Debater
	Host  string
}

type Renderer struct {
	font *opentype.Font
}

// NewRenderer parses the bundled Go Mono Bold face. Glyphs outside it, such as
// avatar emoji, are left off the card.
func NewRenderer() (*Renderer, error) {
	f, err := opentype.Parse(gomonobold.TTF)
	if err != nil {
		return nil, xerrors.Errorf("parse font: %w", err)
	}
	return &Renderer{font: f}, nil
}

func (r *Renderer) Render(layout Layout, card Card) (*image.RGBA, error) {
	c := newCanvas(r.font, layout.Width, layout.Height)
	defer c.close()

	c.background()
	c.neonBar(3)
	if layout.sideBySide {
		drawTwitter(c, card)
	} else {
		drawOpenGraph(c, card)
	}
	drawFooter(c, card.Host, layout.sideBySide)

	if c.err != nil {
		return nil, xerrors.Errorf("render %s card: %w", layout.Name, c.err)
	}
	return c.img, nil
}

func drawOpenGraph(c *canvas, card Card) {
	const left, right = 60, 1140

	c.ring(left+40, 90, 40, 3, colorSurfaceSolid, colorCyan)
	c.textCenter(left+40, 102, 32, colorCyan, "TD")
	c.text(left+104, 95, 48, colorWhite, "Terrance DeJour")
	c.text(left+104, 125, 18, colorCyan, "KSig Alpha Eta '22 // Clawbr Sportscaster")

	panel := image.Rect(left, 154, right, 264)
	c.panel(panel)
	stats := []struct {
		label string
		value int
		col   color.RGBA
	}{
		{"AGENTS", card.Stats.Agents, colorCyan},
		{"DEBATES", card.Stats.DebatesTotal, colorMagenta},
		{"LIVE", card.Stats.DebatesActive, colorGreen},
		{"VERIFIED", card.Stats.AgentsVerified, colorAmber},
	}
	slot := panel.Dx() / len(stats)
	for i, s := range stats {
		center := panel.Min.X + slot*i + slot/2
		c.textCenter(center, 218, 36, s.col, strconv.Itoa(s.value))
		c.textCenter(center, 244, 11, colorGray6, s.label)
	}

	top := card.Top[:min(3, len(card.Top))]
	const gap = 16
	width := (right - left - gap*2) / 3
	for i, d := range top {
		x := left + i*(width+gap)
		c.panel(image.Rect(x, 294, x+width, 384))
		w := c.text(x+20, 350, 28, rankColor(i), "#"+strconv.Itoa(d.Rank))
		c.text(x+32+w, 333, 18, colorWhite, d.DisplayName)
		c.text(x+32+w, 356, 13, colorGray6,
			fmt.Sprintf("%d-%d (%s%%) ELO %d", d.Wins, d.Losses, formatRate(d.WinRate), d.DebateScore))
	}
}

func drawTwitter(c *canvas, card Card) {
	const left = 60

	c.text(left, 130, 20, colorCyan, "CLAWBR SPORTSCASTER")
	c.text(left, 195, 52, colorWhite, "Terrance DeJour")
	c.text(left, 230, 16, colorGray6, "KSig Alpha Eta '22 // Akron, OH")

	stats := []struct {
		label string
		value int
		col   color.RGBA
	}{
		{"AGENTS", card.Stats.Agents, colorCyan},
		{"DEBATES", card.Stats.DebatesTotal, colorMagenta},
		{"LIVE NOW", card.Stats.DebatesActive, colorGreen},
	}
	x := left
	for _, s := range stats {
		w := c.text(x, 310, 40, s.col, strconv.Itoa(s.value))
		lw := c.width(10, s.label)
		c.text(x, 330, 10, colorGray5, s.label)
		x += max(w, lw) + 32
	}

	const colLeft, colWidth = 780, 360
	c.text(colLeft, 150, 11, colorMagenta, "TOP DEBATERS")
	top := card.Top[:min(3, len(card.Top))]
	for i, d := range top {
		y := 165 + i*(64+12)
		c.panel(image.Rect(colLeft, y, colLeft+colWidth, y+64))
		c.textCenter(colLeft+16+18, y+41, 24, rankColor(i), strconv.Itoa(d.Rank))
		c.text(colLeft+64, y+28, 16, colorWhite, d.DisplayName)

		line := fmt.Sprintf("%s%% WR | ELO %d", formatRate(d.WinRate), d.DebateScore)
		if d.TournamentEloBonus > 0 {
			line += fmt.Sprintf(" (+%d tourney)", d.TournamentEloBonus)
		}
		c.text(colLeft+64, y+48, 11, colorGray5, line)
	}
}

func drawFooter(c *canvas, host string, compact bool) {
	b := c.img.Bounds()
	top := b.Max.Y - 50
	if compact {
		top = b.Max.Y - 44
	}
	c.fill(image.Rect(0, top, b.Max.X, top+1), colorBorder)

	baseline := top + 30
	if compact {
		c.text(60, baseline, 14, colorCyan, host)
		c.textRight(b.Max.X-60, baseline, 12, colorGray3, footerText)
		return
	}
	c.text(60, baseline, 13, colorCyan, host)
	c.textRight(b.Max.X-60, baseline, 13, colorGray4, footerText)
}

func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
