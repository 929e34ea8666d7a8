package preview

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	colorBackground   = color.RGBA{0x0a, 0x0a, 0x12, 0xff}
	colorGrid         = color.RGBA{0x0a, 0x11, 0x19, 0xff}
	colorSurface      = color.NRGBA{0x1a, 0x1a, 0x2e, 0xcc}
	colorSurfaceSolid = color.RGBA{0x1a, 0x1a, 0x2e, 0xff}
	colorBorder       = color.RGBA{0x2a, 0x2a, 0x40, 0xff}
	colorWhite        = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorCyan         = color.RGBA{0x00, 0xf0, 0xff, 0xff}
	colorMagenta      = color.RGBA{0xff, 0x2d, 0x95, 0xff}
	colorAmber        = color.RGBA{0xff, 0xb8, 0x00, 0xff}
	colorGreen        = color.RGBA{0x39, 0xff, 0x14, 0xff}
	colorSilver       = color.RGBA{0xc0, 0xc0, 0xc0, 0xff}
	colorBronze       = color.RGBA{0xcd, 0x7f, 0x32, 0xff}
	colorGray3        = color.RGBA{0x33, 0x33, 0x33, 0xff}
	colorGray4        = color.RGBA{0x44, 0x44, 0x44, 0xff}
	colorGray5        = color.RGBA{0x55, 0x55, 0x55, 0xff}
	colorGray6        = color.RGBA{0x66, 0x66, 0x66, 0xff}

	neonStops  = []color.RGBA{colorCyan, colorMagenta, colorAmber, colorGreen}
	rankColors = []color.RGBA{colorAmber, colorSilver, colorBronze}
)

const gridStep = 40

// canvas draws text and boxes onto one image. Faces are opened lazily per size and
// must be released with close.
type canvas struct {
	img   *image.RGBA
	font  *opentype.Font
	faces map[float64]font.Face
	err   error
}

func newCanvas(f *opentype.Font, width, height int) *canvas {
	return &canvas{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		font:  f,
		faces: map[float64]font.Face{},
	}
}

func (c *canvas) close() {
	for _, f := range c.faces {
		_ = f.Close()
	}
}

func (c *canvas) face(size float64) font.Face {
	if f, ok := c.faces[size]; ok {
		return f
	}
	f, err := opentype.NewFace(c.font, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		if c.err == nil {
			c.err = err
		}
		return nil
	}
	c.faces[size] = f
	return f
}

// text draws s with its baseline at y and returns the advance width.
func (c *canvas) text(x, y int, size float64, col color.Color, s string) int {
	face := c.face(size)
	if face == nil {
		return 0
	}
	d := &font.Drawer{Dst: c.img, Src: image.NewUniform(col), Face: face, Dot: fixed.P(x, y)}
	d.DrawString(s)
	return d.Dot.X.Ceil() - x
}

func (c *canvas) textRight(right, y int, size float64, col color.Color, s string) {
	c.text(right-c.width(size, s), y, size, col, s)
}

func (c *canvas) textCenter(center, y int, size float64, col color.Color, s string) {
	c.text(center-c.width(size, s)/2, y, size, col, s)
}

func (c *canvas) width(size float64, s string) int {
	face := c.face(size)
	if face == nil {
		return 0
	}
	return font.MeasureString(face, s).Ceil()
}

func (c *canvas) fill(r image.Rectangle, col color.Color) {
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Over)
}

// panel is a translucent box with a one pixel border.
func (c *canvas) panel(r image.Rectangle) {
	c.fill(r, colorSurface)
	c.fill(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), colorBorder)
	c.fill(image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), colorBorder)
	c.fill(image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), colorBorder)
	c.fill(image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), colorBorder)
}

func (c *canvas) background() {
	b := c.img.Bounds()
	c.fill(b, colorBackground)
	for x := 0; x < b.Dx(); x += gridStep {
		c.fill(image.Rect(x, 0, x+1, b.Dy()), colorGrid)
	}
	for y := 0; y < b.Dy(); y += gridStep {
		c.fill(image.Rect(0, y, b.Dx(), y+1), colorGrid)
	}
}

// neonBar paints the cyan to green gradient across the top edge.
func (c *canvas) neonBar(height int) {
	w := c.img.Bounds().Dx()
	segments := len(neonStops) - 1
	for x := 0; x < w; x++ {
		t := float64(x) / float64(max(w-1, 1)) * float64(segments)
		i := min(int(t), segments-1)
		col := lerp(neonStops[i], neonStops[i+1], t-float64(i))
		c.fill(image.Rect(x, 0, x+1, height), col)
	}
}

// ring draws a filled disc with an outline, used for the avatar badge.
func (c *canvas) ring(cx, cy, radius, stroke int, fillCol, strokeCol color.RGBA) {
	outer, inner := radius*radius, (radius-stroke)*(radius-stroke)
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			d := x*x + y*y
			switch {
			case d <= inner:
				c.img.SetRGBA(cx+x, cy+y, fillCol)
			case d <= outer:
				c.img.SetRGBA(cx+x, cy+y, strokeCol)
			}
		}
	}
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 0xff}
}

func rankColor(i int) color.RGBA {
	if i < len(rankColors) {
		return rankColors[i]
	}
	return colorGray6
}
