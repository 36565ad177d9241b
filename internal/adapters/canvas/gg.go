// Package canvas implements render.Canvas on top of fogleman/gg.
package canvas

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/render"
)

type faceKey struct {
	size float64
	bold bool
}

var (
	fontsOnce sync.Once
	fontsErr  error
	regular   *truetype.Font
	bold      *truetype.Font
)

func loadFonts() error {
	fontsOnce.Do(func() {
		if regular, fontsErr = truetype.Parse(goregular.TTF); fontsErr != nil {
			return
		}
		bold, fontsErr = truetype.Parse(gobold.TTF)
	})
	return fontsErr
}

// Canvas is an in-memory RGBA image.
type Canvas struct {
	dc    *gg.Context
	faces map[faceKey]font.Face
}

// New returns a size x size canvas.
func New(size int) (*Canvas, error) {
	const op = "canvas.New"

	if size <= 0 {
		return nil, fmt.Errorf("%s: invalid size %d", op, size)
	}
	if err := loadFonts(); err != nil {
		return nil, fmt.Errorf("%s: parse fonts: %w", op, err)
	}
	return &Canvas{
		dc:    gg.NewContext(size, size),
		faces: make(map[faceKey]font.Face),
	}, nil
}

func (c *Canvas) Size() (int, int) { return c.dc.Width(), c.dc.Height() }

// Clear resets the surface to fully transparent.
func (c *Canvas) Clear() {
	c.dc.SetRGBA(0, 0, 0, 0)
	c.dc.Clear()
}

func (c *Canvas) Circle(p render.Point, r float64, s render.Style) {
	c.dc.NewSubPath()
	c.dc.DrawCircle(p.X, p.Y, r)
	c.paint(s)
}

func (c *Canvas) Wedge(p render.Point, r, start, end float64, s render.Style) {
	c.dc.NewSubPath()
	c.dc.MoveTo(p.X, p.Y)
	c.dc.DrawArc(p.X, p.Y, r, start, end)
	c.dc.ClosePath()
	c.paint(s)
}

func (c *Canvas) Polygon(pts []render.Point, s render.Style) {
	if len(pts) == 0 {
		return
	}
	c.dc.NewSubPath()
	c.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.dc.ClosePath()
	c.paint(s)
}

func (c *Canvas) Text(t render.Text) {
	c.dc.Push()
	defer c.dc.Pop()

	c.dc.SetFontFace(c.face(t.Size, t.Bold))
	c.dc.Translate(t.Origin.X, t.Origin.Y)
	c.dc.Rotate(t.Angle)

	ax := 0.0
	switch t.Align {
	case render.AlignCenter:
		ax = 0.5
	case render.AlignRight:
		ax = 1
	}
	// Centred text is also centred vertically; the rest sits on its baseline.
	ay := 0.0
	if t.Align == render.AlignCenter {
		ay = 0.5
	}

	if t.Halo != "" {
		c.setColor(t.Halo)
		for _, d := range [][2]float64{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			c.dc.DrawStringAnchored(t.Value, t.X+d[0], t.Y+d[1], ax, ay)
		}
	}
	c.setColor(t.Color)
	c.dc.DrawStringAnchored(t.Value, t.X, t.Y, ax, ay)
}

// EncodePNG writes the current frame to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := c.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("canvas.EncodePNG: %w", err)
	}
	return nil
}

// SavePNG writes the current frame to path.
func (c *Canvas) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("canvas.SavePNG: %w", err)
	}
	return nil
}

func (c *Canvas) paint(s render.Style) {
	if s.Fill != "" {
		c.setColor(s.Fill)
		if s.Stroke != "" {
			c.dc.FillPreserve()
		} else {
			c.dc.Fill()
		}
	}
	if s.Stroke != "" {
		c.setColor(s.Stroke)
		c.dc.SetLineWidth(s.LineWidth)
		c.dc.Stroke()
	}
	c.dc.ClearPath()
}

func (c *Canvas) face(size float64, isBold bool) font.Face {
	k := faceKey{size: size, bold: isBold}
	if f, ok := c.faces[k]; ok {
		return f
	}
	src := regular
	if isBold {
		src = bold
	}
	f := truetype.NewFace(src, &truetype.Options{Size: size})
	c.faces[k] = f
	return f
}

var named = map[string][3]float64{
	"white": {1, 1, 1},
	"black": {0, 0, 0},
	"red":   {1, 0, 0},
}

// setColor understands the colour forms the renderer emits: #rgb, #rrggbb,
// a few names and rgba(r,g,b,a).
func (c *Canvas) setColor(s string) {
	s = strings.TrimSpace(s)
	if rgb, ok := named[strings.ToLower(s)]; ok {
		c.dc.SetRGB(rgb[0], rgb[1], rgb[2])
		return
	}
	if strings.HasPrefix(s, "rgba(") {
		var r, g, b int
		var a float64
		if _, err := fmt.Sscanf(strings.ReplaceAll(s, " ", ""), "rgba(%d,%d,%d,%g)", &r, &g, &b, &a); err == nil {
			c.dc.SetRGBA(float64(r)/255, float64(g)/255, float64(b)/255, a)
			return
		}
	}
	c.dc.SetHexColor(s)
}
