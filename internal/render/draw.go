package render

import (
	"fmt"

	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/domain"
)

// Align is horizontal text alignment relative to the anchor point.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Style describes how a shape is painted. Empty colours skip that pass.
type Style struct {
	Fill      string
	Stroke    string
	LineWidth float64
}

// Text is a label drawn at (X, Y) after rotating the canvas by Angle around
// Origin.
type Text struct {
	Value  string
	Origin Point
	Angle  float64
	X, Y   float64
	Align  Align
	Size   float64
	Bold   bool
	Color  string
	Halo   string
}

// Canvas is the drawing surface a wheel is painted on.
type Canvas interface {
	Size() (width, height int)
	Clear()
	Circle(c Point, r float64, s Style)
	Wedge(c Point, r, start, end float64, s Style)
	Polygon(pts []Point, s Style)
	Text(t Text)
}

// Draw repaints the canvas from scratch with l.
func Draw(c Canvas, l Layout) {
	c.Clear()

	if l.Empty() {
		c.Circle(l.Center, l.Radius-rimInset, Style{Fill: "#f5f5f5", Stroke: "#ddd", LineWidth: 10})
		c.Text(Text{
			Value:  EmptyText,
			Origin: l.Center,
			Align:  AlignCenter,
			Size:   16,
			Color:  "#666",
		})
		return
	}

	for _, s := range l.Segments {
		c.Wedge(l.Center, l.Radius-rimInset, s.Start, s.End, Style{Fill: s.Color, Stroke: "white", LineWidth: 2})
		c.Text(Text{
			Value:  s.Label,
			Origin: l.Center,
			Angle:  s.Mid,
			X:      l.LabelRadius,
			Y:      5,
			Align:  AlignRight,
			Size:   l.FontSize,
			Bold:   true,
			Color:  "black",
			Halo:   "rgba(255,255,255,0.7)",
		})
	}

	c.Circle(l.Center, l.HubRadius, Style{Fill: "white", Stroke: "#333", LineWidth: 2})
	c.Polygon(l.Pointer[:], Style{Fill: "#FF0000", Stroke: "#000", LineWidth: 3})
}

// Renderer draws wheel snapshots onto a Canvas.
type Renderer struct {
	canvas Canvas
	after  func(Canvas) error
}

// NewRenderer returns a Renderer for c. If after is non-nil it is called
// once each frame has been drawn, e.g. to flush the canvas to a file.
func NewRenderer(c Canvas, after func(Canvas) error) *Renderer {
	return &Renderer{canvas: c, after: after}
}

func (r *Renderer) Render(w domain.Wheel) error {
	width, height := r.canvas.Size()
	Draw(r.canvas, NewLayout(w, width, height))
	if r.after != nil {
		if err := r.after(r.canvas); err != nil {
			return fmt.Errorf("after render: %w", err)
		}
	}
	return nil
}

// Canvas exposes the underlying surface.
func (r *Renderer) Canvas() Canvas { return r.canvas }
