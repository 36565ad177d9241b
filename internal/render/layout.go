// Package render lays out and draws a wheel onto a 2-D canvas.
//
// Layout is pure and deterministic: the same wheel and size always give the
// same geometry. Draw turns a Layout into canvas calls and always repaints
// the whole surface.
package render

import (
	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/domain"
)

const (
	EmptyText = "Generate options to create a wheel"

	rimInset        = 5.0
	labelRadiusFrac = 0.8
	hubRadiusFrac   = 0.1
	pointerLength   = 30.0
	pointerHalfBase = 15.0
)

// Point is a canvas coordinate.
type Point struct{ X, Y float64 }

// Segment is one slice of the wheel.
type Segment struct {
	Index int
	Color string
	Start float64
	End   float64
	Mid   float64
	Label string
}

// Layout is the full geometry of one frame.
type Layout struct {
	Width, Height int
	Center        Point
	Radius        float64
	Segments      []Segment
	LabelRadius   float64
	FontSize      float64
	HubRadius     float64
	Pointer       [3]Point
}

// Empty reports whether the layout is the placeholder ring.
func (l Layout) Empty() bool { return len(l.Segments) == 0 }

// NewLayout computes the geometry for w on a width x height canvas. The wheel
// radius is half the width, as the canvas is expected to be square.
func NewLayout(w domain.Wheel, width, height int) Layout {
	r := float64(width) / 2
	l := Layout{
		Width:       width,
		Height:      height,
		Center:      Point{X: r, Y: r},
		Radius:      r,
		LabelRadius: r * labelRadiusFrac,
		HubRadius:   r * hubRadiusFrac,
	}
	if w.Empty() {
		return l
	}

	n := len(w.Options)
	l.FontSize = 14
	if n > 10 {
		l.FontSize = 12
	}

	step := w.SegmentAngle()
	limit := domain.LabelLimit(n)
	l.Segments = make([]Segment, n)
	for i, opt := range w.Options {
		start := float64(i)*step + w.Rotation
		l.Segments[i] = Segment{
			Index: i,
			Color: segmentColor(w, i),
			Start: start,
			End:   start + step,
			Mid:   start + step/2,
			Label: domain.TruncateLabel(opt, limit),
		}
	}

	// The pointer sits at domain.PointerAngle (3 o'clock) and points inward.
	tipX := float64(width) - rimInset - pointerLength/2
	baseX := float64(width) - rimInset
	l.Pointer = [3]Point{
		{X: tipX, Y: r},
		{X: baseX, Y: r - pointerHalfBase},
		{X: baseX, Y: r + pointerHalfBase},
	}
	return l
}

func segmentColor(w domain.Wheel, i int) string {
	if i < len(w.Colors) && w.Colors[i] != "" {
		return w.Colors[i]
	}
	return domain.PaletteColor(i)
}
