package domain

import (
	"math"
	"slices"
)

// FullTurn is one revolution in radians.
const FullTurn = 2 * math.Pi

// PointerAngle is where the fixed pointer sits (0 rad, the 3 o'clock edge).
// Segment layout and WinningIndex both assume this reference.
const PointerAngle = 0.0

// Palette is cycled through to colour segments.
var Palette = []string{
	"#FF6384", "#36A2EB", "#FFCE56", "#4BC0C0", "#9966FF",
	"#FF9F40", "#F77FBE", "#6275CD", "#FFC154", "#47B39C",
	"#B558F6", "#EC6B56", "#FFC154", "#47B39C", "#36A2EB",
}

// PaletteColor returns the colour for the segment at index.
func PaletteColor(index int) string {
	return Palette[index%len(Palette)]
}

// AssignColors returns one palette colour per option, index-aligned.
func AssignColors(n int) []string {
	colors := make([]string, n)
	for i := 0; i < n; i++ {
		colors[i] = PaletteColor(i)
	}
	return colors
}

// Wheel is an immutable snapshot of the wheel state. Methods never modify
// the receiver; they return a new snapshot.
type Wheel struct {
	Options  []string
	Colors   []string
	Rotation float64
	Spinning bool
}

// NewWheel builds an idle wheel at rotation 0 with palette colours.
func NewWheel(options []string) Wheel {
	return Wheel{}.WithOptions(options)
}

// WithOptions replaces the option list and regenerates colours. Rotation and
// the spinning flag carry over.
func (w Wheel) WithOptions(options []string) Wheel {
	w.Options = slices.Clone(options)
	w.Colors = AssignColors(len(options))
	return w
}

// WithSaved restores options and colours exactly as saved. Colours are only
// regenerated when they do not line up with the options.
func (w Wheel) WithSaved(sw SavedWheel) Wheel {
	w.Options = slices.Clone(sw.Options)
	if len(sw.Colors) == len(sw.Options) {
		w.Colors = slices.Clone(sw.Colors)
	} else {
		w.Colors = AssignColors(len(sw.Options))
	}
	return w
}

func (w Wheel) WithRotation(r float64) Wheel {
	w.Rotation = r
	return w
}

func (w Wheel) Empty() bool { return len(w.Options) == 0 }

// SegmentAngle is the angular width of one segment.
func (w Wheel) SegmentAngle() float64 {
	if w.Empty() {
		return 0
	}
	return FullTurn / float64(len(w.Options))
}

// Winner returns the option under the pointer at the current rotation.
func (w Wheel) Winner() (int, string, bool) {
	if w.Empty() {
		return 0, "", false
	}
	i := WinningIndex(len(w.Options), w.Rotation)
	return i, w.Options[i], true
}

// Saved converts the wheel into a named record.
func (w Wheel) Saved(name string) SavedWheel {
	return SavedWheel{
		Name:    name,
		Options: slices.Clone(w.Options),
		Colors:  slices.Clone(w.Colors),
	}
}

// WinningIndex maps a final rotation to the segment under the pointer:
// floor(((2π - (R mod 2π)) mod 2π) / (2π/n)) mod n. The result is in [0, n).
func WinningIndex(n int, rotation float64) int {
	if n <= 0 {
		return 0
	}
	normalized := math.Mod(rotation-PointerAngle, FullTurn)
	if normalized < 0 {
		normalized += FullTurn
	}
	inverted := math.Mod(FullTurn-normalized, FullTurn)
	idx := int(math.Floor(inverted/(FullTurn/float64(n)))) % n
	if idx < 0 {
		idx += n
	}
	return idx
}

// LabelLimit is the maximum label length for a wheel with n segments.
func LabelLimit(n int) int {
	if n > 10 {
		return 12
	}
	return 20
}

// TruncateLabel shortens s to limit runes, ending in "...".
func TruncateLabel(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	keep := max(limit-3, 0)
	return string(r[:keep]) + "..."
}
