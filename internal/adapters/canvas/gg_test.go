package canvas_test

import (
	"bytes"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/adapters/canvas"
	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/domain"
	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/render"
)

func TestNew_InvalidSize(t *testing.T) {
	if _, err := canvas.New(0); err == nil {
		t.Fatal("expected error for zero size")
	}
}

func TestCanvas_RendersWheelPNG(t *testing.T) {
	c, err := canvas.New(200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := render.NewRenderer(c, nil)
	if err := r.Render(domain.NewWheel([]string{"Pancakes", "Eggs", "Toast"})); err != nil {
		t.Fatalf("render: %v", err)
	}

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 200 {
		t.Fatalf("unexpected bounds %v", b)
	}

	// The first segment starts at 3 o'clock and is filled #FF6384.
	r8, g8, b8, a8 := img.At(130, 115).RGBA()
	if r8>>8 != 0xFF || g8>>8 != 0x63 || b8>>8 != 0x84 || a8>>8 != 0xFF {
		t.Errorf("unexpected segment colour: %d %d %d %d", r8>>8, g8>>8, b8>>8, a8>>8)
	}

	// Corners stay transparent.
	if _, _, _, a := img.At(1, 1).RGBA(); a != 0 {
		t.Errorf("expected transparent corner, alpha %d", a)
	}
}

func TestCanvas_SavePNG(t *testing.T) {
	c, err := canvas.New(120)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	render.Draw(c, render.NewLayout(domain.Wheel{}, 120, 120))

	path := filepath.Join(t.TempDir(), "wheel.png")
	if err := c.SavePNG(path); err != nil {
		t.Fatalf("save: %v", err)
	}
}
