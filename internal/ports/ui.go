package ports

import (
	"context"
	"time"

	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/domain"
)

// Renderer draws a full wheel snapshot. Every call redraws from scratch.
type Renderer interface {
	Render(w domain.Wheel) error
}

// Clock is the time source driving the spin animation.
type Clock interface {
	Now() time.Time
	// Sleep waits for d or until ctx is done.
	Sleep(ctx context.Context, d time.Duration) error
}

// View is the user-facing surface of a wheel session.
type View interface {
	Alert(msg string)
	ShowResult(text string)
	SetLoading(on bool)
	SetSoundStatus(label string)
	SetWheelName(name string)
	SetSavedWheels(choices []string)
	SetControls(canSpin, canSave bool)
}
