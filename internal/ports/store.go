package ports

import (
	"context"

	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/domain"
)

// KeyValueStore is a minimal string store, the analogue of browser local storage.
type KeyValueStore interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// PresetStore provides built-in wheels.
type PresetStore interface {
	GetPreset(ctx context.Context, name string) (domain.Preset, error)
	ListPresets(ctx context.Context) ([]domain.Preset, error)
}
