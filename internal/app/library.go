package app

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/domain"
	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/ports"
)

// SavedWheelsKey is the single store key holding every saved wheel.
const SavedWheelsKey = "savedWheels"

// Library persists named wheels as one JSON object (name -> wheel) under
// SavedWheelsKey.
type Library struct {
	store ports.KeyValueStore
}

func NewLibrary(store ports.KeyValueStore) *Library {
	return &Library{store: store}
}

func (l *Library) all(ctx context.Context) (map[string]domain.SavedWheel, error) {
	raw, ok, err := l.store.Get(ctx, SavedWheelsKey)
	if err != nil {
		return nil, fmt.Errorf("read saved wheels: %w", err)
	}
	wheels := map[string]domain.SavedWheel{}
	if !ok || raw == "" {
		return wheels, nil
	}
	if err := json.Unmarshal([]byte(raw), &wheels); err != nil {
		return nil, fmt.Errorf("decode saved wheels: %w", err)
	}
	return wheels, nil
}

// Save writes or overwrites the entry for sw.Name.
func (l *Library) Save(ctx context.Context, sw domain.SavedWheel) error {
	wheels, err := l.all(ctx)
	if err != nil {
		return err
	}
	wheels[sw.Name] = sw

	raw, err := json.Marshal(wheels)
	if err != nil {
		return fmt.Errorf("encode saved wheels: %w", err)
	}
	if err := l.store.Set(ctx, SavedWheelsKey, string(raw)); err != nil {
		return fmt.Errorf("write saved wheels: %w", err)
	}
	return nil
}

func (l *Library) Get(ctx context.Context, name string) (domain.SavedWheel, error) {
	wheels, err := l.all(ctx)
	if err != nil {
		return domain.SavedWheel{}, err
	}
	sw, ok := wheels[name]
	if !ok {
		return domain.SavedWheel{}, domain.ErrWheelNotFound
	}
	return sw, nil
}

// Names lists saved wheel names in sorted order.
func (l *Library) Names(ctx context.Context) ([]string, error) {
	wheels, err := l.all(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(wheels))
	for name := range wheels {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}
