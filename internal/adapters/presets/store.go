package presets

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/domain"
)

//go:embed data/presets.json
var presetFS embed.FS

const presetFile = "data/presets.json"

// EmbeddedStore serves the built-in wheels compiled into the binary.
type EmbeddedStore struct {
	once    sync.Once
	presets []domain.Preset
	byName  map[string]domain.Preset
	err     error
}

func NewEmbeddedStore() *EmbeddedStore {
	return &EmbeddedStore{}
}

func (s *EmbeddedStore) init() {
	raw, err := presetFS.ReadFile(presetFile)
	if err != nil {
		s.err = fmt.Errorf("read embedded presets: %w", err)
		return
	}
	if err := json.Unmarshal(raw, &s.presets); err != nil {
		s.err = fmt.Errorf("parse embedded presets: %w", err)
		return
	}
	s.byName = make(map[string]domain.Preset, len(s.presets))
	for _, p := range s.presets {
		s.byName[p.Name] = p
	}
}

func (s *EmbeddedStore) GetPreset(_ context.Context, name string) (domain.Preset, error) {
	s.once.Do(s.init)
	if s.err != nil {
		return domain.Preset{}, s.err
	}
	p, ok := s.byName[name]
	if !ok {
		return domain.Preset{}, domain.ErrPresetNotFound
	}
	return p, nil
}

// ListPresets returns presets in file order.
func (s *EmbeddedStore) ListPresets(_ context.Context) ([]domain.Preset, error) {
	s.once.Do(s.init)
	if s.err != nil {
		return nil, s.err
	}
	out := make([]domain.Preset, len(s.presets))
	copy(out, s.presets)
	return out, nil
}
