package domain

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64
}

// GeneratedOptions is the outcome of turning a prompt into wheel options.
type GeneratedOptions struct {
	Options  []string `json:"options"`
	Provider string   `json:"provider"`
}

// SavedWheel is a named option set as persisted in the wheel library.
type SavedWheel struct {
	Name    string   `json:"name"`
	Options []string `json:"options"`
	Colors  []string `json:"colors"`
}

// Preset is a built-in, read-only option list.
type Preset struct {
	Name    string   `json:"name"`
	Options []string `json:"options"`
}
