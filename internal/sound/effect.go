// Package sound implements the decorative whirring effect played during a spin.
package sound

import (
	"log/slog"
	"sync"

	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/lib/logger/sl"
)

const (
	StatusOn    = "🔊 Sound On"
	StatusOff   = "🔇 Sound Off"
	StatusError = "🔇 Sound Error"

	baseFreq   = 220.0
	sweepFreq  = 880.0
	detuneStep = 0.01
	voices     = 3
	lfoFreq    = 0.5
	lfoDepth   = 10.0
	spinGain   = 0.2
)

// Waveform names an oscillator shape.
type Waveform string

const Sine Waveform = "sine"

// Oscillator is a running tone generator.
type Oscillator interface {
	SetFrequency(hz float64)
	Stop()
}

// Graph is the audio subsystem: oscillators feeding one master gain.
type Graph interface {
	StartOscillator(wave Waveform, hz float64) (Oscillator, error)
	// Modulate routes src through a gain of depth into the frequency of each target.
	Modulate(src Oscillator, depth float64, targets ...Oscillator)
	SetGain(v float64)
}

// Factory creates the audio subsystem. It is called at most once per Effect
// unless it fails.
type Factory func() (Graph, error)

// Effect drives a Graph through a spin. The zero value is not usable; use New.
type Effect struct {
	mu      sync.Mutex
	factory Factory
	graph   Graph
	enabled bool
	status  string
	oscs    []Oscillator
	lfo     Oscillator
	log     *slog.Logger
}

func New(factory Factory, log *slog.Logger) *Effect {
	return &Effect{
		factory: factory,
		enabled: true,
		status:  StatusOn,
		log:     log,
	}
}

func (e *Effect) Enabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.enabled
}

// Status is the label for the sound toggle.
func (e *Effect) Status() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// init lazily creates the graph. A failure disables sound.
func (e *Effect) init() bool {
	if e.graph != nil {
		return true
	}
	g, err := e.factory()
	if err != nil {
		e.log.Error("failed to initialize audio", sl.Err(err))
		e.enabled = false
		e.status = StatusError
		return false
	}
	g.SetGain(0)
	e.graph = g
	return true
}

// Toggle flips sound on or off and returns whether it is now enabled.
func (e *Effect) Toggle() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.enabled = !e.enabled
	if !e.enabled {
		e.status = StatusOff
		return false
	}
	if e.init() {
		e.status = StatusOn
	}
	return e.enabled
}

// Start begins the spin sound: detuned sine voices wobbled by a slow LFO.
func (e *Effect) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.enabled || !e.init() {
		return
	}
	e.stopLocked()

	for i := 0; i < voices; i++ {
		osc, err := e.graph.StartOscillator(Sine, baseFreq*(1+float64(i)*detuneStep))
		if err != nil {
			e.log.Warn("failed to start oscillator", sl.Err(err))
			continue
		}
		e.oscs = append(e.oscs, osc)
	}

	lfo, err := e.graph.StartOscillator(Sine, lfoFreq)
	if err != nil {
		e.log.Warn("failed to start lfo", sl.Err(err))
	} else {
		e.lfo = lfo
		e.graph.Modulate(lfo, lfoDepth, e.oscs...)
	}

	e.graph.SetGain(spinGain)
}

// Update raises pitch and fades volume as progress goes from 0 to 1.
func (e *Effect) Update(progress float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.enabled || e.graph == nil || len(e.oscs) == 0 {
		return
	}
	freq := baseFreq + sweepFreq*progress
	for i, osc := range e.oscs {
		osc.SetFrequency(freq * (1 + float64(i)*detuneStep))
	}
	e.graph.SetGain(spinGain * (1 - progress))
}

// Stop silences and releases all oscillators.
func (e *Effect) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
}

func (e *Effect) stopLocked() {
	for _, osc := range e.oscs {
		osc.Stop()
	}
	e.oscs = nil
	if e.lfo != nil {
		e.lfo.Stop()
		e.lfo = nil
	}
	if e.graph != nil {
		e.graph.SetGain(0)
	}
}
