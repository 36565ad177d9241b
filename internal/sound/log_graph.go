package sound

import (
	"log/slog"
	"sync/atomic"
)

// LogGraph is a Graph that produces no audio and records every parameter
// change in the structured log at debug level.
type LogGraph struct {
	log  *slog.Logger
	next atomic.Int64
}

func NewLogGraph(log *slog.Logger) *LogGraph {
	return &LogGraph{log: log}
}

// LogFactory returns a Factory producing a LogGraph.
func LogFactory(log *slog.Logger) Factory {
	return func() (Graph, error) { return NewLogGraph(log), nil }
}

func (g *LogGraph) StartOscillator(wave Waveform, hz float64) (Oscillator, error) {
	id := g.next.Add(1)
	g.log.Debug("oscillator started", "osc", id, "wave", string(wave), "hz", hz)
	return &logOscillator{id: id, log: g.log}, nil
}

func (g *LogGraph) Modulate(src Oscillator, depth float64, targets ...Oscillator) {
	if o, ok := src.(*logOscillator); ok {
		g.log.Debug("modulation connected", "osc", o.id, "depth", depth, "targets", len(targets))
	}
}

func (g *LogGraph) SetGain(v float64) {
	g.log.Debug("gain", "value", v)
}

type logOscillator struct {
	id  int64
	log *slog.Logger
}

func (o *logOscillator) SetFrequency(hz float64) {
	o.log.Debug("frequency", "osc", o.id, "hz", hz)
}

func (o *logOscillator) Stop() {
	o.log.Debug("oscillator stopped", "osc", o.id)
}
