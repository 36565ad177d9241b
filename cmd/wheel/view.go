package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/briandowns/spinner"
)

// consoleView prints session feedback to the terminal.
type consoleView struct {
	out     io.Writer
	errOut  io.Writer
	log     *slog.Logger
	spinner *spinner.Spinner
}

func (v *consoleView) Alert(msg string) { fmt.Fprintln(v.errOut, msg) }

func (v *consoleView) ShowResult(text string) { fmt.Fprintln(v.out, text) }

func newConsoleView(out, errOut io.Writer, log *slog.Logger) *consoleView {
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(errOut))
	s.Suffix = " Generating options..."
	return &consoleView{out: out, errOut: errOut, log: log, spinner: s}
}

// SetLoading animates a spinner; it stays silent when errOut is not a terminal.
func (v *consoleView) SetLoading(on bool) {
	if on {
		v.spinner.Start()
		return
	}
	v.spinner.Stop()
}

func (v *consoleView) SetSoundStatus(label string) {
	v.log.Debug("sound status", "label", label)
}

func (v *consoleView) SetWheelName(name string) {
	v.log.Debug("wheel name", "name", name)
}

func (v *consoleView) SetSavedWheels(choices []string) {
	v.log.Debug("saved wheels", "count", len(choices)-1)
}

func (v *consoleView) SetControls(canSpin, canSave bool) {
	v.log.Debug("controls", "spin", canSpin, "save", canSave)
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
