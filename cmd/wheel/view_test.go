package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func TestConsoleView_LogsState(t *testing.T) {
	var logs, out bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	v := newConsoleView(&out, io.Discard, log)

	v.SetWheelName("Colours")
	v.SetSavedWheels([]string{"-- Select a saved wheel --", "Colours"})
	v.SetControls(false, true)
	v.ShowResult("Spinning...")

	for _, want := range []string{`"name":"Colours"`, `"count":1`, `"spin":false`, `"save":true`} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("missing %s in logs %s", want, logs.String())
		}
	}
	if out.String() != "Spinning...\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}
