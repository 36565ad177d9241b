package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/domain"
	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/lib/logger/sl"
	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/ports"
	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/sound"
)

// FrameInterval is the pause between animation frames.
const FrameInterval = 16 * time.Millisecond

// User-facing messages.
const (
	MsgEmptyPrompt   = "Please enter a prompt"
	MsgGenerateError = "Error generating options: %s"
	MsgNoOptions     = "No options were generated. Please try a different prompt."
	MsgEmptyManual   = "Please enter at least one option"
	MsgInvalidManual = "Please enter at least one valid option"
	MsgMissingName   = "Please enter a name for your wheel"
	MsgEmptySave     = "Cannot save an empty wheel"
	MsgSaved         = "Wheel \"%s\" saved successfully!"
	MsgNoSelection   = "Please select a wheel to load"
	MsgNotFound      = "Could not find the selected wheel"
	MsgSpinning      = "Spinning..."
	MsgStorageError  = "Storage error: %s"

	SelectPlaceholder = "-- Select a saved wheel --"
)

// SessionDeps wires a Session to its collaborators. Presets may be nil.
type SessionDeps struct {
	Generator ports.OptionGenerator
	Library   *Library
	Presets   ports.PresetStore
	Renderer  ports.Renderer
	Sound     *sound.Effect
	Clock     ports.Clock
	RNG       domain.RNG
	View      ports.View
	Log       *slog.Logger
}

// Session is one interactive wheel: the option list, the colours, the
// rotation and at most one spin in flight. It is safe for concurrent use.
type Session struct {
	deps SessionDeps

	mu    sync.Mutex
	wheel domain.Wheel
	name  string
}

func NewSession(deps SessionDeps) *Session {
	if deps.Log == nil {
		deps.Log = slog.Default()
	}
	return &Session{deps: deps}
}

// Wheel returns the current snapshot.
func (s *Session) Wheel() domain.Wheel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wheel
}

// Name is the current wheel name field.
func (s *Session) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

// Start pushes the initial state to the view.
func (s *Session) Start(ctx context.Context) error {
	s.deps.View.SetSoundStatus(s.deps.Sound.Status())
	if err := s.refreshSaved(ctx); err != nil {
		return err
	}
	return s.Redraw()
}

// Generate asks the option generator for options from prompt.
func (s *Session) Generate(ctx context.Context, prompt string) error {
	const op = "app.Session.Generate"
	log := s.deps.Log.With(sl.Op(op))

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		s.deps.View.Alert(MsgEmptyPrompt)
		return domain.ErrEmptyPrompt
	}

	s.deps.View.SetLoading(true)
	out, err := s.deps.Generator.Generate(ctx, prompt)
	s.deps.View.SetLoading(false)

	if err != nil {
		log.Error("generate options", sl.Err(err))
		s.deps.View.Alert(fmt.Sprintf(MsgGenerateError, err.Error()))
		return fmt.Errorf("%s: %w", op, err)
	}
	if len(out.Options) == 0 {
		s.deps.View.Alert(MsgNoOptions)
		return domain.ErrNoOptions
	}

	log.Info("options generated", "count", len(out.Options), "provider", out.Provider)
	return s.UpdateWheel(out.Options)
}

// UseManualOptions replaces the wheel with one option per non-blank line.
func (s *Session) UseManualOptions(text string) error {
	if strings.TrimSpace(text) == "" {
		s.deps.View.Alert(MsgEmptyManual)
		return domain.ErrEmptyManual
	}
	options := domain.ParseManualOptions(text)
	if len(options) == 0 {
		s.deps.View.Alert(MsgInvalidManual)
		return domain.ErrEmptyManual
	}
	return s.UpdateWheel(options)
}

// UsePreset loads a built-in option list.
func (s *Session) UsePreset(ctx context.Context, name string) error {
	if s.deps.Presets == nil {
		return domain.ErrPresetNotFound
	}
	p, err := s.deps.Presets.GetPreset(ctx, name)
	if err != nil {
		s.deps.View.Alert(fmt.Sprintf("Could not find preset %q", name))
		return fmt.Errorf("get preset: %w", err)
	}
	return s.UpdateWheel(p.Options)
}

// UpdateWheel replaces the option list, regenerates colours and redraws.
func (s *Session) UpdateWheel(options []string) error {
	s.mu.Lock()
	s.wheel = s.wheel.WithOptions(options)
	w := s.wheel
	s.mu.Unlock()

	s.deps.View.SetControls(!w.Empty() && !w.Spinning, !w.Empty())
	return s.deps.Renderer.Render(w)
}

// Redraw repaints the current state, e.g. after a resize.
func (s *Session) Redraw() error {
	return s.deps.Renderer.Render(s.Wheel())
}

// Spin animates one spin to completion and returns the winning option.
// A spin request while spinning or with no options is a no-op that
// returns ErrSpinInProgress or ErrEmptyWheel. Cancelling ctx stops the
// animation where it is and reports no winner.
func (s *Session) Spin(ctx context.Context) (string, error) {
	const op = "app.Session.Spin"
	log := s.deps.Log.With(sl.Op(op))

	s.mu.Lock()
	spin, w, err := domain.StartSpin(s.wheel, s.deps.RNG, s.deps.Clock.Now())
	if err != nil {
		s.mu.Unlock()
		return "", err
	}
	s.wheel = w
	s.mu.Unlock()

	log.Debug("spin started", "from", spin.From, "to", spin.To)
	s.deps.View.SetControls(false, true)
	s.deps.View.ShowResult(MsgSpinning)
	s.deps.Sound.Start()
	s.deps.View.SetSoundStatus(s.deps.Sound.Status())
	defer s.deps.Sound.Stop()
	defer func() {
		w := s.Wheel()
		s.deps.View.SetControls(!w.Empty(), !w.Empty())
	}()

	for {
		s.mu.Lock()
		w, frame := spin.Advance(s.wheel, s.deps.Clock.Now())
		s.wheel = w
		s.mu.Unlock()

		if err := s.deps.Renderer.Render(w); err != nil {
			log.Warn("render frame", sl.Err(err))
		}
		s.deps.Sound.Update(frame.Progress)

		if frame.Done {
			_, winner, ok := w.Winner()
			if !ok {
				return "", domain.ErrEmptyWheel
			}
			log.Info("spin finished", "winner", winner, "rotation", w.Rotation)
			s.deps.View.ShowResult(winner)
			return winner, nil
		}

		if err := s.deps.Clock.Sleep(ctx, FrameInterval); err != nil {
			s.mu.Lock()
			s.wheel.Spinning = false
			s.mu.Unlock()
			s.deps.View.ShowResult("")
			return "", fmt.Errorf("%s: %w", op, err)
		}
	}
}

// Save stores the current wheel under name.
func (s *Session) Save(ctx context.Context, name string) error {
	const op = "app.Session.Save"

	name = strings.TrimSpace(name)
	if name == "" {
		s.deps.View.Alert(MsgMissingName)
		return domain.ErrMissingName
	}

	s.mu.Lock()
	w := s.wheel
	s.mu.Unlock()
	if w.Empty() {
		s.deps.View.Alert(MsgEmptySave)
		return domain.ErrEmptyWheel
	}

	if err := s.deps.Library.Save(ctx, w.Saved(name)); err != nil {
		s.deps.Log.Error("save wheel", sl.Op(op), sl.Err(err))
		s.deps.View.Alert(fmt.Sprintf(MsgStorageError, err.Error()))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.name = name
	s.mu.Unlock()

	if err := s.refreshSaved(ctx); err != nil {
		return err
	}
	s.deps.View.Alert(fmt.Sprintf(MsgSaved, name))
	return nil
}

// Load replaces the wheel with the saved wheel called name.
func (s *Session) Load(ctx context.Context, name string) error {
	const op = "app.Session.Load"

	if name == "" || name == SelectPlaceholder {
		s.deps.View.Alert(MsgNoSelection)
		return domain.ErrNoSelection
	}

	sw, err := s.deps.Library.Get(ctx, name)
	if errors.Is(err, domain.ErrWheelNotFound) {
		s.deps.View.Alert(MsgNotFound)
		return err
	}
	if err != nil {
		s.deps.Log.Error("load wheel", sl.Op(op), sl.Err(err))
		s.deps.View.Alert(fmt.Sprintf(MsgStorageError, err.Error()))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.wheel = s.wheel.WithSaved(sw)
	s.name = sw.Name
	w := s.wheel
	s.mu.Unlock()

	s.deps.View.SetWheelName(sw.Name)
	s.deps.View.SetControls(!w.Empty() && !w.Spinning, !w.Empty())
	return s.deps.Renderer.Render(w)
}

// SavedWheelChoices lists the selector entries, placeholder first.
func (s *Session) SavedWheelChoices(ctx context.Context) ([]string, error) {
	names, err := s.deps.Library.Names(ctx)
	if err != nil {
		return nil, err
	}
	return append([]string{SelectPlaceholder}, names...), nil
}

// ToggleSound flips the sound effect and updates the status label.
func (s *Session) ToggleSound() bool {
	on := s.deps.Sound.Toggle()
	s.deps.View.SetSoundStatus(s.deps.Sound.Status())
	return on
}

func (s *Session) refreshSaved(ctx context.Context) error {
	choices, err := s.SavedWheelChoices(ctx)
	if err != nil {
		s.deps.Log.Error("list saved wheels", sl.Err(err))
		s.deps.View.Alert(fmt.Sprintf(MsgStorageError, err.Error()))
		return err
	}
	s.deps.View.SetSavedWheels(choices)
	return nil
}
