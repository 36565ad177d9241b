package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyPrompt    = errors.New("prompt is required")
	ErrNoOptions      = errors.New("failed to extract options from AI response")
	ErrEmptyWheel     = errors.New("wheel has no options")
	ErrSpinInProgress = errors.New("wheel is already spinning")
	ErrMissingName    = errors.New("wheel name is required")
	ErrNoSelection    = errors.New("no saved wheel selected")
	ErrWheelNotFound  = errors.New("saved wheel not found")
	ErrPresetNotFound = errors.New("preset not found")
	ErrEmptyManual    = errors.New("no options entered")
)

// ProviderError is an error payload reported by the completion provider itself,
// as opposed to a transport or decoding failure.
type ProviderError struct {
	Provider string
	Message  string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s error: %s", e.Provider, e.Message)
}
