// Package prompt provides the terminal-backed prompt provider used during
// interactive collection. It wraps promptui and maps an interrupt to
// ErrCanceled so callers can abort the whole walk cleanly.
package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

// ErrCanceled is returned when the user interrupts a prompt. The collection
// walk aborts and nothing is persisted.
var ErrCanceled = errors.New("prompt canceled")

// Terminal prompts on the controlling terminal.
type Terminal struct{}

// NewTerminal returns a terminal prompter.
func NewTerminal() *Terminal {
	return &Terminal{}
}

// Input asks for free text, pre-filled with def so pressing enter accepts
// the default.
func (t *Terminal) Input(path, def string) (string, error) {
	p := promptui.Prompt{
		Label:     path,
		Default:   def,
		AllowEdit: true,
	}
	value, err := p.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) {
			return "", ErrCanceled
		}
		return "", fmt.Errorf("read input for %s: %w", path, err)
	}
	return strings.TrimSpace(value), nil
}

// Select asks the user to pick one of options and returns its index. The
// cursor starts on the option matching def when there is one.
func (t *Terminal) Select(path string, options []string, def string) (int, error) {
	cursor := 0
	for i, option := range options {
		if option == def {
			cursor = i
			break
		}
	}

	s := promptui.Select{
		Label:     path,
		Items:     options,
		CursorPos: cursor,
		Size:      len(options),
	}
	index, _, err := s.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) {
			return 0, ErrCanceled
		}
		return 0, fmt.Errorf("read choice for %s: %w", path, err)
	}
	return index, nil
}
