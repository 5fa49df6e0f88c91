// Package prompt asks interactive questions for the add flows.
package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// ErrCancelled is returned when the user aborts a prompt.
var ErrCancelled = errors.New("cancelled")

// Option is one choice of a Select.
type Option struct {
	Label       string
	Value       string
	Description string
}

// Prompter asks the user for input.
type Prompter interface {
	Select(title string, options []Option) (string, error)
	Input(title string, validate func(string) error) (string, error)
}

// Huh implements Prompter with charmbracelet/huh forms. Each question runs
// as its own form.
type Huh struct {
	Accessible bool
}

// Select shows a single-choice list and returns the chosen value.
func (h Huh) Select(title string, options []Option) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("%s: no options", title)
	}

	opts := make([]huh.Option[string], len(options))
	for i, opt := range options {
		key := opt.Label
		if opt.Description != "" {
			key = opt.Label + " - " + opt.Description
		}
		opts[i] = huh.NewOption(key, opt.Value)
	}

	selected := options[0].Value
	field := huh.NewSelect[string]().
		Title(title).
		Options(opts...).
		Value(&selected)

	if err := h.run(field); err != nil {
		return "", err
	}
	return selected, nil
}

// Input reads a line of text. validate may be nil.
func (h Huh) Input(title string, validate func(string) error) (string, error) {
	var value string
	field := huh.NewInput().
		Title(title).
		Value(&value)
	if validate != nil {
		field = field.Validate(func(v string) error {
			return validate(strings.TrimSpace(v))
		})
	}

	if err := h.run(field); err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

func (h Huh) run(field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).WithAccessible(h.Accessible)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCancelled
		}
		return fmt.Errorf("prompt error: %w", err)
	}
	return nil
}
