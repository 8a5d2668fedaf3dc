// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs prompts on a terminal.
type TUI struct {
	in  io.Reader
	out io.Writer
}

// New returns a TUI reading keys from in and drawing to out.
func New(in io.Reader, out io.Writer) *TUI {
	return &TUI{in: in, out: out}
}

// PromptSecret shows a masked prompt and returns the typed secret.
// Returns ErrUserQuit if the user cancels.
func (t *TUI) PromptSecret(ctx context.Context, label string) ([]byte, error) {
	final, err := t.run(ctx, NewSecretModel(label))
	if err != nil {
		return nil, err
	}

	result, ok := final.(SecretModel)
	if !ok {
		return nil, ErrUnexpectedModel
	}
	if result.Quit() {
		return nil, ErrUserQuit
	}
	return result.Secret(), nil
}

// Confirm asks message as a yes/no question.
func (t *TUI) Confirm(ctx context.Context, message string) (bool, error) {
	final, err := t.run(ctx, NewConfirmModel(message))
	if err != nil {
		return false, err
	}

	result, ok := final.(ConfirmModel)
	if !ok {
		return false, ErrUnexpectedModel
	}
	return result.Yes(), nil
}

func (t *TUI) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	return tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	).Run()
}
