// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const maxSecretLength = 1024

// SecretModel is the Bubble Tea model of a masked one-line secret prompt.
// The typed value never appears in View; every rune is echoed as '*'.
type SecretModel struct {
	label    string
	input    textinput.Model
	errMsg   string
	secret   []byte
	quit     bool
	finished bool
}

// NewSecretModel returns a focused prompt titled label.
func NewSecretModel(label string) SecretModel {
	in := textinput.New()
	in.Placeholder = "secret"
	in.CharLimit = maxSecretLength
	in.Width = 40
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	in.Focus()

	return SecretModel{label: label, input: in}
}

// Init implements [tea.Model].
func (m SecretModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. enter submits a non-empty value, esc and
// ctrl+c abandon the prompt. Other keys go to the input.
func (m SecretModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			m.quit = true
			m.input.Reset()
			return m, tea.Quit
		case tea.KeyEnter:
			if m.input.Value() == "" {
				m.errMsg = "secret must not be empty"
				return m, nil
			}
			m.secret = []byte(m.input.Value())
			m.input.Reset()
			m.finished = true
			return m, tea.Quit
		}
	}

	m.errMsg = ""
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m SecretModel) View() string {
	if m.finished || m.quit {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.input.View())
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}
	return renderPage(m.label, b.String(), "enter: confirm │ esc: cancel")
}

// Secret returns the submitted value. It is nil unless the prompt finished
// with enter. The caller owns the slice and should wipe it after use.
func (m SecretModel) Secret() []byte {
	return m.secret
}

// Quit reports whether the user abandoned the prompt.
func (m SecretModel) Quit() bool {
	return m.quit
}
