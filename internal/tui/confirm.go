// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import tea "github.com/charmbracelet/bubbletea"

// ConfirmModel asks a yes/no question. Anything but y counts as no.
type ConfirmModel struct {
	message  string
	answered bool
	yes      bool
}

func NewConfirmModel(message string) ConfirmModel {
	return ConfirmModel{message: message}
}

func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "y", "Y":
		m.yes = true
	case "n", "N", "esc", "ctrl+c", "enter":
		m.yes = false
	default:
		return m, nil
	}
	m.answered = true
	return m, tea.Quit
}

func (m ConfirmModel) View() string {
	if m.answered {
		return ""
	}
	return overlayBoxStyle.Render(m.message + "\n\ny yes    n no")
}

// Yes reports whether the question was answered with y.
func (m ConfirmModel) Yes() bool {
	return m.yes
}
