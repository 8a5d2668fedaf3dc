// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/models"
)

func typeRunes(t *testing.T, m tea.Model, s string) tea.Model {
	t.Helper()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func TestSecretModel_Submit(t *testing.T) {
	var m tea.Model = NewSecretModel("MASTER PASSWORD")
	m = typeRunes(t, m, "hunter2")

	view := m.View()
	assert.Contains(t, view, "MASTER PASSWORD")
	assert.Contains(t, view, "*")
	assert.NotContains(t, view, "hunter2")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	result := m.(SecretModel)
	assert.False(t, result.Quit())
	assert.Equal(t, []byte("hunter2"), result.Secret())
	assert.Empty(t, result.input.Value(), "input is cleared once submitted")
	assert.Empty(t, result.View())
}

func TestSecretModel_EmptySubmitIsRejected(t *testing.T) {
	var m tea.Model = NewSecretModel("MASTER PASSWORD")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "secret must not be empty")
	assert.Nil(t, m.(SecretModel).Secret())

	m = typeRunes(t, m, "x")
	assert.NotContains(t, m.View(), "secret must not be empty")
}

func TestSecretModel_Cancel(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		var m tea.Model = NewSecretModel("EXPORT PASSWORD")
		m = typeRunes(t, m, "typed")

		m, cmd := m.Update(tea.KeyMsg{Type: key})
		require.NotNil(t, cmd)

		result := m.(SecretModel)
		assert.True(t, result.Quit())
		assert.Nil(t, result.Secret())
		assert.Empty(t, result.input.Value())
	}
}

func TestConfirmModel(t *testing.T) {
	tests := []struct {
		key      string
		answered bool
		yes      bool
	}{
		{key: "y", answered: true, yes: true},
		{key: "Y", answered: true, yes: true},
		{key: "n", answered: true},
		{key: "enter", answered: true},
		{key: "esc", answered: true},
		{key: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := NewConfirmModel(`Delete "mail"?`)
			assert.Contains(t, m.View(), `Delete "mail"?`)

			var msg tea.KeyMsg
			switch tt.key {
			case "enter":
				msg = tea.KeyMsg{Type: tea.KeyEnter}
			case "esc":
				msg = tea.KeyMsg{Type: tea.KeyEsc}
			default:
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tt.key)}
			}

			next, cmd := m.Update(msg)
			result := next.(ConfirmModel)
			assert.Equal(t, tt.answered, result.answered)
			assert.Equal(t, tt.yes, result.Yes())
			assert.Equal(t, tt.answered, cmd != nil)
		})
	}
}

func TestRenderBuildInfo(t *testing.T) {
	view := RenderBuildInfo(models.NewAppBuildInfo("v1.2.0", "", " abc123 "))

	assert.Contains(t, view, "Version: v1.2.0")
	assert.Contains(t, view, "Date: N/A")
	assert.Contains(t, view, "Commit: abc123")
}
