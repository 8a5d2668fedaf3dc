// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/models"
)

type fakeSession struct {
	err      error
	unlocked []string
	locks    int
}

func (s *fakeSession) Unlock(_ context.Context, secret []byte) error {
	defer crypto.Wipe(secret)
	s.unlocked = append(s.unlocked, string(secret))
	return s.err
}

func (s *fakeSession) Lock() {
	s.locks++
}

// scriptedPrompter answers prompts from a fixed list.
type scriptedPrompter struct {
	answers []string
	labels  []string
}

func (p *scriptedPrompter) PromptSecret(_ context.Context, label string) ([]byte, error) {
	p.labels = append(p.labels, label)
	if len(p.answers) == 0 {
		return nil, ErrNoSecretInput
	}
	next := p.answers[0]
	p.answers = p.answers[1:]
	return []byte(next), nil
}

type fakeConfirmer struct {
	answer bool
	asked  []string
}

func (c *fakeConfirmer) Confirm(_ context.Context, message string) (bool, error) {
	c.asked = append(c.asked, message)
	return c.answer, nil
}

type testApp struct {
	app      *App
	vault    *mock.MockVaultService
	session  *fakeSession
	prompter *scriptedPrompter
	confirm  *fakeConfirmer
	out      *bytes.Buffer
	copied   []string
}

// newTestApp builds an App on a terminal when interactive is true, and on a
// pipe otherwise. answers feed the secret prompts in order.
func newTestApp(t *testing.T, interactive bool, answers ...string) *testApp {
	t.Helper()
	ctrl := gomock.NewController(t)

	ta := &testApp{
		vault:    mock.NewMockVaultService(ctrl),
		session:  &fakeSession{},
		prompter: &scriptedPrompter{answers: answers},
		confirm:  &fakeConfirmer{},
		out:      &bytes.Buffer{},
	}
	ta.app = &App{
		session:  ta.session,
		vault:    ta.vault,
		prompter: ta.prompter,
		out:      ta.out,
		random:   crypto.Random,
		copy: func(s string) error {
			ta.copied = append(ta.copied, s)
			return nil
		},
		build:  models.NewAppBuildInfo("v0.3.0", "2026-10-01", "c0ffee"),
		logger: logger.Nop(),
	}
	if interactive {
		ta.app.confirm = ta.confirm
	}
	return ta
}

func (ta *testApp) run(args ...string) error {
	return ta.app.Run(context.Background(), args)
}
