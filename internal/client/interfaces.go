// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command named by args and blocks until it is done.
	Run(ctx context.Context, args []string) error
}

// Session is the lifecycle of the derived key. *session.Manager satisfies it.
type Session interface {
	Unlock(ctx context.Context, secret []byte) error
	Lock()
}

// SecretPrompter reads one secret from the user. The caller owns the
// returned slice and wipes it.
type SecretPrompter interface {
	PromptSecret(ctx context.Context, label string) ([]byte, error)
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, message string) (bool, error)
}
