// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

var (
	// ErrUserQuit is returned when the user leaves a prompt with esc or ctrl+c.
	ErrUserQuit = errors.New("user quit")

	ErrUnexpectedModel = errors.New("prompt finished with an unexpected model")
)
