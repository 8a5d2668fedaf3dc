// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

// State is a lifecycle stage of a [Manager].
type State int

const (
	// StateUninitialized: no key, unlock allowed.
	StateUninitialized State = iota
	// StateDeriving: a key derivation is in flight.
	StateDeriving
	// StateReady: exactly one key is active.
	StateReady
	// StateDestroyed: the key was wiped; terminal.
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateDeriving:
		return "deriving"
	case StateReady:
		return "ready"
	case StateDestroyed:
		return "destroyed"
	}
	return "unknown"
}
