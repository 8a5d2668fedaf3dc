// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// SaltSize is the length of an account or export salt (128 bits).
const SaltSize = 16

// RandomSource is a cryptographically secure random byte generator.
// It is used for salts, IVs and generated-secret sampling.
type RandomSource = io.Reader

// Random is the OS CSPRNG.
var Random RandomSource = rand.Reader

// RandomBytes reads exactly n bytes from r. A short read is an error.
func RandomBytes(r RandomSource, n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return b, nil
}

// NewSalt draws a fresh SaltSize-byte salt from r.
func NewSalt(r RandomSource) ([]byte, error) {
	salt, err := RandomBytes(r, SaltSize)
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}
