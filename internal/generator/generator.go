// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package generator produces random candidate secrets from selectable
// character sets.
package generator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
)

// Character sets.
const (
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits    = "0123456789"
	Symbols   = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// Ambiguous characters are easy to confuse when read aloud or typed.
	Ambiguous = "il1Lo0O"
)

// Length bounds and default.
const (
	MinLength     = 1
	MaxLength     = 1024
	DefaultLength = 20
)

var (
	ErrEmptyCharset  = errors.New("at least one character type must be selected")
	ErrInvalidLength = errors.New("invalid length")
)

// Options selects the length and alphabet of a generated secret.
type Options struct {
	Length           int
	Lowercase        bool
	Uppercase        bool
	Digits           bool
	Symbols          bool
	ExcludeAmbiguous bool
}

// DefaultOptions returns a 20-character secret over all four sets.
func DefaultOptions() Options {
	return Options{
		Length:    DefaultLength,
		Lowercase: true,
		Uppercase: true,
		Digits:    true,
		Symbols:   true,
	}
}

// Charset returns the alphabet selected by opts.
func (o Options) Charset() string {
	var b strings.Builder
	if o.Lowercase {
		b.WriteString(Lowercase)
	}
	if o.Uppercase {
		b.WriteString(Uppercase)
	}
	if o.Digits {
		b.WriteString(Digits)
	}
	if o.Symbols {
		b.WriteString(Symbols)
	}

	charset := b.String()
	if o.ExcludeAmbiguous {
		charset = strings.Map(func(r rune) rune {
			if strings.ContainsRune(Ambiguous, r) {
				return -1
			}
			return r
		}, charset)
	}
	return charset
}

// Generate draws opts.Length characters uniformly from the selected
// alphabet using r.
func Generate(r crypto.RandomSource, opts Options) (string, error) {
	if opts.Length < MinLength || opts.Length > MaxLength {
		return "", fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidLength, opts.Length, MinLength, MaxLength)
	}

	charset := opts.Charset()
	if charset == "" {
		return "", ErrEmptyCharset
	}

	n := len(charset)
	// bytes at or above limit would bias the low indexes
	limit := 256 - 256%n

	out := make([]byte, 0, opts.Length)
	for len(out) < opts.Length {
		buf, err := crypto.RandomBytes(r, opts.Length-len(out))
		if err != nil {
			return "", err
		}
		for _, b := range buf {
			if int(b) < limit {
				out = append(out, charset[int(b)%n])
			}
		}
		crypto.Wipe(buf)
	}

	return string(out), nil
}
