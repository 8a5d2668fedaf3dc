// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/chacha20poly1305"
)

// Supported AEAD suites. Both use a 256-bit key and a 96-bit IV.
const (
	SuiteAESGCM           = "aes-256-gcm"
	SuiteChaCha20Poly1305 = "chacha20-poly1305"
)

// IVSize is the IV (nonce) length of every supported suite.
const IVSize = 12

//go:generate mockgen -source=cipher.go -destination=../mock/field_cipher_mock.go -package=mock

// FieldCipher seals and opens a single record field. Implementations are
// stateless and safe for concurrent use with the same key.
type FieldCipher interface {
	// Seal encrypts plaintext under key with a freshly drawn random IV.
	// Empty plaintext is valid and still yields a non-empty ciphertext (the tag).
	Seal(plaintext string, key *Key) (ciphertext, iv []byte, err error)

	// Open verifies and decrypts ciphertext. Any verification failure is
	// reported as ErrAuthentication and no plaintext is returned.
	Open(ciphertext, iv []byte, key *Key) (string, error)

	// Suite names the AEAD construction, e.g. [SuiteAESGCM].
	Suite() string
}

type aeadCipher struct {
	suite  string
	random RandomSource
}

// NewFieldCipher returns a [FieldCipher] for suite drawing IVs from random.
func NewFieldCipher(suite string, random RandomSource) (FieldCipher, error) {
	switch suite {
	case SuiteAESGCM, SuiteChaCha20Poly1305:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSuite, suite)
	}
	if random == nil {
		random = Random
	}
	return &aeadCipher{suite: suite, random: random}, nil
}

// Suite implements [FieldCipher].
func (c *aeadCipher) Suite() string {
	return c.suite
}

// newAEAD builds a fresh AEAD context. Contexts are never reused between
// calls, so an abandoned operation cannot leave shared state behind.
func (c *aeadCipher) newAEAD(key []byte) (cipher.AEAD, error) {
	switch c.suite {
	case SuiteChaCha20Poly1305:
		aead, err := chacha20poly1305.New(key)
		if err != nil {
			return nil, fmt.Errorf("create chacha20-poly1305: %w", err)
		}
		return aead, nil
	default:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, fmt.Errorf("create cipher: %w", err)
		}
		gcm, err := cipher.NewGCM(block)
		if err != nil {
			return nil, fmt.Errorf("create gcm: %w", err)
		}
		return gcm, nil
	}
}

// Seal implements [FieldCipher].
func (c *aeadCipher) Seal(plaintext string, key *Key) ([]byte, []byte, error) {
	var ciphertext, iv []byte
	err := key.use(func(k []byte) error {
		aead, err := c.newAEAD(k)
		if err != nil {
			return err
		}

		iv, err = RandomBytes(c.random, aead.NonceSize())
		if err != nil {
			return fmt.Errorf("generate iv: %w", err)
		}

		ciphertext = aead.Seal(nil, iv, []byte(plaintext), nil)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return ciphertext, iv, nil
}

// Open implements [FieldCipher].
func (c *aeadCipher) Open(ciphertext, iv []byte, key *Key) (string, error) {
	var plaintext string
	err := key.use(func(k []byte) error {
		aead, err := c.newAEAD(k)
		if err != nil {
			return err
		}

		if len(iv) != aead.NonceSize() {
			return fmt.Errorf("%w: iv is %d bytes", ErrAuthentication, len(iv))
		}
		if len(ciphertext) < aead.Overhead() {
			return fmt.Errorf("%w: ciphertext too short", ErrAuthentication)
		}

		pt, err := aead.Open(nil, iv, ciphertext, nil)
		if err != nil {
			return ErrAuthentication
		}
		defer Wipe(pt)

		if !utf8.Valid(pt) {
			return fmt.Errorf("%w: plaintext is not utf-8", ErrAuthentication)
		}
		plaintext = string(pt)
		return nil
	})
	if err != nil {
		return "", err
	}
	return plaintext, nil
}
