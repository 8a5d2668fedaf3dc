// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrDerivation is returned when the key derivation primitive is
	// unavailable or misconfigured (unknown algorithm, zero work factor).
	// It is fatal to an unlock attempt: the vault stays locked.
	ErrDerivation = errors.New("key derivation failed")

	// ErrEmptySecret is returned when a derivation is attempted with an
	// empty secret.
	ErrEmptySecret = errors.New("secret is empty")

	// ErrInvalidSalt is returned when a salt is not exactly SaltSize bytes.
	ErrInvalidSalt = errors.New("invalid salt length")

	// ErrInvalidKey is returned when key material is not KeySize bytes.
	ErrInvalidKey = errors.New("invalid key length")

	// ErrKeyDestroyed is returned when a destroyed key is used.
	ErrKeyDestroyed = errors.New("key was destroyed")

	// ErrAuthentication is returned by Open when the authentication tag does
	// not verify: wrong key, wrong IV, or corrupted ciphertext. The field
	// cannot be decrypted and no partial plaintext is ever returned.
	ErrAuthentication = errors.New("field authentication failed")

	// ErrUnknownSuite is returned for an unsupported cipher suite name.
	ErrUnknownSuite = errors.New("unknown cipher suite")
)
