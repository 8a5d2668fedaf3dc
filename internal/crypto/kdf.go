// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

// Supported key-derivation algorithms.
const (
	KDFPBKDF2SHA256 = "pbkdf2-sha256"
	KDFArgon2id     = "argon2id"
)

// DefaultPBKDF2Iterations is the fixed work factor of the default KDF. It
// must match between encryption and decryption, so changing it breaks every
// record sealed under the old value.
const DefaultPBKDF2Iterations = 100_000

// KDFParams describes a password-based key derivation. Iterations is the
// PBKDF2 iteration count or the Argon2id time cost; Memory (KiB) and Threads
// apply to Argon2id only.
type KDFParams struct {
	Algorithm  string
	Iterations uint32
	Memory     uint32
	Threads    uint8
}

// DefaultKDFParams returns PBKDF2-HMAC-SHA256 with 100,000 iterations.
func DefaultKDFParams() KDFParams {
	return KDFParams{
		Algorithm:  KDFPBKDF2SHA256,
		Iterations: DefaultPBKDF2Iterations,
	}
}

// Argon2idKDFParams returns the Argon2id parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
func Argon2idKDFParams() KDFParams {
	return KDFParams{
		Algorithm:  KDFArgon2id,
		Iterations: 1,
		Memory:     64 * 1024, // 64 MiB
		Threads:    4,
	}
}

// Validate reports ErrDerivation for an unknown algorithm or a zero work factor.
func (p KDFParams) Validate() error {
	switch p.Algorithm {
	case KDFPBKDF2SHA256:
		if p.Iterations == 0 {
			return fmt.Errorf("%w: pbkdf2 iterations must be positive", ErrDerivation)
		}
	case KDFArgon2id:
		if p.Iterations == 0 || p.Memory == 0 || p.Threads == 0 {
			return fmt.Errorf("%w: argon2id time, memory and threads must be positive", ErrDerivation)
		}
	default:
		return fmt.Errorf("%w: unsupported algorithm %q", ErrDerivation, p.Algorithm)
	}
	return nil
}

// Canonical returns p with the fields its algorithm ignores zeroed, so two
// parameter sets that derive the same key compare equal.
func (p KDFParams) Canonical() KDFParams {
	if p.Algorithm == KDFPBKDF2SHA256 {
		p.Memory, p.Threads = 0, 0
	}
	return p
}

// KeyDeriver turns a secret and a salt into a symmetric [Key].
// Implementations are pure: the same inputs always give the same key.
type KeyDeriver interface {
	// Derive returns a 256-bit key for secret and salt. secret must be
	// non-empty (any bytes are valid) and salt must be SaltSize bytes.
	// Derive neither retains nor modifies secret.
	Derive(secret, salt []byte) (*Key, error)

	// Params returns the parameters the deriver was built with.
	Params() KDFParams
}

type keyDeriver struct {
	params KDFParams
}

// NewKeyDeriver validates params and returns a [KeyDeriver] for them.
func NewKeyDeriver(params KDFParams) (KeyDeriver, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &keyDeriver{params: params}, nil
}

// Derive implements [KeyDeriver].
func (d *keyDeriver) Derive(secret, salt []byte) (*Key, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSalt, len(salt), SaltSize)
	}

	var raw []byte
	switch d.params.Algorithm {
	case KDFPBKDF2SHA256:
		raw = pbkdf2.Key(secret, salt, int(d.params.Iterations), KeySize, sha256.New)
	case KDFArgon2id:
		raw = argon2.IDKey(secret, salt, d.params.Iterations, d.params.Memory, d.params.Threads, KeySize)
	default:
		return nil, fmt.Errorf("%w: unsupported algorithm %q", ErrDerivation, d.params.Algorithm)
	}
	defer Wipe(raw)

	key, err := NewKey(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDerivation, err)
	}
	return key, nil
}

// Params implements [KeyDeriver].
func (d *keyDeriver) Params() KDFParams {
	return d.params
}
