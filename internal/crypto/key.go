// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/subtle"
	"sync"

	"github.com/awnumar/memguard"
)

// KeySize is the length of every symmetric key in the vault (256 bits).
const KeySize = 32

// Key holds 256-bit symmetric key material. It never leaves the client and is
// not serializable. Destroy wipes the bytes; a destroyed key refuses to be used.
type Key struct {
	mu        sync.RWMutex
	b         []byte
	destroyed bool
}

// NewKey copies b into a new [Key]. b must be exactly KeySize bytes; the
// caller stays responsible for wiping its own copy.
func NewKey(b []byte) (*Key, error) {
	if len(b) != KeySize {
		return nil, ErrInvalidKey
	}
	k := &Key{b: make([]byte, KeySize)}
	copy(k.b, b)
	return k, nil
}

// use calls fn with the raw key bytes while holding a read lock, so the key
// cannot be wiped in the middle of a primitive.
func (k *Key) use(fn func(b []byte) error) error {
	if k == nil {
		return ErrKeyDestroyed
	}
	k.mu.RLock()
	defer k.mu.RUnlock()
	if k.destroyed {
		return ErrKeyDestroyed
	}
	return fn(k.b)
}

// Equal reports whether k and other hold the same key material. Destroyed
// keys are never equal to anything.
func (k *Key) Equal(other *Key) bool {
	if k == other {
		return !k.Destroyed()
	}
	equal := false
	_ = k.use(func(a []byte) error {
		return other.use(func(b []byte) error {
			equal = subtle.ConstantTimeCompare(a, b) == 1
			return nil
		})
	})
	return equal
}

// Destroy wipes the key material. It is safe to call more than once.
func (k *Key) Destroy() {
	if k == nil {
		return
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.destroyed {
		return
	}
	memguard.WipeBytes(k.b)
	k.b = nil
	k.destroyed = true
}

// Destroyed reports whether Destroy has been called.
func (k *Key) Destroyed() bool {
	if k == nil {
		return true
	}
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.destroyed
}

// Wipe overwrites b with zeros. Used for secrets and intermediate buffers.
func Wipe(b []byte) {
	memguard.WipeBytes(b)
}
