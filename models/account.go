// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AccountSalt is the durable, non-secret per-account salt together with the
// settings every key of the account is derived and used with. It is created
// at most once per account and must never be replaced while records sealed
// under keys derived from it still exist.
type AccountSalt struct {
	// AccountID identifies the owner of the salt.
	AccountID string `json:"account_id"`

	// Salt is the raw 16-byte salt value.
	Salt []byte `json:"salt"`

	// KDFAlgorithm, KDFIterations, KDFMemory and KDFThreads are the
	// key-derivation parameters fixed when the salt was created.
	KDFAlgorithm  string `json:"kdf_algorithm"`
	KDFIterations uint32 `json:"kdf_iterations"`
	KDFMemory     uint32 `json:"kdf_memory,omitempty"`
	KDFThreads    uint8  `json:"kdf_threads,omitempty"`

	// CipherSuite is the AEAD suite every record of the account is sealed with.
	CipherSuite string `json:"cipher_suite"`

	// Verifier is a known constant sealed under the account key. Opening it
	// proves a secret derives the same key.
	Verifier EncodedEnvelope `json:"verifier"`

	// CreatedAt is the timestamp when the salt was first persisted.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table associated with
// AccountSalt.
func (AccountSalt) TableName() string {
	return "account_salts"
}
