// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the client-side primitives of the zero-knowledge
// vault: the random byte source, the password-based key derivation unit and
// the per-field authenticated cipher.
//
// Nothing in this package knows about storage, sessions or records. It only
// turns a secret and a salt into a [Key] and seals/opens individual fields:
//
//	key, err := crypto.NewKeyDeriver(crypto.DefaultKDFParams()).Derive(secret, salt)
//	ct, iv, err := crypto.NewFieldCipher(crypto.SuiteAESGCM, crypto.Random).Seal("hunter2", key)
//	pt, err := cipher.Open(ct, iv, key)
package crypto
