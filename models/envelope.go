// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FieldEnvelope is the raw result of sealing one plaintext field: the AEAD
// ciphertext (with its authentication tag appended) and the IV it was sealed
// under. A ciphertext without its IV cannot be opened.
type FieldEnvelope struct {
	// Ciphertext is the sealed field value including the authentication tag.
	Ciphertext []byte

	// IV is the 96-bit nonce drawn for this single seal operation.
	IV []byte
}

// EncodedEnvelope is the text-safe (standard base64) form of a
// [FieldEnvelope], as exchanged with storage and written into backup files.
type EncodedEnvelope struct {
	// Encrypted is base64(Ciphertext).
	Encrypted string `json:"encrypted"`

	// IV is base64(IV).
	IV string `json:"iv"`
}

// IsEmpty reports whether neither half of the envelope is set.
func (e EncodedEnvelope) IsEmpty() bool {
	return e.Encrypted == "" && e.IV == ""
}
