// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
)

// RecordCodec seals [models.DecryptedRecord] values into
// [models.EncryptedRecord] values and back, one field at a time.
type RecordCodec struct {
	cipher crypto.FieldCipher
}

// NewRecordCodec returns a [RecordCodec] that seals every field with c.
func NewRecordCodec(c crypto.FieldCipher) *RecordCodec {
	return &RecordCodec{cipher: c}
}

// SealField seals one plaintext value and returns its encoded envelope.
func (c *RecordCodec) SealField(plaintext string, key *crypto.Key) (models.EncodedEnvelope, error) {
	ciphertext, iv, err := c.cipher.Seal(plaintext, key)
	if err != nil {
		return models.EncodedEnvelope{}, err
	}
	return EncodeEnvelope(models.FieldEnvelope{Ciphertext: ciphertext, IV: iv}), nil
}

// OpenField decodes and opens one encoded envelope.
func (c *RecordCodec) OpenField(enc models.EncodedEnvelope, key *crypto.Key) (string, error) {
	env, err := DecodeEnvelope(enc)
	if err != nil {
		return "", err
	}
	return c.cipher.Open(env.Ciphertext, env.IV, key)
}

// Seal encrypts every slot of rec under key. Empty optional fields are still
// sealed so that each slot of the result is an independently valid envelope.
// The record's id and timestamps are carried over as-is; OwnerID is left for
// the caller. A record without a title is rejected with ErrMissingTitle.
func (c *RecordCodec) Seal(rec models.DecryptedRecord, key *crypto.Key) (models.EncryptedRecord, error) {
	if rec.Title == "" {
		return models.EncryptedRecord{}, ErrMissingTitle
	}

	out := models.EncryptedRecord{
		ID:        rec.ID,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
	for _, field := range models.RecordFields() {
		env, err := c.SealField(rec.Field(field), key)
		if err != nil {
			return models.EncryptedRecord{}, &FieldError{Field: field, Err: err}
		}
		out.SetEnvelope(field, env)
	}

	return out, nil
}

// Open decrypts every slot of rec under key. The first slot that fails is
// reported as a [*FieldError]; no partially decrypted record is returned.
func (c *RecordCodec) Open(rec models.EncryptedRecord, key *crypto.Key) (models.DecryptedRecord, error) {
	out := models.DecryptedRecord{
		ID:        rec.ID,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
	for _, field := range models.RecordFields() {
		enc, _ := rec.Envelope(field)
		value, err := c.OpenField(enc, key)
		if err != nil {
			return models.DecryptedRecord{}, &FieldError{Field: field, Err: err}
		}
		out.SetField(field, value)
	}

	return out, nil
}

// ValidateEncryptedRecord checks that rec can be handed to storage: the title
// envelope must be present and every slot must be a well-formed envelope.
func ValidateEncryptedRecord(rec models.EncryptedRecord) error {
	title, _ := rec.Envelope(models.FieldTitle)
	if title.IsEmpty() {
		return ErrMissingTitle
	}

	for _, field := range models.RecordFields() {
		enc, _ := rec.Envelope(field)
		if _, err := DecodeEnvelope(enc); err != nil {
			return &FieldError{Field: field, Err: err}
		}
	}

	if rec.OwnerID == "" {
		return ErrMissingOwner
	}
	return nil
}
