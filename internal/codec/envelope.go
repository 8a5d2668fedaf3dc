// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"encoding/base64"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/models"
)

// EncodeEnvelope returns the standard-base64 form of env.
func EncodeEnvelope(env models.FieldEnvelope) models.EncodedEnvelope {
	return models.EncodedEnvelope{
		Encrypted: base64.StdEncoding.EncodeToString(env.Ciphertext),
		IV:        base64.StdEncoding.EncodeToString(env.IV),
	}
}

// DecodeEnvelope reverses [EncodeEnvelope]. Both halves must be present and
// valid standard base64, otherwise ErrMalformedEnvelope is returned.
func DecodeEnvelope(enc models.EncodedEnvelope) (models.FieldEnvelope, error) {
	if enc.Encrypted == "" || enc.IV == "" {
		return models.FieldEnvelope{}, fmt.Errorf("%w: missing ciphertext or iv", ErrMalformedEnvelope)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(enc.Encrypted)
	if err != nil {
		return models.FieldEnvelope{}, fmt.Errorf("%w: decode ciphertext: %v", ErrMalformedEnvelope, err)
	}
	iv, err := base64.StdEncoding.DecodeString(enc.IV)
	if err != nil {
		return models.FieldEnvelope{}, fmt.Errorf("%w: decode iv: %v", ErrMalformedEnvelope, err)
	}

	return models.FieldEnvelope{Ciphertext: ciphertext, IV: iv}, nil
}
