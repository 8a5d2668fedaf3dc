// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backup

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Marshal renders blob as indented JSON.
func Marshal(blob models.BackupBlob) ([]byte, error) {
	data, err := json.MarshalIndent(blob, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode backup: %w", err)
	}
	return append(data, '\n'), nil
}

// Unmarshal parses a backup file. Unknown fields, trailing data and missing
// members are reported as [ErrMalformedBackup].
func Unmarshal(data []byte) (models.BackupBlob, error) {
	var blob models.BackupBlob
	if err := decodeStrict(data, &blob); err != nil {
		return models.BackupBlob{}, fmt.Errorf("%w: %w", ErrMalformedBackup, err)
	}

	if blob.Version == 0 || blob.KDF.Algorithm == "" || blob.Salt == "" || blob.Encrypted == "" || blob.IV == "" {
		return models.BackupBlob{}, fmt.Errorf("%w: missing required members", ErrMalformedBackup)
	}
	return blob, nil
}

func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("unexpected data after JSON object")
	}
	return nil
}
