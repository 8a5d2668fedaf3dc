// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backup

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/codec"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Format versions written by Export and accepted by Import.
const (
	BlobVersion    = 1
	PayloadVersion = "1.0"
)

// Upper bounds on derivation parameters read from a backup file. A crafted
// file must not be able to force unbounded work on import.
const (
	MaxPBKDF2Iterations = 10_000_000
	MaxArgon2Time       = 16
	MaxArgon2Memory     = 1 << 20 // 1 GiB in KiB
	MaxArgon2Threads    = 64
)

// Protocol exports and imports sealed record lists.
type Protocol struct {
	params crypto.KDFParams
	cipher crypto.FieldCipher
	codec  *codec.RecordCodec
	random crypto.RandomSource
	now    func() time.Time
}

// NewProtocol returns a Protocol that derives export keys with params and
// seals with fieldCipher. random supplies export salts.
func NewProtocol(params crypto.KDFParams, fieldCipher crypto.FieldCipher, random crypto.RandomSource) (*Protocol, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Protocol{
		params: params,
		cipher: fieldCipher,
		codec:  codec.NewRecordCodec(fieldCipher),
		random: random,
		now:    time.Now,
	}, nil
}

// Export seals records into a blob under a key derived from exportSecret
// and a fresh salt. exportSecret is neither retained nor modified.
func (p *Protocol) Export(records []models.DecryptedRecord, exportSecret []byte) (models.BackupBlob, error) {
	if len(exportSecret) == 0 {
		return models.BackupBlob{}, crypto.ErrEmptySecret
	}
	if records == nil {
		records = []models.DecryptedRecord{}
	}

	salt, err := crypto.NewSalt(p.random)
	if err != nil {
		return models.BackupBlob{}, err
	}

	key, err := p.deriveKey(p.params, exportSecret, salt)
	if err != nil {
		return models.BackupBlob{}, err
	}
	defer key.Destroy()

	payload, err := json.Marshal(models.BackupPayload{
		Version:  PayloadVersion,
		Exported: p.now().UTC().Truncate(time.Second),
		Items:    records,
	})
	if err != nil {
		return models.BackupBlob{}, fmt.Errorf("encode backup payload: %w", err)
	}
	defer crypto.Wipe(payload)

	env, err := p.codec.SealField(string(payload), key)
	if err != nil {
		return models.BackupBlob{}, fmt.Errorf("seal backup payload: %w", err)
	}

	return models.BackupBlob{
		Version: BlobVersion,
		KDF: models.BackupKDF{
			Algorithm:  p.params.Algorithm,
			Iterations: p.params.Iterations,
			Memory:     p.params.Memory,
			Threads:    p.params.Threads,
		},
		Salt:      base64.StdEncoding.EncodeToString(salt),
		Encrypted: env.Encrypted,
		IV:        env.IV,
	}, nil
}

// Import opens blob with exportSecret and returns the records it carries.
// Structural problems yield [ErrMalformedBackup]; a wrong password or an
// altered ciphertext yields [ErrImportAuthentication].
func (p *Protocol) Import(blob models.BackupBlob, exportSecret []byte) ([]models.DecryptedRecord, error) {
	if len(exportSecret) == 0 {
		return nil, crypto.ErrEmptySecret
	}

	params, salt, env, err := parseBlob(blob)
	if err != nil {
		return nil, err
	}

	key, err := p.deriveKey(params, exportSecret, salt)
	if err != nil {
		return nil, err
	}
	defer key.Destroy()

	plaintext, err := p.cipher.Open(env.Ciphertext, env.IV, key)
	if err != nil {
		if errors.Is(err, crypto.ErrAuthentication) {
			return nil, ErrImportAuthentication
		}
		return nil, fmt.Errorf("open backup payload: %w", err)
	}

	return parsePayload([]byte(plaintext))
}

func (p *Protocol) deriveKey(params crypto.KDFParams, secret, salt []byte) (*crypto.Key, error) {
	deriver, err := crypto.NewKeyDeriver(params)
	if err != nil {
		return nil, err
	}
	key, err := deriver.Derive(secret, salt)
	if err != nil {
		return nil, fmt.Errorf("derive export key: %w", err)
	}
	return key, nil
}

func parseBlob(blob models.BackupBlob) (crypto.KDFParams, []byte, models.FieldEnvelope, error) {
	var none models.FieldEnvelope

	if blob.Version != BlobVersion {
		return crypto.KDFParams{}, nil, none, fmt.Errorf("%w: unsupported version %d", ErrMalformedBackup, blob.Version)
	}

	params := crypto.KDFParams{
		Algorithm:  blob.KDF.Algorithm,
		Iterations: blob.KDF.Iterations,
		Memory:     blob.KDF.Memory,
		Threads:    blob.KDF.Threads,
	}
	if err := checkImportParams(params); err != nil {
		return crypto.KDFParams{}, nil, none, err
	}

	salt, err := base64.StdEncoding.DecodeString(blob.Salt)
	if err != nil || len(salt) != crypto.SaltSize {
		return crypto.KDFParams{}, nil, none, fmt.Errorf("%w: invalid salt", ErrMalformedBackup)
	}

	env, err := codec.DecodeEnvelope(models.EncodedEnvelope{Encrypted: blob.Encrypted, IV: blob.IV})
	if err != nil {
		return crypto.KDFParams{}, nil, none, fmt.Errorf("%w: %w", ErrMalformedBackup, err)
	}
	if len(env.IV) != crypto.IVSize {
		return crypto.KDFParams{}, nil, none, fmt.Errorf("%w: invalid iv length %d", ErrMalformedBackup, len(env.IV))
	}

	return params, salt, env, nil
}

func checkImportParams(params crypto.KDFParams) error {
	if err := params.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedBackup, err)
	}

	switch params.Algorithm {
	case crypto.KDFPBKDF2SHA256:
		if params.Iterations > MaxPBKDF2Iterations {
			return fmt.Errorf("%w: pbkdf2 iterations %d exceed limit", ErrMalformedBackup, params.Iterations)
		}
	case crypto.KDFArgon2id:
		if params.Iterations > MaxArgon2Time || params.Memory > MaxArgon2Memory || params.Threads > MaxArgon2Threads {
			return fmt.Errorf("%w: argon2id parameters exceed limits", ErrMalformedBackup)
		}
	}
	return nil
}

func parsePayload(plaintext []byte) ([]models.DecryptedRecord, error) {
	defer crypto.Wipe(plaintext)

	var payload models.BackupPayload
	if err := decodeStrict(plaintext, &payload); err != nil {
		return nil, fmt.Errorf("%w: payload: %w", ErrMalformedBackup, err)
	}
	if payload.Version != PayloadVersion {
		return nil, fmt.Errorf("%w: unsupported payload version %q", ErrMalformedBackup, payload.Version)
	}
	if payload.Items == nil {
		return nil, fmt.Errorf("%w: payload has no items", ErrMalformedBackup)
	}
	for i, item := range payload.Items {
		if item.Title == "" {
			return nil, fmt.Errorf("%w: item %d has no title", ErrMalformedBackup, i)
		}
	}

	return payload.Items, nil
}
