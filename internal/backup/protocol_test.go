// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backup

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
)

var (
	fastPBKDF2 = crypto.KDFParams{Algorithm: crypto.KDFPBKDF2SHA256, Iterations: 1000}
	fastArgon  = crypto.KDFParams{Algorithm: crypto.KDFArgon2id, Iterations: 1, Memory: 1024, Threads: 1}
	exportedAt = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
)

func newTestProtocol(t *testing.T, params crypto.KDFParams, suite string) *Protocol {
	t.Helper()

	c, err := crypto.NewFieldCipher(suite, crypto.Random)
	require.NoError(t, err)
	p, err := NewProtocol(params, c, crypto.Random)
	require.NoError(t, err)
	p.now = func() time.Time { return exportedAt }
	return p
}

func threeRecords() []models.DecryptedRecord {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return []models.DecryptedRecord{
		{
			ID: "0199a1b2-0000-7000-8000-000000000001", Title: "mail", Username: "alice@example.com",
			Password: "hunter2", URL: "https://mail.example.com", Notes: "2FA on phone",
			CreatedAt: created, UpdatedAt: created,
		},
		{
			ID: "0199a1b2-0000-7000-8000-000000000002", Title: "bank", Username: "alice",
			Password: "pässwörd ✓", URL: "", Notes: "line one\nline two",
			CreatedAt: created.Add(time.Hour), UpdatedAt: created.Add(2 * time.Hour),
		},
		{
			ID: "0199a1b2-0000-7000-8000-000000000003", Title: "title only",
			CreatedAt: created.Add(3 * time.Hour), UpdatedAt: created.Add(3 * time.Hour),
		},
	}
}

func TestProtocol_ExportImportScenario(t *testing.T) {
	p := newTestProtocol(t, fastPBKDF2, crypto.SuiteAESGCM)
	records := threeRecords()

	blob, err := p.Export(records, []byte("backup-pw"))
	require.NoError(t, err)

	_, err = p.Import(blob, []byte("wrong-pw"))
	require.ErrorIs(t, err, ErrImportAuthentication)

	got, err := p.Import(blob, []byte("backup-pw"))
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestProtocol_RoundTripThroughFile(t *testing.T) {
	for _, tc := range []struct {
		name   string
		params crypto.KDFParams
		suite  string
	}{
		{name: "pbkdf2 aes-gcm", params: fastPBKDF2, suite: crypto.SuiteAESGCM},
		{name: "argon2id chacha20", params: fastArgon, suite: crypto.SuiteChaCha20Poly1305},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestProtocol(t, tc.params, tc.suite)

			blob, err := p.Export(threeRecords(), []byte("backup-pw"))
			require.NoError(t, err)

			data, err := Marshal(blob)
			require.NoError(t, err)

			parsed, err := Unmarshal(data)
			require.NoError(t, err)
			assert.Equal(t, blob, parsed)

			got, err := p.Import(parsed, []byte("backup-pw"))
			require.NoError(t, err)
			assert.Equal(t, threeRecords(), got)
		})
	}
}

func TestProtocol_ExportShape(t *testing.T) {
	p := newTestProtocol(t, fastPBKDF2, crypto.SuiteAESGCM)

	blob, err := p.Export(nil, []byte("backup-pw"))
	require.NoError(t, err)

	assert.Equal(t, BlobVersion, blob.Version)
	assert.Equal(t, models.BackupKDF{Algorithm: crypto.KDFPBKDF2SHA256, Iterations: 1000}, blob.KDF)

	salt, err := base64.StdEncoding.DecodeString(blob.Salt)
	require.NoError(t, err)
	assert.Len(t, salt, crypto.SaltSize)

	iv, err := base64.StdEncoding.DecodeString(blob.IV)
	require.NoError(t, err)
	assert.Len(t, iv, crypto.IVSize)

	data, err := Marshal(blob)
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, member := range []string{"version", "kdf", "salt", "encrypted", "iv"} {
		assert.Contains(t, raw, member)
	}

	// an empty vault exports an empty item list
	got, err := p.Import(blob, []byte("backup-pw"))
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestProtocol_ExportUsesFreshSaltAndIV(t *testing.T) {
	p := newTestProtocol(t, fastPBKDF2, crypto.SuiteAESGCM)

	a, err := p.Export(threeRecords(), []byte("backup-pw"))
	require.NoError(t, err)
	b, err := p.Export(threeRecords(), []byte("backup-pw"))
	require.NoError(t, err)

	assert.NotEqual(t, a.Salt, b.Salt)
	assert.NotEqual(t, a.IV, b.IV)
	assert.NotEqual(t, a.Encrypted, b.Encrypted)
}

func TestProtocol_ExportDoesNotModifySecret(t *testing.T) {
	p := newTestProtocol(t, fastPBKDF2, crypto.SuiteAESGCM)
	secret := []byte("backup-pw")

	_, err := p.Export(threeRecords(), secret)
	require.NoError(t, err)
	assert.Equal(t, []byte("backup-pw"), secret)
}

func TestProtocol_EmptySecret(t *testing.T) {
	p := newTestProtocol(t, fastPBKDF2, crypto.SuiteAESGCM)

	_, err := p.Export(threeRecords(), nil)
	assert.ErrorIs(t, err, crypto.ErrEmptySecret)

	_, err = p.Import(models.BackupBlob{}, []byte{})
	assert.ErrorIs(t, err, crypto.ErrEmptySecret)
}

func TestProtocol_ExportRandomFailure(t *testing.T) {
	c, err := crypto.NewFieldCipher(crypto.SuiteAESGCM, crypto.Random)
	require.NoError(t, err)
	p, err := NewProtocol(fastPBKDF2, c, strings.NewReader(""))
	require.NoError(t, err)

	_, err = p.Export(threeRecords(), []byte("backup-pw"))
	require.Error(t, err)
}

func TestNewProtocol_InvalidParams(t *testing.T) {
	c, err := crypto.NewFieldCipher(crypto.SuiteAESGCM, crypto.Random)
	require.NoError(t, err)

	_, err = NewProtocol(crypto.KDFParams{Algorithm: "md5"}, c, crypto.Random)
	assert.ErrorIs(t, err, crypto.ErrDerivation)
}

func TestProtocol_ImportTampered(t *testing.T) {
	p := newTestProtocol(t, fastPBKDF2, crypto.SuiteAESGCM)
	blob, err := p.Export(threeRecords(), []byte("backup-pw"))
	require.NoError(t, err)

	flip := func(b64 string) string {
		raw, err := base64.StdEncoding.DecodeString(b64)
		require.NoError(t, err)
		raw[len(raw)/2] ^= 0x01
		return base64.StdEncoding.EncodeToString(raw)
	}

	t.Run("ciphertext", func(t *testing.T) {
		tampered := blob
		tampered.Encrypted = flip(blob.Encrypted)
		_, err := p.Import(tampered, []byte("backup-pw"))
		assert.ErrorIs(t, err, ErrImportAuthentication)
	})

	t.Run("iv", func(t *testing.T) {
		tampered := blob
		tampered.IV = flip(blob.IV)
		_, err := p.Import(tampered, []byte("backup-pw"))
		assert.ErrorIs(t, err, ErrImportAuthentication)
	})

	t.Run("salt", func(t *testing.T) {
		tampered := blob
		tampered.Salt = flip(blob.Salt)
		_, err := p.Import(tampered, []byte("backup-pw"))
		assert.ErrorIs(t, err, ErrImportAuthentication)
	})
}

func TestProtocol_ImportMalformed(t *testing.T) {
	p := newTestProtocol(t, fastPBKDF2, crypto.SuiteAESGCM)
	valid, err := p.Export(threeRecords(), []byte("backup-pw"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(b *models.BackupBlob)
	}{
		{name: "unknown version", mutate: func(b *models.BackupBlob) { b.Version = 2 }},
		{name: "unknown kdf", mutate: func(b *models.BackupBlob) { b.KDF.Algorithm = "scrypt" }},
		{name: "zero iterations", mutate: func(b *models.BackupBlob) { b.KDF.Iterations = 0 }},
		{name: "excessive iterations", mutate: func(b *models.BackupBlob) { b.KDF.Iterations = MaxPBKDF2Iterations + 1 }},
		{name: "excessive argon2 memory", mutate: func(b *models.BackupBlob) {
			b.KDF = models.BackupKDF{Algorithm: crypto.KDFArgon2id, Iterations: 1, Memory: MaxArgon2Memory + 1, Threads: 1}
		}},
		{name: "salt not base64", mutate: func(b *models.BackupBlob) { b.Salt = "***" }},
		{name: "short salt", mutate: func(b *models.BackupBlob) { b.Salt = base64.StdEncoding.EncodeToString([]byte("short")) }},
		{name: "iv not base64", mutate: func(b *models.BackupBlob) { b.IV = "not base64!" }},
		{name: "short iv", mutate: func(b *models.BackupBlob) { b.IV = base64.StdEncoding.EncodeToString([]byte{1, 2, 3}) }},
		{name: "empty ciphertext", mutate: func(b *models.BackupBlob) { b.Encrypted = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob := valid
			tt.mutate(&blob)

			_, err := p.Import(blob, []byte("backup-pw"))
			assert.ErrorIs(t, err, ErrMalformedBackup)
			assert.NotErrorIs(t, err, ErrImportAuthentication)
		})
	}
}

// sealRawPayload seals arbitrary plaintext the way Export does, so payload
// validation can be exercised.
func sealRawPayload(t *testing.T, p *Protocol, plaintext string) models.BackupBlob {
	t.Helper()

	salt, err := crypto.NewSalt(crypto.Random)
	require.NoError(t, err)
	key, err := p.deriveKey(p.params, []byte("backup-pw"), salt)
	require.NoError(t, err)
	defer key.Destroy()

	env, err := p.codec.SealField(plaintext, key)
	require.NoError(t, err)

	return models.BackupBlob{
		Version:   BlobVersion,
		KDF:       models.BackupKDF{Algorithm: p.params.Algorithm, Iterations: p.params.Iterations},
		Salt:      base64.StdEncoding.EncodeToString(salt),
		Encrypted: env.Encrypted,
		IV:        env.IV,
	}
}

func TestProtocol_ImportMalformedPayload(t *testing.T) {
	p := newTestProtocol(t, fastPBKDF2, crypto.SuiteAESGCM)

	tests := []struct {
		name    string
		payload string
	}{
		{name: "not json", payload: "hello"},
		{name: "wrong version", payload: `{"version":"2.0","exported":"2026-05-01T12:00:00Z","items":[]}`},
		{name: "missing items", payload: `{"version":"1.0","exported":"2026-05-01T12:00:00Z"}`},
		{name: "items not a list", payload: `{"version":"1.0","exported":"2026-05-01T12:00:00Z","items":{}}`},
		{name: "unknown field", payload: `{"version":"1.0","exported":"2026-05-01T12:00:00Z","items":[],"extra":1}`},
		{name: "item without title", payload: `{"version":"1.0","exported":"2026-05-01T12:00:00Z","items":[{"username":"u"}]}`},
		{name: "trailing data", payload: `{"version":"1.0","exported":"2026-05-01T12:00:00Z","items":[]} {}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob := sealRawPayload(t, p, tt.payload)

			_, err := p.Import(blob, []byte("backup-pw"))
			assert.ErrorIs(t, err, ErrMalformedBackup)
		})
	}
}

func TestUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{
			name: "valid",
			data: `{"version":1,"kdf":{"algorithm":"pbkdf2-sha256","iterations":100000},"salt":"AAAAAAAAAAAAAAAAAAAAAA==","encrypted":"AQID","iv":"AAAAAAAAAAAAAAAA"}`,
		},
		{name: "not json", data: `{{`, wantErr: true},
		{name: "array", data: `[]`, wantErr: true},
		{name: "reference format without kdf", data: `{"encrypted":"AQID","iv":"AAAAAAAAAAAAAAAA"}`, wantErr: true},
		{
			name:    "unknown member",
			data:    `{"version":1,"kdf":{"algorithm":"pbkdf2-sha256","iterations":1},"salt":"AA==","encrypted":"AQID","iv":"AA==","mac":"x"}`,
			wantErr: true,
		},
		{
			name:    "trailing garbage",
			data:    `{"version":1,"kdf":{"algorithm":"pbkdf2-sha256","iterations":1},"salt":"AA==","encrypted":"AQID","iv":"AA=="} x`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tt.data))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedBackup)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestImportErrorsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrMalformedBackup, ErrImportAuthentication))
	assert.False(t, errors.Is(ErrImportAuthentication, ErrMalformedBackup))
}
