package codec

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCodec(t *testing.T) *RecordCodec {
	t.Helper()
	c, err := crypto.NewFieldCipher(crypto.SuiteAESGCM, crypto.Random)
	require.NoError(t, err)
	return NewRecordCodec(c)
}

func newKey(t *testing.T, fill byte) *crypto.Key {
	t.Helper()
	key, err := crypto.NewKey(bytes.Repeat([]byte{fill}, crypto.KeySize))
	require.NoError(t, err)
	return key
}

func fullRecord() models.DecryptedRecord {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return models.DecryptedRecord{
		ID:        "rec-1",
		Title:     "GitHub",
		Username:  "octocat",
		Password:  "hunter2",
		URL:       "https://github.com",
		Notes:     "2fa enabled",
		CreatedAt: created,
		UpdatedAt: created.Add(time.Hour),
	}
}

func TestRecordCodec_RoundTrip(t *testing.T) {
	c := newTestCodec(t)
	key := newKey(t, 0x10)
	rec := fullRecord()

	enc, err := c.Seal(rec, key)
	require.NoError(t, err)
	enc.OwnerID = "owner-1"
	require.NoError(t, ValidateEncryptedRecord(enc))

	assert.Equal(t, rec.ID, enc.ID)
	assert.Equal(t, rec.CreatedAt, enc.CreatedAt)
	assert.Equal(t, rec.UpdatedAt, enc.UpdatedAt)
	assert.NotContains(t, enc.EncryptedPassword, "hunter2")

	got, err := c.Open(enc, key)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestRecordCodec_TitleOnlyRecord(t *testing.T) {
	c := newTestCodec(t)
	key := newKey(t, 0x11)

	enc, err := c.Seal(models.DecryptedRecord{Title: "only a title"}, key)
	require.NoError(t, err)

	for _, field := range models.RecordFields() {
		env, ok := enc.Envelope(field)
		require.True(t, ok)
		assert.NotEmpty(t, env.Encrypted, "slot %s must carry ciphertext", field)
		assert.NotEmpty(t, env.IV, "slot %s must carry an iv", field)
	}

	got, err := c.Open(enc, key)
	require.NoError(t, err)
	assert.Equal(t, "only a title", got.Title)
	assert.Empty(t, got.Username)
	assert.Empty(t, got.Password)
	assert.Empty(t, got.URL)
	assert.Empty(t, got.Notes)
}

func TestRecordCodec_SealRequiresTitle(t *testing.T) {
	c := newTestCodec(t)
	_, err := c.Seal(models.DecryptedRecord{Username: "no title"}, newKey(t, 0x12))
	assert.ErrorIs(t, err, ErrMissingTitle)
}

func TestRecordCodec_EveryFieldHasItsOwnIV(t *testing.T) {
	c := newTestCodec(t)
	enc, err := c.Seal(models.DecryptedRecord{Title: "same", Username: "same", Password: "same", URL: "same", Notes: "same"}, newKey(t, 0x13))
	require.NoError(t, err)

	ivs := map[string]struct{}{}
	for _, field := range models.RecordFields() {
		env, _ := enc.Envelope(field)
		ivs[env.IV] = struct{}{}
	}
	assert.Len(t, ivs, len(models.RecordFields()))
}

func TestRecordCodec_OpenWithWrongKey(t *testing.T) {
	c := newTestCodec(t)
	enc, err := c.Seal(fullRecord(), newKey(t, 0x14))
	require.NoError(t, err)

	_, err = c.Open(enc, newKey(t, 0x15))
	require.ErrorIs(t, err, crypto.ErrAuthentication)

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, models.FieldTitle, fieldErr.Field)
}

func TestRecordCodec_OpenReportsCorruptField(t *testing.T) {
	c := newTestCodec(t)
	key := newKey(t, 0x16)
	enc, err := c.Seal(fullRecord(), key)
	require.NoError(t, err)

	other, err := c.Seal(models.DecryptedRecord{Title: "x", Notes: "swapped"}, key)
	require.NoError(t, err)
	// ciphertext from one envelope with the iv of another must not open
	enc.IVNotes = other.IVNotes

	_, err = c.Open(enc, key)
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, models.FieldNotes, fieldErr.Field)
	assert.ErrorIs(t, err, crypto.ErrAuthentication)
}

func TestRecordCodec_OpenMalformedEnvelope(t *testing.T) {
	c := newTestCodec(t)
	key := newKey(t, 0x17)
	enc, err := c.Seal(fullRecord(), key)
	require.NoError(t, err)
	enc.EncryptedURL = "***"

	_, err = c.Open(enc, key)
	assert.ErrorIs(t, err, ErrMalformedEnvelope)
}

func TestRecordCodec_SealCipherError(t *testing.T) {
	ctrl := gomock.NewController(t)
	fieldCipher := mock.NewMockFieldCipher(ctrl)
	c := NewRecordCodec(fieldCipher)
	key := newKey(t, 0x18)

	sealErr := errors.New("entropy exhausted")
	gomock.InOrder(
		fieldCipher.EXPECT().Seal("GitHub", key).Return([]byte("ct"), []byte("iv"), nil),
		fieldCipher.EXPECT().Seal("octocat", key).Return(nil, nil, sealErr),
	)

	_, err := c.Seal(fullRecord(), key)
	require.ErrorIs(t, err, sealErr)

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, models.FieldUsername, fieldErr.Field)
}

func TestValidateEncryptedRecord(t *testing.T) {
	c := newTestCodec(t)
	valid, err := c.Seal(fullRecord(), newKey(t, 0x19))
	require.NoError(t, err)
	valid.OwnerID = "owner-1"

	tests := []struct {
		name    string
		mutate  func(r *models.EncryptedRecord)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.EncryptedRecord) {}},
		{name: "missing title envelope", mutate: func(r *models.EncryptedRecord) { r.EncryptedTitle, r.IVTitle = "", "" }, wantErr: ErrMissingTitle},
		{name: "title without iv", mutate: func(r *models.EncryptedRecord) { r.IVTitle = "" }, wantErr: ErrMalformedEnvelope},
		{name: "omitted notes envelope", mutate: func(r *models.EncryptedRecord) { r.EncryptedNotes, r.IVNotes = "", "" }, wantErr: ErrMalformedEnvelope},
		{name: "bad password base64", mutate: func(r *models.EncryptedRecord) { r.EncryptedPassword = "!!" }, wantErr: ErrMalformedEnvelope},
		{name: "missing owner", mutate: func(r *models.EncryptedRecord) { r.OwnerID = "" }, wantErr: ErrMissingOwner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := valid
			tt.mutate(&rec)
			err := ValidateEncryptedRecord(rec)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
