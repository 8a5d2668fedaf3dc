// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Names of the sealed slots of a vault record. They are used in error
// messages and logs to point at the field that failed.
const (
	FieldTitle    = "title"
	FieldUsername = "username"
	FieldPassword = "password"
	FieldURL      = "url"
	FieldNotes    = "notes"
)

// EncryptedRecord is the only representation of a vault entry that is ever
// handed to the storage collaborator. Every encrypted*/iv* pair is an
// independently valid base64 envelope; plaintext never appears here.
type EncryptedRecord struct {
	// ID is the record identifier. Empty until the record is first stored.
	ID string `json:"id,omitempty"`

	// OwnerID references the account that owns the record.
	OwnerID string `json:"ownerId"`

	EncryptedTitle    string `json:"encryptedTitle"`
	IVTitle           string `json:"ivTitle"`
	EncryptedUsername string `json:"encryptedUsername"`
	IVUsername        string `json:"ivUsername"`
	EncryptedPassword string `json:"encryptedPassword"`
	IVPassword        string `json:"ivPassword"`
	EncryptedURL      string `json:"encryptedUrl"`
	IVURL             string `json:"ivUrl"`
	EncryptedNotes    string `json:"encryptedNotes"`
	IVNotes           string `json:"ivNotes"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time `json:"updatedAt"`
}

// Envelope returns the encoded envelope stored in the named slot. The second
// result is false for an unknown slot name.
func (r EncryptedRecord) Envelope(field string) (EncodedEnvelope, bool) {
	switch field {
	case FieldTitle:
		return EncodedEnvelope{Encrypted: r.EncryptedTitle, IV: r.IVTitle}, true
	case FieldUsername:
		return EncodedEnvelope{Encrypted: r.EncryptedUsername, IV: r.IVUsername}, true
	case FieldPassword:
		return EncodedEnvelope{Encrypted: r.EncryptedPassword, IV: r.IVPassword}, true
	case FieldURL:
		return EncodedEnvelope{Encrypted: r.EncryptedURL, IV: r.IVURL}, true
	case FieldNotes:
		return EncodedEnvelope{Encrypted: r.EncryptedNotes, IV: r.IVNotes}, true
	}
	return EncodedEnvelope{}, false
}

// SetEnvelope stores env in the named slot. Unknown slot names are ignored.
func (r *EncryptedRecord) SetEnvelope(field string, env EncodedEnvelope) {
	switch field {
	case FieldTitle:
		r.EncryptedTitle, r.IVTitle = env.Encrypted, env.IV
	case FieldUsername:
		r.EncryptedUsername, r.IVUsername = env.Encrypted, env.IV
	case FieldPassword:
		r.EncryptedPassword, r.IVPassword = env.Encrypted, env.IV
	case FieldURL:
		r.EncryptedURL, r.IVURL = env.Encrypted, env.IV
	case FieldNotes:
		r.EncryptedNotes, r.IVNotes = env.Encrypted, env.IV
	}
}

// RecordFields lists the sealed slots in their canonical order.
func RecordFields() []string {
	return []string{FieldTitle, FieldUsername, FieldPassword, FieldURL, FieldNotes}
}

// DecryptedRecord is the in-memory plaintext counterpart of an
// [EncryptedRecord]. It is used only transiently for display and editing and
// is never persisted or transmitted (except inside a sealed backup).
type DecryptedRecord struct {
	ID        string    `json:"id,omitempty"`
	Title     string    `json:"title"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	URL       string    `json:"url"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Field returns the plaintext value of the named slot.
func (r DecryptedRecord) Field(field string) string {
	switch field {
	case FieldTitle:
		return r.Title
	case FieldUsername:
		return r.Username
	case FieldPassword:
		return r.Password
	case FieldURL:
		return r.URL
	case FieldNotes:
		return r.Notes
	}
	return ""
}

// SetField stores value in the named slot. Unknown slot names are ignored.
func (r *DecryptedRecord) SetField(field, value string) {
	switch field {
	case FieldTitle:
		r.Title = value
	case FieldUsername:
		r.Username = value
	case FieldPassword:
		r.Password = value
	case FieldURL:
		r.URL = value
	case FieldNotes:
		r.Notes = value
	}
}
