// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pass-vault/internal/backup"
	"github.com/MKhiriev/go-pass-vault/internal/codec"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/generator"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/session"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
)

// Messages shown to the user. Internal error text stays in the log.
const (
	MsgVaultLocked          = "vault locked, check credentials"
	MsgEntryUndecryptable   = "entry could not be decrypted"
	MsgWrongExportPassword  = "wrong export password"
	MsgBadBackupFile        = "bad backup file"
	MsgEntryNotFound        = "entry not found"
	MsgTitleRequired        = "title is required"
	MsgSaltMissing          = "account salt is missing while entries exist, refusing to create a new one"
	MsgSettingsMismatch     = "kdf or cipher settings differ from the ones this vault was created with"
	MsgInvalidGenerator     = "invalid generator options"
	MsgCanceled             = "canceled"
	MsgUsage                = "invalid command, run with help for usage"
	MsgConfirmationRequired = "refusing to delete without --yes when not on a terminal"
	MsgExportSecretMismatch = "export passwords do not match"
	MsgUnexpected           = "unexpected error, see the log file for details"
)

var (
	ErrUnknownCommand       = errors.New("unknown command")
	ErrInvalidFlags         = errors.New("invalid flags")
	ErrMissingArgument      = errors.New("missing argument")
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrExportSecretMismatch = errors.New("export passwords do not match")
)

// UserMessage translates err into the message printed for the user.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, session.ErrSaltMissing):
		return MsgSaltMissing
	case errors.Is(err, session.ErrSettingsMismatch):
		return MsgSettingsMismatch
	case errors.Is(err, session.ErrVaultLocked),
		errors.Is(err, session.ErrWrongSecret),
		errors.Is(err, session.ErrSessionDestroyed),
		errors.Is(err, crypto.ErrEmptySecret),
		errors.Is(err, crypto.ErrDerivation):
		return MsgVaultLocked
	case errors.Is(err, service.ErrUndecryptableRecord):
		return MsgEntryUndecryptable
	case errors.Is(err, backup.ErrImportAuthentication):
		return MsgWrongExportPassword
	case errors.Is(err, backup.ErrMalformedBackup):
		return MsgBadBackupFile
	case errors.Is(err, store.ErrRecordNotFound):
		return MsgEntryNotFound
	case errors.Is(err, codec.ErrMissingTitle):
		return MsgTitleRequired
	case errors.Is(err, generator.ErrEmptyCharset),
		errors.Is(err, generator.ErrInvalidLength):
		return MsgInvalidGenerator
	case errors.Is(err, tui.ErrUserQuit),
		errors.Is(err, context.Canceled):
		return MsgCanceled
	case errors.Is(err, ErrUnknownCommand),
		errors.Is(err, ErrMissingArgument),
		errors.Is(err, ErrInvalidFlags):
		return MsgUsage
	case errors.Is(err, ErrConfirmationRequired):
		return MsgConfirmationRequired
	case errors.Is(err, ErrExportSecretMismatch):
		return MsgExportSecretMismatch
	case errors.Is(err, ErrNoSecretInput):
		return MsgVaultLocked
	}
	return MsgUnexpected
}
