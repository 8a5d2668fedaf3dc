// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"crypto/subtle"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-pass-vault/internal/backup"
	"github.com/MKhiriev/go-pass-vault/internal/codec"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/generator"
	"github.com/MKhiriev/go-pass-vault/models"
)

const backupFileMode = 0o600

func (a *App) runGen(flags *commandFlags) error {
	password, err := generator.Generate(a.random, flags.generatorOptions())
	if err != nil {
		return fmt.Errorf("generate password: %w", err)
	}
	return a.emitPassword(password, flags.copy)
}

func (a *App) runAdd(ctx context.Context, flags *commandFlags, _ []string) error {
	if flags.title == "" {
		return fmt.Errorf("add: %w", codec.ErrMissingTitle)
	}

	lock, err := a.unlock(ctx)
	if err != nil {
		return err
	}
	defer lock()

	password, err := a.entryPassword(ctx, flags)
	if err != nil {
		return err
	}

	rec, err := a.vault.Create(ctx, models.DecryptedRecord{
		Title:    flags.title,
		Username: flags.username,
		Password: password,
		URL:      flags.url,
		Notes:    flags.notes,
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(a.out, "added %s\n", rec.ID)
	return err
}

func (a *App) runList(ctx context.Context, _ *commandFlags, _ []string) error {
	lock, err := a.unlock(ctx)
	if err != nil {
		return err
	}
	defer lock()

	list, err := a.vault.List(ctx)
	if err != nil {
		return err
	}

	if len(list.Records) > 0 {
		t := table.New().Headers("ID", "TITLE", "USERNAME", "URL")
		for _, rec := range list.Records {
			t.Row(rec.ID, rec.Title, rec.Username, rec.URL)
		}
		if _, err = fmt.Fprintln(a.out, t.Render()); err != nil {
			return err
		}
	} else if _, err = fmt.Fprintln(a.out, "no entries"); err != nil {
		return err
	}

	for _, f := range list.Failed {
		if _, err = fmt.Fprintf(a.out, "! %s: %s\n", f.ID, MsgEntryUndecryptable); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) runShow(ctx context.Context, flags *commandFlags, args []string) error {
	id, err := entryID(args)
	if err != nil {
		return err
	}

	lock, err := a.unlock(ctx)
	if err != nil {
		return err
	}
	defer lock()

	rec, err := a.vault.Get(ctx, id)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(a.out,
		"id:       %s\ntitle:    %s\nusername: %s\nurl:      %s\nnotes:    %s\ncreated:  %s\nupdated:  %s\n",
		rec.ID, rec.Title, rec.Username, rec.URL, rec.Notes,
		rec.CreatedAt.Format("2006-01-02 15:04:05"), rec.UpdatedAt.Format("2006-01-02 15:04:05"))
	if err != nil {
		return err
	}

	if !flags.copy {
		_, err = fmt.Fprintf(a.out, "password: %s\n", rec.Password)
		return err
	}
	return a.emitPassword(rec.Password, true)
}

func (a *App) runEdit(ctx context.Context, flags *commandFlags, args []string) error {
	id, err := entryID(args)
	if err != nil {
		return err
	}

	lock, err := a.unlock(ctx)
	if err != nil {
		return err
	}
	defer lock()

	rec, err := a.vault.Get(ctx, id)
	if err != nil {
		return err
	}

	if flags.changed("title") {
		rec.Title = flags.title
	}
	if flags.changed("username") {
		rec.Username = flags.username
	}
	if flags.changed("url") {
		rec.URL = flags.url
	}
	if flags.changed("notes") {
		rec.Notes = flags.notes
	}
	if flags.generate || flags.promptPassword {
		if rec.Password, err = a.entryPassword(ctx, flags); err != nil {
			return err
		}
	}

	if _, err = a.vault.Update(ctx, rec); err != nil {
		return err
	}

	_, err = fmt.Fprintf(a.out, "updated %s\n", id)
	return err
}

func (a *App) runRemove(ctx context.Context, flags *commandFlags, args []string) error {
	id, err := entryID(args)
	if err != nil {
		return err
	}

	if !flags.yes {
		if a.confirm == nil {
			return ErrConfirmationRequired
		}
		ok, err := a.confirm.Confirm(ctx, fmt.Sprintf("Delete entry %s?", id))
		if err != nil {
			return err
		}
		if !ok {
			_, err = fmt.Fprintln(a.out, "kept", id)
			return err
		}
	}

	lock, err := a.unlock(ctx)
	if err != nil {
		return err
	}
	defer lock()

	if err = a.vault.Delete(ctx, id); err != nil {
		return err
	}

	_, err = fmt.Fprintf(a.out, "deleted %s\n", id)
	return err
}

func (a *App) runExport(ctx context.Context, flags *commandFlags, _ []string) error {
	lock, err := a.unlock(ctx)
	if err != nil {
		return err
	}
	defer lock()

	exportSecret, err := a.exportSecret(ctx)
	if err != nil {
		return err
	}

	blob, err := a.vault.Export(ctx, exportSecret)
	if err != nil {
		return err
	}

	data, err := backup.Marshal(blob)
	if err != nil {
		return err
	}

	if flags.out == "-" {
		_, err = a.out.Write(data)
		return err
	}

	if err = os.WriteFile(flags.out, data, backupFileMode); err != nil {
		return fmt.Errorf("write backup file: %w", err)
	}
	_, err = fmt.Fprintf(a.out, "backup written to %s\n", flags.out)
	return err
}

func (a *App) runImport(ctx context.Context, flags *commandFlags, _ []string) error {
	if flags.in == "" {
		return fmt.Errorf("%w: backup file (-i)", ErrMissingArgument)
	}

	data, err := os.ReadFile(flags.in)
	if err != nil {
		return fmt.Errorf("read backup file: %w", err)
	}
	blob, err := backup.Unmarshal(data)
	if err != nil {
		return err
	}

	lock, err := a.unlock(ctx)
	if err != nil {
		return err
	}
	defer lock()

	exportSecret, err := a.prompter.PromptSecret(ctx, "EXPORT PASSWORD")
	if err != nil {
		return fmt.Errorf("read export password: %w", err)
	}

	n, err := a.vault.Import(ctx, blob, exportSecret)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(a.out, "imported %d entries\n", n)
	return err
}

// exportSecret reads the export password, asking twice on a terminal.
func (a *App) exportSecret(ctx context.Context) ([]byte, error) {
	first, err := a.prompter.PromptSecret(ctx, "EXPORT PASSWORD")
	if err != nil {
		return nil, fmt.Errorf("read export password: %w", err)
	}
	if a.confirm == nil {
		return first, nil
	}

	second, err := a.prompter.PromptSecret(ctx, "REPEAT EXPORT PASSWORD")
	if err != nil {
		crypto.Wipe(first)
		return nil, fmt.Errorf("read export password: %w", err)
	}
	defer crypto.Wipe(second)

	if subtle.ConstantTimeCompare(first, second) != 1 {
		crypto.Wipe(first)
		return nil, ErrExportSecretMismatch
	}
	return first, nil
}

// entryPassword generates or prompts for the password of an entry.
func (a *App) entryPassword(ctx context.Context, flags *commandFlags) (string, error) {
	if flags.generate {
		password, err := generator.Generate(a.random, flags.generatorOptions())
		if err != nil {
			return "", fmt.Errorf("generate password: %w", err)
		}
		return password, nil
	}

	secret, err := a.prompter.PromptSecret(ctx, "ENTRY PASSWORD")
	if err != nil {
		return "", fmt.Errorf("read entry password: %w", err)
	}
	defer crypto.Wipe(secret)
	return string(secret), nil
}

func (a *App) emitPassword(password string, toClipboard bool) error {
	if !toClipboard {
		_, err := fmt.Fprintln(a.out, password)
		return err
	}

	if err := a.copy(password); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	_, err := fmt.Fprintln(a.out, "password copied to clipboard")
	return err
}

func entryID(args []string) (string, error) {
	if len(args) == 0 || args[0] == "" {
		return "", fmt.Errorf("%w: entry id", ErrMissingArgument)
	}
	return args[0], nil
}
