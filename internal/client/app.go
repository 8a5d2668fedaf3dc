// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Options describes the terminal the client runs on.
type Options struct {
	// In supplies keys to prompts, or secrets line by line when Interactive
	// is false.
	In io.Reader
	// Out receives command output.
	Out io.Writer
	// PromptOut receives the prompts so that Out can be piped.
	PromptOut io.Writer
	// Interactive is true when In is a terminal.
	Interactive bool

	BuildInfo models.AppBuildInfo
}

type App struct {
	session  Session
	vault    service.VaultService
	prompter SecretPrompter
	confirm  Confirmer

	out    io.Writer
	random crypto.RandomSource
	copy   func(string) error
	build  models.AppBuildInfo

	logger *logger.Logger
}

// NewApp returns the client application over services.
func NewApp(services *service.ClientServices, opts Options, log *logger.Logger) *App {
	app := &App{
		session: services.Session,
		vault:   services.Vault,
		out:     opts.Out,
		random:  crypto.Random,
		copy:    clipboard.WriteAll,
		build:   opts.BuildInfo,
		logger:  log,
	}

	if opts.Interactive {
		ui := tui.New(opts.In, opts.PromptOut)
		app.prompter = ui
		app.confirm = ui
	} else {
		app.prompter = newLineSecretReader(opts.In)
	}

	return app
}

// Run executes the command in args. Everything logged through ctx while the
// command runs carries a "command" field.
func (a *App) Run(ctx context.Context, args []string) error {
	flags, err := parseCommandFlags(args)
	if err != nil {
		return err
	}

	name, rest := flags.command()

	log := a.logger.GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("command", name)
	})
	ctx = log.WithContext(ctx)
	log.Debug().Str("func", "*App.Run").Msg("running command")

	switch name {
	case "", "help":
		_, err = io.WriteString(a.out, usage)
		return err
	case "version":
		_, err = fmt.Fprintln(a.out, tui.RenderBuildInfo(a.build))
		return err
	case "gen":
		return a.runGen(flags)
	}

	run, ok := a.vaultCommands()[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	return run(ctx, flags, rest)
}

type vaultCommand func(ctx context.Context, flags *commandFlags, args []string) error

func (a *App) vaultCommands() map[string]vaultCommand {
	return map[string]vaultCommand{
		"add":    a.runAdd,
		"list":   a.runList,
		"show":   a.runShow,
		"edit":   a.runEdit,
		"rm":     a.runRemove,
		"export": a.runExport,
		"import": a.runImport,
	}
}

// unlock prompts for the master password and unlocks the session. The
// returned func locks it again.
func (a *App) unlock(ctx context.Context) (func(), error) {
	secret, err := a.prompter.PromptSecret(ctx, "MASTER PASSWORD")
	if err != nil {
		return nil, fmt.Errorf("read master password: %w", err)
	}

	if err = a.session.Unlock(ctx, secret); err != nil {
		return nil, fmt.Errorf("unlock vault: %w", err)
	}
	return a.session.Lock, nil
}

const usage = `usage: go-pass-vault [config flags] <command> [flags] [args]

commands:
  gen                      generate a password (-l N, --no-lower, --no-upper,
                           --no-digits, --no-symbols, --exclude-ambiguous, --copy)
  add -t TITLE             add an entry (-u USER, --url URL, -n NOTES, -g)
  list                     list entries
  show ID                  show an entry (--copy puts the password on the clipboard)
  edit ID                  change an entry (-t, -u, --url, -n, -p to prompt, -g)
  rm ID                    delete an entry (-y skips the confirmation)
  export [-o FILE]         write an encrypted backup
  import -i FILE           add the entries of a backup
  version                  print build information

config flags:
  -a/--account, -d/--dsn, --salt-file, -c/--config, --kdf, --kdf-iterations,
  --kdf-memory, --kdf-threads, --cipher, --decrypt-workers, --log-file
`
