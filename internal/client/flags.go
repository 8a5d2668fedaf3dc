// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-pass-vault/internal/generator"
)

// commandFlags are the per-command flags. Configuration flags share the same
// argument list and are skipped here.
type commandFlags struct {
	fs *pflag.FlagSet

	title    string
	username string
	url      string
	notes    string

	generate       bool
	promptPassword bool
	copy           bool
	yes            bool

	length           int
	noLower          bool
	noUpper          bool
	noDigits         bool
	noSymbols        bool
	excludeAmbiguous bool

	out string
	in  string
}

func parseCommandFlags(args []string) (*commandFlags, error) {
	f := &commandFlags{fs: pflag.NewFlagSet("command", pflag.ContinueOnError)}
	fs := f.fs
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(discard{})

	fs.StringVarP(&f.title, "title", "t", "", "Entry title")
	fs.StringVarP(&f.username, "username", "u", "", "Entry username")
	fs.StringVar(&f.url, "url", "", "Entry URL")
	fs.StringVarP(&f.notes, "notes", "n", "", "Entry notes")

	fs.BoolVarP(&f.generate, "generate", "g", false, "Generate the entry password")
	fs.BoolVarP(&f.promptPassword, "password", "p", false, "Prompt for a new entry password")
	fs.BoolVar(&f.copy, "copy", false, "Copy the password to the clipboard instead of printing it")
	fs.BoolVarP(&f.yes, "yes", "y", false, "Do not ask for confirmation")

	fs.IntVarP(&f.length, "length", "l", generator.DefaultLength, "Generated password length")
	fs.BoolVar(&f.noLower, "no-lower", false, "Leave out lowercase letters")
	fs.BoolVar(&f.noUpper, "no-upper", false, "Leave out uppercase letters")
	fs.BoolVar(&f.noDigits, "no-digits", false, "Leave out digits")
	fs.BoolVar(&f.noSymbols, "no-symbols", false, "Leave out symbols")
	fs.BoolVar(&f.excludeAmbiguous, "exclude-ambiguous", false, "Leave out look-alike characters")

	fs.StringVarP(&f.out, "out", "o", "-", "Backup file to write, - for stdout")
	fs.StringVarP(&f.in, "in", "i", "", "Backup file to read")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFlags, err)
	}
	return f, nil
}

// command returns the subcommand name and its positional arguments.
func (f *commandFlags) command() (string, []string) {
	args := f.fs.Args()
	if len(args) == 0 {
		return "", nil
	}
	return args[0], args[1:]
}

func (f *commandFlags) changed(name string) bool {
	return f.fs.Changed(name)
}

func (f *commandFlags) generatorOptions() generator.Options {
	return generator.Options{
		Length:           f.length,
		Lowercase:        !f.noLower,
		Uppercase:        !f.noUpper,
		Digits:           !f.noDigits,
		Symbols:          !f.noSymbols,
		ExcludeAmbiguous: f.excludeAmbiguous,
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
