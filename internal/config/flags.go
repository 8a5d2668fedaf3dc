// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// ParseFlags parses the configuration flags found in args. Unknown flags are
// ignored so that command-specific flags can share the same argument list.
//
// Flags:
//
//	-a/--account          vault account identifier
//	-d/--dsn              database DSN (SQLite path or postgres URL)
//	--salt-file           JSON file for account salts
//	-c/--config           json file path with configs
//	--kdf                 key derivation algorithm (pbkdf2-sha256, argon2id)
//	--kdf-iterations      PBKDF2 iterations / Argon2id time cost
//	--kdf-memory          Argon2id memory in KiB
//	--kdf-threads         Argon2id parallelism
//	--cipher              cipher suite (aes-256-gcm, chacha20-poly1305)
//	--decrypt-workers     concurrent record decryption limit
//	--log-file            client log file path
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := pflag.NewFlagSet("config", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(discard{})

	cfg := &StructuredConfig{}
	fs.StringVarP(&cfg.App.Account, "account", "a", "", "Vault account identifier")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Client log file path")
	fs.StringVarP(&cfg.Storage.DB.DSN, "dsn", "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.Salt.FilePath, "salt-file", "", "JSON file for account salts")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.StringVar(&cfg.Crypto.KDFAlgorithm, "kdf", "", "Key derivation algorithm")
	fs.Uint32Var(&cfg.Crypto.KDFIterations, "kdf-iterations", 0, "PBKDF2 iterations or Argon2id time cost")
	fs.Uint32Var(&cfg.Crypto.KDFMemory, "kdf-memory", 0, "Argon2id memory in KiB")
	fs.Uint8Var(&cfg.Crypto.KDFThreads, "kdf-threads", 0, "Argon2id parallelism")
	fs.StringVar(&cfg.Crypto.CipherSuite, "cipher", "", "Cipher suite")
	fs.IntVar(&cfg.Workers.DecryptConcurrency, "decrypt-workers", 0, "Concurrent record decryption limit")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, nil
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
