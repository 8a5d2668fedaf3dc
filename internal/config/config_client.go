// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// Account identifies the vault owner.
	Account string
	// LogFile is the client log file path (may be empty).
	LogFile string
}

// ClientCrypto holds the key-derivation and cipher settings of the client.
type ClientCrypto struct {
	// KDF are the parameters of the account key derivation.
	KDF crypto.KDFParams
	// CipherSuite is the AEAD suite used for every field.
	CipherSuite string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite path or PostgreSQL URL.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// SaltFilePath selects the JSON-file salt store when non-empty.
	SaltFilePath string
}

// ClientWorkers contains client worker settings.
type ClientWorkers struct {
	// DecryptConcurrency bounds parallel record decryption.
	DecryptConcurrency int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Crypto  ClientCrypto
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client configuration view from
// the merged structured configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Account: cfg.App.Account,
			LogFile: cfg.App.LogFile,
		},
		Crypto: ClientCrypto{
			KDF: crypto.KDFParams{
				Algorithm:  cfg.Crypto.KDFAlgorithm,
				Iterations: cfg.Crypto.KDFIterations,
				Memory:     cfg.Crypto.KDFMemory,
				Threads:    cfg.Crypto.KDFThreads,
			},
			CipherSuite: cfg.Crypto.CipherSuite,
		},
		Storage: ClientStorage{
			DB:           ClientDB{DSN: cfg.Storage.DB.DSN},
			SaltFilePath: cfg.Storage.Salt.FilePath,
		},
		Workers: ClientWorkers{
			DecryptConcurrency: cfg.Workers.DecryptConcurrency,
		},
	}
}
