// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/MKhiriev/go-pass-vault/internal/crypto"

// Defaults applied when no other source sets a field.
const (
	DefaultAccount            = "default"
	DefaultDSN                = "vault.db"
	DefaultDecryptConcurrency = 4
)

func defaultConfig() *StructuredConfig {
	kdf := crypto.DefaultKDFParams()
	return &StructuredConfig{
		App: App{
			Account: DefaultAccount,
		},
		Crypto: Crypto{
			KDFAlgorithm:  kdf.Algorithm,
			KDFIterations: kdf.Iterations,
			CipherSuite:   crypto.SuiteAESGCM,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Workers: Workers{
			DecryptConcurrency: DefaultDecryptConcurrency,
		},
	}
}
