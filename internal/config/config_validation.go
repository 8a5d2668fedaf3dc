// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
)

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.App.Account) == "" {
		return ErrInvalidAppConfigs
	}

	if err := cfg.Crypto.KDF.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCryptoConfigs, err)
	}
	switch cfg.Crypto.CipherSuite {
	case crypto.SuiteAESGCM, crypto.SuiteChaCha20Poly1305:
	default:
		return fmt.Errorf("%w: unknown cipher suite %q", ErrInvalidCryptoConfigs, cfg.Crypto.CipherSuite)
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.DecryptConcurrency < 1 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
