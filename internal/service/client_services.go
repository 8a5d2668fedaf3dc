// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/backup"
	"github.com/MKhiriev/go-pass-vault/internal/codec"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/session"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/internal/workers"
)

// ClientServices is the set of services one client run works with.
type ClientServices struct {
	Session *session.Manager
	Vault   VaultService
}

// NewClientServices wires the session and vault services of the configured
// account on top of storages.
func NewClientServices(cfg config.ClientConfig, storages *store.ClientStorages, log *logger.Logger) (*ClientServices, error) {
	deriver, err := crypto.NewKeyDeriver(cfg.Crypto.KDF)
	if err != nil {
		return nil, fmt.Errorf("create key deriver: %w", err)
	}

	fieldCipher, err := crypto.NewFieldCipher(cfg.Crypto.CipherSuite, crypto.Random)
	if err != nil {
		return nil, fmt.Errorf("create field cipher: %w", err)
	}

	protocol, err := backup.NewProtocol(cfg.Crypto.KDF, fieldCipher, crypto.Random)
	if err != nil {
		return nil, fmt.Errorf("create backup protocol: %w", err)
	}

	manager := session.NewManager(cfg.App.Account, deriver, fieldCipher, storages.SaltRepository, storages.RecordRepository, log)

	vault := NewVaultService(
		manager,
		storages.RecordRepository,
		codec.NewRecordCodec(fieldCipher),
		protocol,
		workers.NewPool(cfg.Workers.DecryptConcurrency),
		utils.NewUUIDGenerator(),
		log,
	)

	return &ClientServices{Session: manager, Vault: vault}, nil
}
