// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/backup"
	"github.com/MKhiriev/go-pass-vault/internal/codec"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/workers"
	"github.com/MKhiriev/go-pass-vault/models"
)

type vaultService struct {
	keys    KeyHolder
	records store.RecordRepository
	codec   *codec.RecordCodec
	backup  *backup.Protocol
	pool    *workers.Pool
	ids     IDGenerator
	now     func() time.Time

	logger *logger.Logger
}

// NewVaultService returns a VaultService for the account held by keys.
func NewVaultService(
	keys KeyHolder,
	records store.RecordRepository,
	recordCodec *codec.RecordCodec,
	backupProtocol *backup.Protocol,
	pool *workers.Pool,
	ids IDGenerator,
	logger *logger.Logger,
) VaultService {
	return &vaultService{
		keys:    keys,
		records: records,
		codec:   recordCodec,
		backup:  backupProtocol,
		pool:    pool,
		ids:     ids,
		now:     time.Now,
		logger:  logger,
	}
}

func (s *vaultService) Create(ctx context.Context, rec models.DecryptedRecord) (models.EncryptedRecord, error) {
	now := s.now().UTC()
	rec.ID = s.ids.Generate()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	sealed, err := s.seal(rec)
	if err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("seal record for create: %w", err)
	}

	if err = s.records.SaveRecords(ctx, sealed); err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("save created record: %w", err)
	}

	s.logger.Debug().
		Str("func", "*vaultService.Create").
		Str("id", sealed.ID).
		Msg("vault record created")

	return sealed, nil
}

func (s *vaultService) Get(ctx context.Context, id string) (models.DecryptedRecord, error) {
	if id == "" {
		return models.DecryptedRecord{}, ErrInvalidDataProvided
	}

	var opened models.DecryptedRecord
	err := s.keys.WithKey(func(key *crypto.Key) error {
		stored, err := s.records.GetRecord(ctx, s.keys.AccountID(), id)
		if err != nil {
			return fmt.Errorf("get stored record: %w", err)
		}

		opened, err = s.codec.Open(stored, key)
		if err != nil {
			s.logger.Warn().
				Str("func", "*vaultService.Get").
				Str("id", id).
				Str("cause", err.Error()).
				Msg("stored record could not be opened")
			return fmt.Errorf("%w (id=%s)", ErrUndecryptableRecord, id)
		}
		return nil
	})
	if err != nil {
		return models.DecryptedRecord{}, err
	}

	return opened, nil
}

func (s *vaultService) List(ctx context.Context) (models.RecordList, error) {
	var list models.RecordList
	err := s.keys.WithKey(func(key *crypto.Key) error {
		stored, err := s.records.GetAllRecords(ctx, s.keys.AccountID())
		if err != nil {
			return fmt.Errorf("get stored records: %w", err)
		}

		opened := make([]models.DecryptedRecord, len(stored))
		failed := make([]error, len(stored))
		err = s.pool.Run(ctx, len(stored), func(_ context.Context, i int) error {
			opened[i], failed[i] = s.codec.Open(stored[i], key)
			return nil
		})
		if err != nil {
			return fmt.Errorf("open stored records: %w", err)
		}

		list = collect(stored, opened, failed)
		return nil
	})
	if err != nil {
		return models.RecordList{}, err
	}

	for _, f := range list.Failed {
		s.logger.Warn().
			Str("func", "*vaultService.List").
			Str("id", f.ID).
			Msg("stored record could not be opened")
	}

	return list, nil
}

// collect keeps the repository order of the records that opened.
func collect(stored []models.EncryptedRecord, opened []models.DecryptedRecord, failed []error) models.RecordList {
	list := models.RecordList{Records: make([]models.DecryptedRecord, 0, len(stored))}
	for i := range stored {
		if failed[i] != nil {
			list.Failed = append(list.Failed, models.FailedRecord{ID: stored[i].ID, Reason: ReasonUndecryptable})
			continue
		}
		list.Records = append(list.Records, opened[i])
	}
	return list
}

func (s *vaultService) Update(ctx context.Context, rec models.DecryptedRecord) (models.EncryptedRecord, error) {
	if rec.ID == "" {
		return models.EncryptedRecord{}, ErrInvalidDataProvided
	}
	if err := s.requireUnlocked(); err != nil {
		return models.EncryptedRecord{}, err
	}

	prev, err := s.records.GetRecord(ctx, s.keys.AccountID(), rec.ID)
	if err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("load stored record for update: %w", err)
	}

	rec.CreatedAt = prev.CreatedAt
	rec.UpdatedAt = s.now().UTC()

	sealed, err := s.seal(rec)
	if err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("seal record for update: %w", err)
	}

	if err = s.records.UpdateRecord(ctx, sealed); err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("update stored record: %w", err)
	}

	return sealed, nil
}

func (s *vaultService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidDataProvided
	}

	if err := s.requireUnlocked(); err != nil {
		return err
	}

	if err := s.records.DeleteRecord(ctx, s.keys.AccountID(), id); err != nil {
		return fmt.Errorf("delete stored record: %w", err)
	}
	return nil
}

func (s *vaultService) Export(ctx context.Context, exportSecret []byte) (models.BackupBlob, error) {
	defer crypto.Wipe(exportSecret)

	list, err := s.List(ctx)
	if err != nil {
		return models.BackupBlob{}, err
	}
	if len(list.Failed) > 0 {
		s.logger.Warn().
			Str("func", "*vaultService.Export").
			Int("skipped", len(list.Failed)).
			Msg("unreadable records left out of export")
	}

	blob, err := s.backup.Export(list.Records, exportSecret)
	if err != nil {
		return models.BackupBlob{}, fmt.Errorf("export records: %w", err)
	}

	s.logger.Info().
		Str("func", "*vaultService.Export").
		Int("records", len(list.Records)).
		Msg("vault exported")

	return blob, nil
}

func (s *vaultService) Import(ctx context.Context, blob models.BackupBlob, exportSecret []byte) (int, error) {
	defer crypto.Wipe(exportSecret)

	// checked before the export key is derived
	if err := s.requireUnlocked(); err != nil {
		return 0, err
	}

	items, err := s.backup.Import(blob, exportSecret)
	if err != nil {
		return 0, fmt.Errorf("import backup: %w", err)
	}

	now := s.now().UTC()
	sealed := make([]models.EncryptedRecord, 0, len(items))
	for _, item := range items {
		item.ID = s.ids.Generate()
		if item.CreatedAt.IsZero() {
			item.CreatedAt = now
		}
		if item.UpdatedAt.IsZero() {
			item.UpdatedAt = item.CreatedAt
		}

		rec, err := s.seal(item)
		if err != nil {
			return 0, fmt.Errorf("seal imported record: %w", err)
		}
		sealed = append(sealed, rec)
	}

	if err = s.records.SaveRecords(ctx, sealed...); err != nil {
		return 0, fmt.Errorf("save imported records: %w", err)
	}

	s.logger.Info().
		Str("func", "*vaultService.Import").
		Int("records", len(sealed)).
		Msg("backup imported")

	return len(sealed), nil
}

// requireUnlocked keeps a locked session away from storage.
func (s *vaultService) requireUnlocked() error {
	return s.keys.WithKey(func(*crypto.Key) error { return nil })
}

// seal encrypts rec under the session key and checks the storage boundary
// rules before anything reaches the repository.
func (s *vaultService) seal(rec models.DecryptedRecord) (models.EncryptedRecord, error) {
	var sealed models.EncryptedRecord
	err := s.keys.WithKey(func(key *crypto.Key) error {
		var err error
		sealed, err = s.codec.Seal(rec, key)
		return err
	})
	if err != nil {
		return models.EncryptedRecord{}, err
	}

	sealed.OwnerID = s.keys.AccountID()
	if err = codec.ValidateEncryptedRecord(sealed); err != nil {
		return models.EncryptedRecord{}, err
	}
	return sealed, nil
}
