// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-vault/models"
)

// fileSaltStore keeps account salt rows in a single JSON file. The file is
// re-read before every write so that a row created by another process is
// never overwritten.
type fileSaltStore struct {
	path string
	now  func() time.Time

	mu    sync.Mutex
	salts map[string]models.AccountSalt
}

type fileSaltState struct {
	Salts map[string]models.AccountSalt `json:"salts"`
}

// NewFileSaltStore returns a [SaltRepository] persisted to path.
func NewFileSaltStore(path string) (SaltRepository, error) {
	if path == "" {
		return nil, errors.New("salt file path is empty")
	}

	s := &fileSaltStore{
		path:  path,
		now:   time.Now,
		salts: make(map[string]models.AccountSalt),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// GetSalt implements [SaltRepository].
func (s *fileSaltStore) GetSalt(_ context.Context, accountID string) (models.AccountSalt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return models.AccountSalt{}, err
	}

	salt, ok := s.salts[accountID]
	if !ok {
		return models.AccountSalt{}, ErrSaltNotFound
	}
	salt.AccountID = accountID
	return salt, nil
}

// CreateSalt implements [SaltRepository].
func (s *fileSaltStore) CreateSalt(ctx context.Context, salt models.AccountSalt) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return err
	}
	if _, ok := s.salts[salt.AccountID]; ok {
		return ErrSaltAlreadyExists
	}

	salt.CreatedAt = s.now().UTC()
	s.salts[salt.AccountID] = salt
	if err := s.persist(); err != nil {
		delete(s.salts, salt.AccountID)
		return err
	}
	return nil
}

func (s *fileSaltStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read salt file: %w", err)
	}

	var st fileSaltState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode salt file: %w", err)
	}
	if st.Salts == nil {
		st.Salts = make(map[string]models.AccountSalt)
	}

	s.salts = st.Salts
	return nil
}

// persist writes through a temp file and rename so a crash never leaves a
// truncated salt file behind.
func (s *fileSaltStore) persist() error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create salt file dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(fileSaltState{Salts: s.salts}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode salt file: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp salt file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("write salt file: %w", err)
	}
	if err = tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod salt file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close salt file: %w", err)
	}

	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace salt file: %w", err)
	}
	return nil
}
