// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"bytes"
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-pass-vault/internal/codec"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

// SaltStore persists the durable per-account salt row with insert-once
// semantics. See [store.SaltRepository].
type SaltStore interface {
	GetSalt(ctx context.Context, accountID string) (models.AccountSalt, error)
	CreateSalt(ctx context.Context, salt models.AccountSalt) error
}

// RecordCounter reports how many records an account already has.
type RecordCounter interface {
	CountRecords(ctx context.Context, ownerID string) (int, error)
}

const unlockFlightKey = "unlock"

// verifierPlaintext is sealed under the account key when the salt is
// created. Only the right secret derives a key that opens it.
const verifierPlaintext = "go-pass-vault:verifier:v1"

// Manager holds the derived key of one session. It is safe for concurrent
// use.
type Manager struct {
	accountID string
	deriver   crypto.KeyDeriver
	suite     string
	verifier  *codec.RecordCodec
	salts     SaltStore
	records   RecordCounter
	random    crypto.RandomSource
	logger    *logger.Logger

	flight singleflight.Group

	mu    sync.RWMutex
	state State
	key   *crypto.Key
}

// NewManager returns an Uninitialized manager for accountID. The account is
// bound to the parameters of deriver and the suite of fieldCipher when its
// salt is created. records may be nil, in which case a missing salt is
// always generated.
func NewManager(accountID string, deriver crypto.KeyDeriver, fieldCipher crypto.FieldCipher, salts SaltStore, records RecordCounter, log *logger.Logger) *Manager {
	return &Manager{
		accountID: accountID,
		deriver:   deriver,
		suite:     fieldCipher.Suite(),
		verifier:  codec.NewRecordCodec(fieldCipher),
		salts:     salts,
		records:   records,
		random:    crypto.Random,
		logger:    log,
	}
}

// AccountID returns the account the session belongs to.
func (m *Manager) AccountID() string {
	return m.accountID
}

// State returns the current lifecycle stage.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Unlock derives the session key from secret. It takes ownership of secret
// and wipes it before returning on every path.
//
// Concurrent calls are coalesced: only one derivation runs and every waiting
// caller receives its result. A caller whose ctx ends while waiting returns
// ctx.Err(); the derivation itself is not interrupted and its key is still
// published. Unlock on a Ready session is a no-op.
func (m *Manager) Unlock(ctx context.Context, secret []byte) error {
	defer crypto.Wipe(secret)

	if err := ctx.Err(); err != nil {
		return err
	}
	if len(secret) == 0 {
		return crypto.ErrEmptySecret
	}

	switch m.State() {
	case StateReady:
		return nil
	case StateDestroyed:
		return ErrSessionDestroyed
	}

	owned := bytes.Clone(secret)
	flightCtx := context.WithoutCancel(ctx)
	ch := m.flight.DoChan(unlockFlightKey, func() (any, error) {
		return nil, m.unlock(flightCtx, owned)
	})

	select {
	case res := <-ch:
		crypto.Wipe(owned)
		return res.Err
	case <-ctx.Done():
		go func() {
			<-ch
			crypto.Wipe(owned)
		}()
		return ctx.Err()
	}
}

func (m *Manager) unlock(ctx context.Context, secret []byte) error {
	m.mu.Lock()
	switch m.state {
	case StateReady:
		m.mu.Unlock()
		return nil
	case StateDestroyed:
		m.mu.Unlock()
		return ErrSessionDestroyed
	}
	m.setState(StateDeriving)
	m.mu.Unlock()

	key, err := m.derive(ctx, secret)

	m.mu.Lock()
	defer m.mu.Unlock()

	if err != nil {
		if m.state == StateDeriving {
			m.setState(StateUninitialized)
		}
		m.logger.Err(err).Str("func", "*Manager.unlock").Str("account_id", m.accountID).Msg("unlock failed")
		return err
	}

	// Lock ran while deriving
	if m.state == StateDestroyed {
		key.Destroy()
		return ErrSessionDestroyed
	}

	m.key = key
	m.setState(StateReady)
	return nil
}

// derive reads the account salt row, creating it on first use, and returns
// the key secret derives under it. secret is wiped before derive returns.
func (m *Manager) derive(ctx context.Context, secret []byte) (*crypto.Key, error) {
	defer crypto.Wipe(secret)

	account, err := m.salts.GetSalt(ctx, m.accountID)
	switch {
	case err == nil:
		return m.open(account, secret)
	case !errors.Is(err, store.ErrSaltNotFound):
		return nil, fmt.Errorf("read account salt: %w", err)
	}

	if err = m.ensureNoRecords(ctx); err != nil {
		return nil, err
	}

	account, key, err := m.enroll(secret)
	if err != nil {
		return nil, err
	}

	err = m.salts.CreateSalt(ctx, account)
	switch {
	case err == nil:
		m.logger.Info().Str("func", "*Manager.derive").Str("account_id", m.accountID).Msg("account salt created")
		return key, nil
	case errors.Is(err, store.ErrSaltAlreadyExists):
		key.Destroy()
		// another process won the insert; its row is authoritative
		account, err = m.salts.GetSalt(ctx, m.accountID)
		if err != nil {
			return nil, fmt.Errorf("re-read account salt: %w", err)
		}
		return m.open(account, secret)
	default:
		key.Destroy()
		return nil, fmt.Errorf("persist account salt: %w", err)
	}
}

// ensureNoRecords returns [ErrSaltMissing] when the account already has
// records.
func (m *Manager) ensureNoRecords(ctx context.Context) error {
	if m.records == nil {
		return nil
	}

	count, err := m.records.CountRecords(ctx, m.accountID)
	if err != nil {
		return fmt.Errorf("count account records: %w", err)
	}
	if count > 0 {
		m.logger.Error().
			Str("func", "*Manager.ensureNoRecords").
			Str("account_id", m.accountID).
			Int("records", count).
			Msg("salt is missing but records exist")
		return ErrSaltMissing
	}
	return nil
}

// enroll draws a new salt, derives the first key under it and seals the
// password verifier. The returned row carries the configured settings.
func (m *Manager) enroll(secret []byte) (models.AccountSalt, *crypto.Key, error) {
	salt, err := crypto.NewSalt(m.random)
	if err != nil {
		return models.AccountSalt{}, nil, err
	}

	key, err := m.deriveKey(secret, salt)
	if err != nil {
		return models.AccountSalt{}, nil, err
	}

	verifier, err := m.verifier.SealField(verifierPlaintext, key)
	if err != nil {
		key.Destroy()
		return models.AccountSalt{}, nil, fmt.Errorf("seal password verifier: %w", err)
	}

	params := m.deriver.Params().Canonical()
	return models.AccountSalt{
		AccountID:     m.accountID,
		Salt:          salt,
		KDFAlgorithm:  params.Algorithm,
		KDFIterations: params.Iterations,
		KDFMemory:     params.Memory,
		KDFThreads:    params.Threads,
		CipherSuite:   m.suite,
		Verifier:      verifier,
	}, key, nil
}

// open derives the key of an existing account and checks it against the
// stored verifier.
func (m *Manager) open(account models.AccountSalt, secret []byte) (*crypto.Key, error) {
	if err := m.checkSettings(account); err != nil {
		return nil, err
	}

	key, err := m.deriveKey(secret, account.Salt)
	if err != nil {
		return nil, err
	}

	plaintext, err := m.verifier.OpenField(account.Verifier, key)
	switch {
	case errors.Is(err, crypto.ErrAuthentication):
		key.Destroy()
		return nil, ErrWrongSecret
	case err != nil:
		key.Destroy()
		return nil, fmt.Errorf("open password verifier: %w", err)
	case subtle.ConstantTimeCompare([]byte(plaintext), []byte(verifierPlaintext)) != 1:
		key.Destroy()
		return nil, ErrWrongSecret
	}
	return key, nil
}

// checkSettings rejects a configuration whose KDF parameters or cipher suite
// differ from the ones the account was created with.
func (m *Manager) checkSettings(account models.AccountSalt) error {
	stored := crypto.KDFParams{
		Algorithm:  account.KDFAlgorithm,
		Iterations: account.KDFIterations,
		Memory:     account.KDFMemory,
		Threads:    account.KDFThreads,
	}.Canonical()
	configured := m.deriver.Params().Canonical()

	if stored == configured && account.CipherSuite == m.suite {
		return nil
	}

	m.logger.Error().
		Str("func", "*Manager.checkSettings").
		Str("account_id", m.accountID).
		Str("stored_kdf", stored.Algorithm).
		Uint32("stored_iterations", stored.Iterations).
		Str("stored_suite", account.CipherSuite).
		Str("configured_kdf", configured.Algorithm).
		Uint32("configured_iterations", configured.Iterations).
		Str("configured_suite", m.suite).
		Msg("configured crypto settings differ from the account")
	return fmt.Errorf("%w: account uses %s (%d iterations) with %s",
		ErrSettingsMismatch, stored.Algorithm, stored.Iterations, account.CipherSuite)
}

func (m *Manager) deriveKey(secret, salt []byte) (*crypto.Key, error) {
	key, err := m.deriver.Derive(secret, salt)
	if err != nil {
		return nil, fmt.Errorf("derive session key: %w", err)
	}
	return key, nil
}

// WithKey runs fn with the active key. Lock blocks until fn returns, so fn
// must not call Lock or Unlock. Outside Ready it returns [ErrVaultLocked] or
// [ErrSessionDestroyed] without calling fn. fn must not retain the key.
func (m *Manager) WithKey(fn func(key *crypto.Key) error) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	switch m.state {
	case StateReady:
		return fn(m.key)
	case StateDestroyed:
		return ErrSessionDestroyed
	default:
		return ErrVaultLocked
	}
}

// Lock wipes the key and moves the session to Destroyed. It is idempotent.
func (m *Manager) Lock() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.key != nil {
		m.key.Destroy()
		m.key = nil
	}
	if m.state != StateDestroyed {
		m.setState(StateDestroyed)
	}
}

// setState must be called with mu held.
func (m *Manager) setState(s State) {
	m.logger.Debug().
		Str("func", "*Manager.setState").
		Str("account_id", m.accountID).
		Stringer("from", m.state).
		Stringer("to", s).
		Msg("session state changed")
	m.state = s
}
