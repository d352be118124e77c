package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Logical table names. Each table is one JSON document replaced wholesale
// on every write; there are no partial updates.
const (
	TableUsers         = "users"
	TableLeaveRequests = "leaveRequests"
	TableCredentials   = "credentials"
	TableSession       = "session"
)

// ErrTableMissing is returned by backends for a table that has never been
// written. Callers decide whether that means "seed it" or "empty result".
var ErrTableMissing = errors.New("store: table does not exist")

//go:generate mockgen -source=store.go -destination=mock/backend_mock.go -package=mock
type Backend interface {
	ReadTable(ctx context.Context, name string) ([]byte, error)
	WriteTable(ctx context.Context, name string, data []byte) error
}

// Store is the single source of truth shared by every component. It wraps a
// Backend with one process-wide mutex: only one View or Update runs at a
// time, so multi-table reads never tear and the approve path's two table
// replacements are never interleaved with another writer.
//
// This is mutual exclusion, not rollback: a write that reached the backend
// before fn failed stays written. Services order their writes so the last
// one is the commit point.
type Store struct {
	sem     chan struct{}
	backend Backend
}

func New(backend Backend) *Store {
	return &Store{
		sem:     make(chan struct{}, 1),
		backend: backend,
	}
}

// Tx is a handle valid only inside View/Update. It decodes and encodes the
// typed table contents; values read are private copies, never shared state.
type Tx struct {
	ctx     context.Context
	backend Backend
}

// Read decodes the named table into v. It reports false with v untouched
// when the table has never been written.
func (tx *Tx) Read(name string, v any) (bool, error) {
	data, err := tx.backend.ReadTable(tx.ctx, name)
	if errors.Is(err, ErrTableMissing) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read table %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode table %s: %w", name, err)
	}
	return true, nil
}

// Replace overwrites the named table with v.
func (tx *Tx) Replace(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode table %s: %w", name, err)
	}
	if err := tx.backend.WriteTable(tx.ctx, name, data); err != nil {
		return fmt.Errorf("write table %s: %w", name, err)
	}
	return nil
}

// Delete replaces the named table with a JSON null, the cleared-table
// representation (used for the session snapshot on logout).
func (tx *Tx) Delete(name string) error {
	return tx.Replace(name, nil)
}

// View runs fn against a consistent snapshot of the store.
func (s *Store) View(ctx context.Context, fn func(tx *Tx) error) error {
	return s.locked(ctx, fn)
}

// Update runs fn with exclusive write access to the store.
func (s *Store) Update(ctx context.Context, fn func(tx *Tx) error) error {
	return s.locked(ctx, fn)
}

func (s *Store) locked(ctx context.Context, fn func(tx *Tx) error) error {
	select {
	case s.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-s.sem }()

	return fn(&Tx{ctx: ctx, backend: s.backend})
}
