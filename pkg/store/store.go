// Package store persists named graph snapshots.
//
// A snapshot is an opaque byte payload - in practice a text-encoded graph -
// stored under a caller-chosen name. The [Store] interface has four backends:
//
//   - file: JSON entries in a local directory, for CLI usage
//   - redis: shared storage for multi-instance deployments
//   - mongo: durable storage with queryable metadata
//   - null: discards everything, for tests and disabled persistence
//
// Every backend reports the same [ErrSnapshotNotFound] sentinel and emits
// events through the observability hook registry.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/graftlabs/graft/pkg/observability"
)

// Sentinel errors for snapshot operations.
var (
	// ErrSnapshotNotFound is returned by Load and Delete when no snapshot
	// exists under the given name.
	ErrSnapshotNotFound = errors.New("store: snapshot not found")

	// ErrEmptyName is returned when a snapshot name is the empty string.
	ErrEmptyName = errors.New("store: snapshot name is empty")
)

// Snapshot is a stored graph payload plus bookkeeping metadata.
// The ID is a fresh UUID per save, so re-saving under the same name yields a
// new identity; Name is the lookup key.
type Snapshot struct {
	ID      string    `json:"id" bson:"id"`
	Name    string    `json:"name" bson:"name"`
	Data    []byte    `json:"data" bson:"data"`
	SavedAt time.Time `json:"saved_at" bson:"saved_at"`
}

// Store persists snapshots under unique names. Saving an existing name
// overwrites the previous snapshot. Implementations are safe for concurrent
// use unless noted otherwise.
type Store interface {
	// Save stores data under name, replacing any previous snapshot, and
	// returns the stored record.
	Save(ctx context.Context, name string, data []byte) (Snapshot, error)

	// Load returns the snapshot stored under name, or ErrSnapshotNotFound.
	Load(ctx context.Context, name string) (Snapshot, error)

	// List returns all snapshots sorted by name. Payload data is included.
	List(ctx context.Context) ([]Snapshot, error)

	// Delete removes the snapshot under name, or returns ErrSnapshotNotFound.
	Delete(ctx context.Context, name string) error

	// Close releases backend resources.
	Close() error
}

// newSnapshot stamps a fresh identity onto a payload.
func newSnapshot(name string, data []byte) Snapshot {
	return Snapshot{
		ID:      uuid.NewString(),
		Name:    name,
		Data:    data,
		SavedAt: time.Now().UTC(),
	}
}

// instrumented decorates a Store with observability hook events.
type instrumented struct {
	backend string
	inner   Store
}

// instrument wraps s so every operation reports to the hook registry.
// Constructors apply it to their backend before returning.
func instrument(backend string, s Store) Store {
	return &instrumented{backend: backend, inner: s}
}

func (s *instrumented) Save(ctx context.Context, name string, data []byte) (Snapshot, error) {
	start := time.Now()
	snap, err := s.inner.Save(ctx, name, data)
	observability.Store().OnSave(ctx, s.backend, name, len(data), time.Since(start), err)
	return snap, err
}

func (s *instrumented) Load(ctx context.Context, name string) (Snapshot, error) {
	start := time.Now()
	snap, err := s.inner.Load(ctx, name)
	observability.Store().OnLoad(ctx, s.backend, name, time.Since(start), err)
	return snap, err
}

func (s *instrumented) List(ctx context.Context) ([]Snapshot, error) {
	return s.inner.List(ctx)
}

func (s *instrumented) Delete(ctx context.Context, name string) error {
	err := s.inner.Delete(ctx, name)
	observability.Store().OnDelete(ctx, s.backend, name, err)
	return err
}

func (s *instrumented) Close() error { return s.inner.Close() }
