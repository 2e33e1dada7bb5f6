package store

import "context"

// NullStore discards every save and reports nothing stored. Useful for tests
// and for running with persistence disabled.
type NullStore struct{}

// NewNullStore creates a null store.
func NewNullStore() Store {
	return instrument("null", &NullStore{})
}

// Save acknowledges the snapshot without storing it.
func (s *NullStore) Save(ctx context.Context, name string, data []byte) (Snapshot, error) {
	if name == "" {
		return Snapshot{}, ErrEmptyName
	}
	return newSnapshot(name, data), nil
}

// Load always reports not found.
func (s *NullStore) Load(ctx context.Context, name string) (Snapshot, error) {
	return Snapshot{}, ErrSnapshotNotFound
}

// List always returns an empty listing.
func (s *NullStore) List(ctx context.Context) ([]Snapshot, error) {
	return nil, nil
}

// Delete always reports not found.
func (s *NullStore) Delete(ctx context.Context, name string) error {
	return ErrSnapshotNotFound
}

// Close does nothing.
func (s *NullStore) Close() error { return nil }
