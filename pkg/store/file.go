package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// FileStore keeps snapshots as JSON files in a directory, one file per
// snapshot. Filenames are derived from a hash of the snapshot name, with a
// two-character subdirectory for distribution, so arbitrary names are safe.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-based store rooted at dir, creating the
// directory if needed.
func NewFileStore(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	return instrument("file", &FileStore{dir: dir}), nil
}

func (s *FileStore) Save(ctx context.Context, name string, data []byte) (Snapshot, error) {
	if name == "" {
		return Snapshot{}, ErrEmptyName
	}
	snap := newSnapshot(name, data)
	blob, err := json.Marshal(snap)
	if err != nil {
		return Snapshot{}, err
	}
	path := s.path(name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return Snapshot{}, err
	}
	if err := os.WriteFile(path, blob, 0644); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func (s *FileStore) Load(ctx context.Context, name string) (Snapshot, error) {
	if name == "" {
		return Snapshot{}, ErrEmptyName
	}
	blob, err := os.ReadFile(s.path(name))
	if os.IsNotExist(err) {
		return Snapshot{}, ErrSnapshotNotFound
	}
	if err != nil {
		return Snapshot{}, err
	}
	var snap Snapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("corrupt snapshot %s: %w", name, err)
	}
	return snap, nil
}

func (s *FileStore) List(ctx context.Context) ([]Snapshot, error) {
	var snaps []Snapshot
	err := filepath.WalkDir(s.dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".json") {
			return err
		}
		blob, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var snap Snapshot
		if err := json.Unmarshal(blob, &snap); err != nil {
			// Skip foreign files rather than failing the whole listing.
			return nil
		}
		snaps = append(snaps, snap)
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(snaps, func(a, b Snapshot) int { return strings.Compare(a.Name, b.Name) })
	return snaps, nil
}

func (s *FileStore) Delete(ctx context.Context, name string) error {
	if name == "" {
		return ErrEmptyName
	}
	err := os.Remove(s.path(name))
	if os.IsNotExist(err) {
		return ErrSnapshotNotFound
	}
	return err
}

// Close does nothing for the file store.
func (s *FileStore) Close() error { return nil }

func (s *FileStore) path(name string) string {
	hash := hashName(name)
	return filepath.Join(s.dir, hash[:2], hash[2:]+".json")
}
