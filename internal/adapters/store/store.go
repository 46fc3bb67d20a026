// Package store persists plan snapshots so that later runs can detect drift.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/assemble/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.PlanStore with one JSON file per build mode.
type Store struct{}

// NewStore creates a new plan store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the saved snapshot for mode. A missing file is not an error.
func (s *Store) Get(root string, mode domain.BuildMode) (*domain.PlanSnapshot, error) {
	filename := s.filename(root, mode)
	//nolint:gosec // Path is built from the project root and a validated mode
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "file", filename)
	}

	var snapshot domain.PlanSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "file", filename)
	}

	return &snapshot, nil
}

// Put writes the snapshot, replacing any earlier one for the same mode.
// The file is written to a temporary sibling first and renamed into place.
func (s *Store) Put(root string, snapshot domain.PlanSnapshot) error {
	if !snapshot.Mode.Valid() {
		return &domain.InvalidModeError{Value: string(snapshot.Mode)}
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	filename := s.filename(root, snapshot.Mode)
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	tmp, err := os.CreateTemp(dir, "."+snapshot.Mode.String()+"-*.json")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := os.Chmod(tmp.Name(), domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	return nil
}

func (s *Store) filename(root string, mode domain.BuildMode) string {
	return filepath.Join(root, domain.DefaultPlanStorePath(), mode.String()+".json")
}
