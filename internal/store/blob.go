// Package store contains all persistence logic for the Trip Planner.
// Structured trip data and large binary attachments are deliberately kept in
// two separate stores: the state store holds one small JSON document that is
// rewritten on every mutation, while the blob store holds ticket payloads
// (up to ~10MB each) that are written once per upload. Each store has an
// interface and a file-backed implementation. No business logic lives here.
package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// BlobStore defines durable storage for ticket payloads, keyed by ticket id.
// The service layer depends on this interface, not the file implementation,
// which allows it to be unit-tested with a mock.
type BlobStore interface {
	// Put stores or overwrites the payload under id. The write is durable
	// before Put returns. Fails with domain.ErrStorage if the medium
	// rejects the write.
	Put(ctx context.Context, id string, payload []byte) error

	// Get returns the payload for id, or (nil, nil) if no entry exists.
	// Absence is a valid, silent outcome: a ticket added before its blob
	// write completed simply has no payload yet.
	Get(ctx context.Context, id string) ([]byte, error)

	// Delete removes the payload for id. Deleting an absent id is not an
	// error.
	Delete(ctx context.Context, id string) error

	// Clear removes every payload. Used only by reset and import-replace.
	Clear(ctx context.Context) error
}

// FileBlobStore stores each payload as one file under a directory,
// named by ticket id.
type FileBlobStore struct {
	dir string
}

// NewFileBlobStore creates the blob directory if needed and returns a store
// rooted there.
func NewFileBlobStore(dir string) (*FileBlobStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("store.NewFileBlobStore: %w: %v", domain.ErrStorage, err)
	}
	return &FileBlobStore{dir: dir}, nil
}

// Put writes the payload to a temp file and renames it into place, so a
// crash mid-write never leaves a truncated payload under a valid id.
func (s *FileBlobStore) Put(_ context.Context, id string, payload []byte) error {
	path, err := s.path(id)
	if err != nil {
		return fmt.Errorf("store.FileBlobStore.Put: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("store.FileBlobStore.Put: %w: %v", domain.ErrStorage, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("store.FileBlobStore.Put: %w: %v", domain.ErrStorage, err)
	}
	return nil
}

// Get reads the payload for id. A missing entry returns (nil, nil).
func (s *FileBlobStore) Get(_ context.Context, id string) ([]byte, error) {
	path, err := s.path(id)
	if err != nil {
		return nil, fmt.Errorf("store.FileBlobStore.Get: %w", err)
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store.FileBlobStore.Get: %w: %v", domain.ErrStorage, err)
	}
	return data, nil
}

// Delete removes the payload for id, ignoring ids that are already gone.
func (s *FileBlobStore) Delete(_ context.Context, id string) error {
	path, err := s.path(id)
	if err != nil {
		return fmt.Errorf("store.FileBlobStore.Delete: %w", err)
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("store.FileBlobStore.Delete: %w: %v", domain.ErrStorage, err)
	}
	return nil
}

// Clear removes every stored payload but keeps the directory.
func (s *FileBlobStore) Clear(_ context.Context) error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("store.FileBlobStore.Clear: %w: %v", domain.ErrStorage, err)
	}
	for _, e := range entries {
		if err := os.Remove(filepath.Join(s.dir, e.Name())); err != nil {
			return fmt.Errorf("store.FileBlobStore.Clear: %w: %v", domain.ErrStorage, err)
		}
	}
	return nil
}

// path maps a ticket id to its file path, rejecting ids that could escape
// the blob directory.
func (s *FileBlobStore) path(id string) (string, error) {
	if id == "" || strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return "", fmt.Errorf("%w: invalid blob id %q", domain.ErrValidation, id)
	}
	return filepath.Join(s.dir, id), nil
}
