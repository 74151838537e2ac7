package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// StateFileName is the on-disk name of the trip document. The name carries
// the schema version: when the document layout changes incompatibly, bump
// the suffix so old persisted data is ignored rather than misparsed.
const StateFileName = "trip_v1.json"

// StateStore defines durable storage for exactly one structured trip
// document: the metadata-only projection of the model, with every ticket
// payload stripped to empty.
type StateStore interface {
	// Save serializes and writes the whole document, replacing any
	// previous value. The write is durable before Save returns.
	Save(ctx context.Context, doc domain.TripModel) error

	// Load returns the last saved document. ok is false when nothing has
	// been saved, or when the stored value failed to parse; a parse
	// failure additionally returns a domain.ErrParse error for the caller
	// to log, but must never be treated as fatal.
	Load(ctx context.Context) (doc domain.TripModel, ok bool, err error)

	// Clear removes the document. Clearing an absent document is not an
	// error.
	Clear(ctx context.Context) error
}

// FileStateStore keeps the trip document as one JSON file in a directory.
type FileStateStore struct {
	path string
}

// NewFileStateStore creates the directory if needed and returns a store
// whose document lives at dir/StateFileName.
func NewFileStateStore(dir string) (*FileStateStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("store.NewFileStateStore: %w: %v", domain.ErrStorage, err)
	}
	return &FileStateStore{path: filepath.Join(dir, StateFileName)}, nil
}

// Save writes the document atomically: marshal, write to a temp file,
// rename into place.
func (s *FileStateStore) Save(_ context.Context, doc domain.TripModel) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("store.FileStateStore.Save: marshal: %v", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("store.FileStateStore.Save: %w: %v", domain.ErrStorage, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("store.FileStateStore.Save: %w: %v", domain.ErrStorage, err)
	}
	return nil
}

// Load reads and parses the document. A file that fails to parse is moved
// aside to a .corrupt backup and reported as absent, so one bad write never
// wedges the application; the caller gets the parse error to log.
func (s *FileStateStore) Load(_ context.Context) (domain.TripModel, bool, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.TripModel{}, false, nil
	}
	if err != nil {
		return domain.TripModel{}, false, fmt.Errorf("store.FileStateStore.Load: %w: %v", domain.ErrStorage, err)
	}

	doc, err := domain.ParseModel(data)
	if err != nil {
		_ = os.Rename(s.path, s.path+".corrupt")
		return domain.TripModel{}, false, fmt.Errorf("store.FileStateStore.Load: %w", err)
	}
	return doc, true, nil
}

// Clear removes the document file, ignoring an already-absent file.
func (s *FileStateStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("store.FileStateStore.Clear: %w: %v", domain.ErrStorage, err)
	}
	return nil
}
