package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/store"
)

func newBlobStore(t *testing.T) *store.FileBlobStore {
	t.Helper()
	s, err := store.NewFileBlobStore(filepath.Join(t.TempDir(), "files"))
	require.NoError(t, err)
	return s
}

// TestFileBlobStore_PutGetRoundTrip verifies a stored payload reads back
// byte-identical, and that Put overwrites an existing entry.
func TestFileBlobStore_PutGetRoundTrip(t *testing.T) {
	s := newBlobStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "ticket-1", []byte("payload v1")))

	got, err := s.Get(ctx, "ticket-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload v1"), got)

	require.NoError(t, s.Put(ctx, "ticket-1", []byte("payload v2")))
	got, err = s.Get(ctx, "ticket-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload v2"), got)
}

// TestFileBlobStore_GetAbsent verifies absence is a silent outcome:
// nil payload, nil error.
func TestFileBlobStore_GetAbsent(t *testing.T) {
	s := newBlobStore(t)

	got, err := s.Get(context.Background(), "never-stored")

	require.NoError(t, err)
	assert.Nil(t, got)
}

// TestFileBlobStore_DeleteIsIdempotent verifies deleting an absent id is
// not an error, and a deleted payload is gone.
func TestFileBlobStore_DeleteIsIdempotent(t *testing.T) {
	s := newBlobStore(t)
	ctx := context.Background()

	require.NoError(t, s.Delete(ctx, "never-stored"))

	require.NoError(t, s.Put(ctx, "ticket-1", []byte("bytes")))
	require.NoError(t, s.Delete(ctx, "ticket-1"))
	require.NoError(t, s.Delete(ctx, "ticket-1"))

	got, err := s.Get(ctx, "ticket-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

// TestFileBlobStore_ClearRemovesEverything exercises the reset path.
func TestFileBlobStore_ClearRemovesEverything(t *testing.T) {
	s := newBlobStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "a", []byte("1")))
	require.NoError(t, s.Put(ctx, "b", []byte("2")))

	require.NoError(t, s.Clear(ctx))

	for _, id := range []string{"a", "b"} {
		got, err := s.Get(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, got)
	}
}

// TestFileBlobStore_RejectsUnsafeIDs verifies ids that could escape the
// blob directory are refused on every operation.
func TestFileBlobStore_RejectsUnsafeIDs(t *testing.T) {
	s := newBlobStore(t)
	ctx := context.Background()

	for _, id := range []string{"", "..", "a/b", `a\b`} {
		assert.ErrorIs(t, s.Put(ctx, id, []byte("x")), domain.ErrValidation, "id %q", id)
		_, err := s.Get(ctx, id)
		assert.ErrorIs(t, err, domain.ErrValidation, "id %q", id)
	}
}

// TestFileBlobStore_EmptyPayloadIsAnEntry verifies an empty payload still
// creates a blob entry: a ticket added without file content must satisfy
// the id-has-entry invariant.
func TestFileBlobStore_EmptyPayloadIsAnEntry(t *testing.T) {
	s := newBlobStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "empty", nil))

	got, err := s.Get(ctx, "empty")
	require.NoError(t, err)
	assert.Len(t, got, 0)
}

// TestNewFileBlobStore_CreatesDirectory verifies construction makes the
// directory so first use never races a missing path.
func TestNewFileBlobStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "files")
	_, err := store.NewFileBlobStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
