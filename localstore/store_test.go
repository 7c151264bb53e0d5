package localstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	_, ok, err := s.Get(ctx, "missing")
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, s.Set(ctx, "a", "1"))
	v, ok, err := s.Get(ctx, "a")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	assert.NoError(t, s.Delete(ctx, "a"))
	_, ok, _ = s.Get(ctx, "a")
	assert.False(t, ok)

	// deleting a missing key is a no-op
	assert.NoError(t, s.Delete(ctx, "a"))
}

func TestMemStore_MultiGetSkipsMissing(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()
	_ = s.Set(ctx, "a", "1")
	_ = s.Set(ctx, "b", "2")

	got, err := s.MultiGet(ctx, []string{"a", "b", "c"})
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, got)
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.json")

	s, err := NewFileStore(path)
	assert.NoError(t, err)
	assert.NoError(t, s.Set(ctx, "patient-1", `{"id":"1"}`))
	assert.NoError(t, s.Set(ctx, "patient-2", `{"id":"2"}`))
	assert.NoError(t, s.Delete(ctx, "patient-2"))

	reopened, err := NewFileStore(path)
	assert.NoError(t, err)

	v, ok, err := reopened.Get(ctx, "patient-1")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"id":"1"}`, v)

	_, ok, _ = reopened.Get(ctx, "patient-2")
	assert.False(t, ok)

	keys, err := reopened.Keys(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"patient-1"}, keys)
}

func TestFileStore_RejectsUnparseableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	s, err := NewFileStore(path)
	assert.NoError(t, err)
	_ = s.Set(context.Background(), "a", "1")

	// clobber the file with garbage
	assert.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))
	_, err = NewFileStore(path)
	assert.Error(t, err)
}
