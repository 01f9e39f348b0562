package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	store := newTestStore(t)
	assert.NotEmpty(t, store.Path())
}

func TestStore_GetMissing(t *testing.T) {
	store := newTestStore(t)

	content, ok, err := store.Get(context.Background(), "simplified_gravity")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, content)
}

func TestStore_PutGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "simplified_gravity", "Gravity pulls objects toward each other."))

	content, ok, err := store.Get(ctx, "simplified_gravity")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Gravity pulls objects toward each other.", content)
}

func TestStore_PutReplacesLastWriterWins(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "general_moon", "first version"))
	require.NoError(t, store.Put(ctx, "general_moon", "second version"))

	content, ok, err := store.Get(ctx, "general_moon")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second version", content)

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, "simplified_photosynthesis", "Plants turn light into food."))
	require.NoError(t, store.Close())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	content, ok, err := reopened.Get(ctx, "simplified_photosynthesis")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Plants turn light into food.", content)
}

func TestStore_Clear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "a", "1"))
	require.NoError(t, store.Put(ctx, "b", "2"))
	require.NoError(t, store.Clear(ctx))

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
