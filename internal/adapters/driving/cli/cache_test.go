package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/eli5-cli/internal/adapters/driven/cache/sqlite"
)

func setupTestCache(t *testing.T) func() {
	t.Helper()

	store, err := sqlite.NewStore(t.TempDir())
	require.NoError(t, err)

	prev := cacheStore
	cacheStore = store

	return func() {
		cacheStore = prev
		_ = store.Close()
	}
}

func TestCacheCmd_Use(t *testing.T) {
	assert.Equal(t, "cache", cacheCmd.Use)
	assert.Equal(t, "path", cachePathCmd.Use)
	assert.Equal(t, "count", cacheCountCmd.Use)
	assert.Equal(t, "clear", cacheClearCmd.Use)
}

func TestCacheCmd_Path(t *testing.T) {
	cleanup := setupTestServices(&mockExplainer{}, newMockSettings())
	defer cleanup()
	cacheCleanup := setupTestCache(t)
	defer cacheCleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"cache", "path"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "summaries.db")
}

func TestCacheCmd_Count(t *testing.T) {
	cleanup := setupTestServices(&mockExplainer{}, newMockSettings())
	defer cleanup()
	cacheCleanup := setupTestCache(t)
	defer cacheCleanup()

	require.NoError(t, cacheStore.Put(context.Background(), "simplified_gravity", "Gravity pulls things down."))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"cache", "count"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "1")
}

func TestCacheCmd_Clear(t *testing.T) {
	cleanup := setupTestServices(&mockExplainer{}, newMockSettings())
	defer cleanup()
	cacheCleanup := setupTestCache(t)
	defer cacheCleanup()

	ctx := context.Background()
	require.NoError(t, cacheStore.Put(ctx, "simplified_gravity", "Gravity pulls things down."))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"cache", "clear"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Cache cleared.")

	count, err := cacheStore.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCacheCmd_MemoryFallback(t *testing.T) {
	cleanup := setupTestServices(&mockExplainer{}, newMockSettings())
	defer cleanup()

	prev := cacheStore
	cacheStore = nil
	defer func() { cacheStore = prev }()

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"cache", "count"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.ErrorContains(t, err, "running in memory")
}