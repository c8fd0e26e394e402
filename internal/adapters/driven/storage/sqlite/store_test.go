package sqlite

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)
	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, "documents.db"), store.Path())
	assert.FileExists(t, store.Path())
}

func TestNewStore_MigrationsAreRecorded(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	var version int
	require.NoError(t, store.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version))
	assert.Equal(t, 1, version)
	require.NoError(t, store.Close())

	// Reopening must not re-run applied migrations.
	store, err = NewStore(dir)
	require.NoError(t, err)
	defer store.Close()
	var count int
	require.NoError(t, store.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestTextCache_AddGet(t *testing.T) {
	cache := setupTestStore(t).TextCache()

	_, ok := cache.Get("a-notes.txt")
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len())

	cache.Add("a-notes.txt", "hello")
	text, ok := cache.Get("a-notes.txt")
	require.True(t, ok)
	assert.Equal(t, "hello", text)
	assert.Equal(t, 1, cache.Len())
}

func TestTextCache_EmptyTextIsAHit(t *testing.T) {
	cache := setupTestStore(t).TextCache()

	cache.Add("a-empty.txt", "")

	text, ok := cache.Get("a-empty.txt")
	assert.True(t, ok)
	assert.Equal(t, "", text)
}

func TestTextCache_FirstWriteWins(t *testing.T) {
	cache := setupTestStore(t).TextCache()

	cache.Add("a-notes.txt", "first")
	cache.Add("a-notes.txt", "second")

	text, _ := cache.Get("a-notes.txt")
	assert.Equal(t, "first", text)
	assert.Equal(t, 1, cache.Len())
}

func TestTextCache_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	store.TextCache().Add("a-report.pdf", "page one\n\npage two")
	require.NoError(t, store.Close())

	store, err = NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	text, ok := store.TextCache().Get("a-report.pdf")
	require.True(t, ok)
	assert.Equal(t, "page one\n\npage two", text)
}

func TestTextCache_ClosedDatabaseIsAMiss(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	cache := store.TextCache()
	cache.Add("a.txt", "x")
	require.NoError(t, store.Close())

	_, ok := cache.Get("a.txt")
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len())
	cache.Add("b.txt", "y")
}

func TestTextCache_ConcurrentAccess(t *testing.T) {
	cache := setupTestStore(t).TextCache()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("doc-%d.txt", i%5)
			cache.Add(id, id)
			text, ok := cache.Get(id)
			assert.True(t, ok)
			assert.Equal(t, id, text)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 5, cache.Len())
}

func TestPendingMigrations(t *testing.T) {
	fsys := fstest.MapFS{
		"010_later.up.sql":    {Data: []byte("SELECT 1;")},
		"002_second.up.sql":   {Data: []byte("SELECT 1;")},
		"001_first.up.sql":    {Data: []byte("SELECT 1;")},
		"001_first.down.sql":  {Data: []byte("SELECT 1;")},
		"notes.txt":           {Data: []byte("ignored")},
		"unnumbered_x.up.sql": {Data: []byte("SELECT 1;")},
	}

	tests := []struct {
		name    string
		current int
		want    []int
	}{
		{"fresh database", 0, []int{1, 2, 10}},
		{"numeric order past version one", 1, []int{2, 10}},
		{"up to date", 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pending, err := pendingMigrations(fsys, tt.current)
			require.NoError(t, err)

			var got []int
			for _, m := range pending {
				got = append(got, m.version)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMigrate_FailedMigrationIsNotRecorded(t *testing.T) {
	store := setupTestStore(t)

	err := store.migrate(fstest.MapFS{
		"900_broken.up.sql": {Data: []byte("CREATE TABLE broken (")},
	})

	require.Error(t, err)
	var count int
	require.NoError(t, store.db.QueryRow("SELECT COUNT(*) FROM schema_migrations WHERE version = 900").Scan(&count))
	assert.Equal(t, 0, count)
}
