package memory

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topgunprogrammer/DocChat-AI/internal/core/domain"
)

func TestObjectStore_PutFetch(t *testing.T) {
	store := NewObjectStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "notes.txt", strings.NewReader("hello"), 5, "text/plain"))

	data, err := store.FetchBytes(ctx, "notes.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)

	// Mutating the returned slice does not change the stored object.
	data[0] = 'J'
	again, err := store.FetchBytes(ctx, "notes.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), again)
}

func TestObjectStore_FetchMissing(t *testing.T) {
	_, err := NewObjectStore().FetchBytes(context.Background(), "missing.pdf")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestObjectStore_SignedURL(t *testing.T) {
	store := NewObjectStore()
	ctx := context.Background()

	_, err := store.SignedURL(ctx, "missing.pdf", time.Minute)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, store.Put(ctx, "a b.pdf", strings.NewReader("%PDF"), 4, "application/pdf"))
	url, err := store.SignedURL(ctx, "a b.pdf", time.Minute)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "memory://a%20b.pdf?expires="), url)
}

func TestObjectStore_Type(t *testing.T) {
	assert.Equal(t, "memory", NewObjectStore().Type())
}
