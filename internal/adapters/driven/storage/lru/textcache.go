// Package lru provides a size-bounded text cache.
package lru

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/topgunprogrammer/DocChat-AI/internal/core/ports/driven"
)

// Ensure TextCache implements the interface.
var _ driven.TextCache = (*TextCache)(nil)

// TextCache keeps the most recently used extracted texts.
// Evicted documents are decoded again on their next request.
type TextCache struct {
	cache *lru.Cache[string, string]
}

// NewTextCache creates a cache holding at most size documents.
func NewTextCache(size int) (*TextCache, error) {
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("create lru cache: %w", err)
	}
	return &TextCache{cache: cache}, nil
}

// Get returns the cached text for a document id.
func (c *TextCache) Get(documentID string) (string, bool) {
	return c.cache.Get(documentID)
}

// Add stores text for a document id, evicting the least recently used entry
// when full.
func (c *TextCache) Add(documentID, text string) {
	c.cache.Add(documentID, text)
}

// Len returns the number of cached entries.
func (c *TextCache) Len() int {
	return c.cache.Len()
}
