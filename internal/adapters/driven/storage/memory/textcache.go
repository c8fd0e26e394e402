package memory

import (
	"sync"

	"github.com/topgunprogrammer/DocChat-AI/internal/core/ports/driven"
)

// Ensure TextCache implements the interface.
var _ driven.TextCache = (*TextCache)(nil)

// TextCache is an unbounded in-memory implementation of driven.TextCache.
// Entries live for the lifetime of the process.
type TextCache struct {
	mu    sync.RWMutex
	texts map[string]string
}

// NewTextCache creates a new in-memory text cache.
func NewTextCache() *TextCache {
	return &TextCache{
		texts: make(map[string]string),
	}
}

// Get returns the cached text for a document id.
func (c *TextCache) Get(documentID string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	text, ok := c.texts[documentID]
	return text, ok
}

// Add stores text for a document id.
func (c *TextCache) Add(documentID, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.texts[documentID] = text
}

// Len returns the number of cached entries.
func (c *TextCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.texts)
}
