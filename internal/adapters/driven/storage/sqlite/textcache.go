package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/topgunprogrammer/DocChat-AI/internal/core/ports/driven"
	"github.com/topgunprogrammer/DocChat-AI/internal/logger"
)

// Ensure TextCache implements the interface.
var _ driven.TextCache = (*TextCache)(nil)

// queryTimeout bounds a single cache query.
const queryTimeout = 5 * time.Second

// TextCache keeps extracted document text in the document_texts table.
// Database errors are logged and treated as cache misses, so extraction
// still works when the database is unavailable.
type TextCache struct {
	store *Store
}

// Get returns the cached text for a document.
func (c *TextCache) Get(documentID string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var text string
	err := c.store.db.QueryRowContext(ctx,
		"SELECT text FROM document_texts WHERE document_id = ?", documentID,
	).Scan(&text)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false
	}
	if err != nil {
		logger.Warn("reading cached text for %s: %v", documentID, err)
		return "", false
	}
	return text, true
}

// Add stores the text for a document. An existing entry is kept, since
// extracted text never changes.
func (c *TextCache) Add(documentID, text string) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	_, err := c.store.db.ExecContext(ctx, `
		INSERT INTO document_texts (document_id, text, extracted_at)
		VALUES (?, ?, ?)
		ON CONFLICT(document_id) DO NOTHING
	`, documentID, text, time.Now().UTC())
	if err != nil {
		logger.Warn("caching text for %s: %v", documentID, err)
	}
}

// Len returns the number of cached documents.
func (c *TextCache) Len() int {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var n int
	if err := c.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM document_texts").Scan(&n); err != nil {
		logger.Warn("counting cached texts: %v", err)
		return 0
	}
	return n
}
