package driving

import (
	"context"
	"io"

	"github.com/topgunprogrammer/DocChat-AI/internal/core/domain"
)

// DocumentService exposes the extracted text of uploaded documents.
type DocumentService interface {
	// GetText returns the document's extracted text, decoding it at most once
	// per process lifetime.
	GetText(ctx context.Context, documentID string) (string, error)
}

// UploadService stores new documents and issues links to them.
type UploadService interface {
	// Upload stores the bytes under a fresh key derived from filename.
	Upload(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (*domain.Upload, error)

	// SignedURL returns a time-limited URL for an existing key.
	SignedURL(ctx context.Context, key string) (string, error)

	// Download returns the stored bytes for a key.
	Download(ctx context.Context, key string) ([]byte, error)
}
