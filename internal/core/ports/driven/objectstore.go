package driven

import (
	"context"
	"io"
	"time"
)

// ByteFetcher reads the raw bytes of an uploaded document.
// Implementations return domain.ErrNotFound when no object exists for the id.
type ByteFetcher interface {
	FetchBytes(ctx context.Context, documentID string) ([]byte, error)
}

// ObjectStore persists uploaded documents.
// Backed by a local directory or an S3 bucket.
type ObjectStore interface {
	ByteFetcher

	// Put stores the object under key.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error

	// SignedURL returns a time-limited URL for reading the object.
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)

	// Type returns the backend name (e.g. "local", "s3").
	Type() string
}
