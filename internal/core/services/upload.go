package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/topgunprogrammer/DocChat-AI/internal/core/domain"
	"github.com/topgunprogrammer/DocChat-AI/internal/core/ports/driven"
	"github.com/topgunprogrammer/DocChat-AI/internal/core/ports/driving"
	"github.com/topgunprogrammer/DocChat-AI/internal/logger"
)

// Ensure UploadService implements the interface.
var _ driving.UploadService = (*UploadService)(nil)

// UploadService stores uploaded documents under unique keys.
type UploadService struct {
	store driven.ObjectStore
	ttl   time.Duration
	newID func() string
}

// NewUploadService creates a new upload service.
// ttl is the lifetime of issued signed URLs.
func NewUploadService(store driven.ObjectStore, ttl time.Duration) *UploadService {
	return &UploadService{
		store: store,
		ttl:   ttl,
		newID: uuid.NewString,
	}
}

// Upload stores the document under "<uuid>-<filename>" and returns the key
// with a signed URL for it. The key keeps the original extension so the
// format can be inferred later.
func (s *UploadService) Upload(
	ctx context.Context,
	filename string,
	r io.Reader,
	size int64,
	contentType string,
) (*domain.Upload, error) {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "" || name == "." || name == "/" {
		return nil, fmt.Errorf("%w: missing file name", domain.ErrInvalidInput)
	}

	key := s.newID() + "-" + name
	if err := s.store.Put(ctx, key, r, size, contentType); err != nil {
		return nil, fmt.Errorf("store upload %s: %w", key, err)
	}
	logger.Info("stored %s (%d bytes) in %s storage", key, size, s.store.Type())

	url, err := s.SignedURL(ctx, key)
	if err != nil {
		return nil, err
	}

	return &domain.Upload{Key: key, URL: url}, nil
}

// SignedURL returns a time-limited URL for an existing key.
func (s *UploadService) SignedURL(ctx context.Context, key string) (string, error) {
	url, err := s.store.SignedURL(ctx, key, s.ttl)
	if err != nil {
		return "", fmt.Errorf("sign url for %s: %w", key, err)
	}
	return url, nil
}

// Download returns the stored bytes for a key.
func (s *UploadService) Download(ctx context.Context, key string) ([]byte, error) {
	data, err := s.store.FetchBytes(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", key, err)
	}
	return data, nil
}
