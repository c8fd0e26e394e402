package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/topgunprogrammer/DocChat-AI/internal/core/domain"
	"github.com/topgunprogrammer/DocChat-AI/internal/core/ports/driven"
	"github.com/topgunprogrammer/DocChat-AI/internal/core/ports/driving"
	"github.com/topgunprogrammer/DocChat-AI/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService extracts and caches the text of uploaded documents.
//
// Extraction for a given id runs at most once at a time. Concurrent callers
// for the same id share the result of the in-flight extraction. Failed
// extractions are not cached, so a later call retries.
type DocumentService struct {
	fetcher driven.ByteFetcher
	decoder driven.FormatDecoder
	cache   driven.TextCache
	flights singleflight.Group
}

// NewDocumentService creates a new document service.
func NewDocumentService(
	fetcher driven.ByteFetcher,
	decoder driven.FormatDecoder,
	cache driven.TextCache,
) *DocumentService {
	return &DocumentService{
		fetcher: fetcher,
		decoder: decoder,
		cache:   cache,
	}
}

// GetText returns the extracted text of a document.
func (s *DocumentService) GetText(ctx context.Context, documentID string) (string, error) {
	if text, ok := s.cache.Get(documentID); ok {
		return text, nil
	}

	// The extraction outlives any single caller so the cache entry is
	// always written once started.
	flightCtx := context.WithoutCancel(ctx)
	ch := s.flights.DoChan(documentID, func() (any, error) {
		return s.extract(flightCtx, documentID)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// extract fetches and decodes one document and stores the result.
func (s *DocumentService) extract(ctx context.Context, documentID string) (string, error) {
	// A flight that finished between our cache miss and joining may
	// already have stored the text.
	if text, ok := s.cache.Get(documentID); ok {
		return text, nil
	}

	logger.Debug("fetching document %s", documentID)
	content, err := s.fetcher.FetchBytes(ctx, documentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, documentID)
		}
		return "", fmt.Errorf("fetch document %s: %w", documentID, err)
	}

	format, err := domain.FormatFromFilename(documentID)
	if err != nil {
		return "", err
	}

	text, err := s.decoder.Decode(content, format)
	if err != nil {
		logger.Warn("decode %s as %s failed: %v", documentID, format, err)
		return "", fmt.Errorf("decode document %s: %w", documentID, err)
	}

	s.cache.Add(documentID, text)
	logger.Debug("cached %d chars for %s", len(text), documentID)
	return text, nil
}
