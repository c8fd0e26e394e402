package ai

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/time/rate"

	"github.com/topgunprogrammer/DocChat-AI/internal/core/domain"
	"github.com/topgunprogrammer/DocChat-AI/internal/core/ports/driven"
)

// Ensure RateLimitedBackend implements the interface.
var _ driven.ModelBackend = (*RateLimitedBackend)(nil)

// RateLimitedBackend throttles how often streams are opened on a backend.
// Waiting respects the caller's context; nothing is retried.
type RateLimitedBackend struct {
	driven.ModelBackend
	bucket *rate.Limiter
}

// NewRateLimitedBackend wraps backend with a token bucket of
// requestsPerSecond and a burst of one.
func NewRateLimitedBackend(backend driven.ModelBackend, requestsPerSecond float64) *RateLimitedBackend {
	return &RateLimitedBackend{
		ModelBackend: backend,
		bucket:       rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

// StreamChat waits for a token and then opens the stream.
func (b *RateLimitedBackend) StreamChat(ctx context.Context, messages []domain.Message) (io.ReadCloser, error) {
	if err := b.bucket.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limit wait: %w", domain.ErrUpstreamStream, err)
	}
	return b.ModelBackend.StreamChat(ctx, messages)
}
