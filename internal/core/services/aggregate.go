package services

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/topgunprogrammer/DocChat-AI/internal/core/domain"
	"github.com/topgunprogrammer/DocChat-AI/internal/core/ports/driven"
	"github.com/topgunprogrammer/DocChat-AI/internal/logger"
)

// maxLoggedFrame bounds how much of a malformed frame is logged.
const maxLoggedFrame = 120

// Aggregate reads a streamed model reply and returns the concatenated text.
//
// The stream is split into lines regardless of how it is chunked on the wire.
// A final line without a trailing newline is still parsed. Lines the parser
// rejects are logged and skipped. Any read failure, cancellation or deadline
// fails the whole reply with domain.ErrUpstreamStream and no partial text.
//
// If r is an io.Closer it is closed when ctx is done so a blocked read returns.
func Aggregate(ctx context.Context, r io.Reader, parser driven.FrameParser) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrUpstreamStream, err)
	}
	if c, ok := r.(io.Closer); ok {
		stop := context.AfterFunc(ctx, func() { _ = c.Close() })
		defer stop()
	}

	var (
		reply  strings.Builder
		frames int
		reader = bufio.NewReader(r)
	)
	for {
		line, readErr := reader.ReadBytes('\n')
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("%w: %w", domain.ErrUpstreamStream, ctxErr)
		}
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			logger.Warn("model stream read failed after %d frames: %v", frames, readErr)
			return "", fmt.Errorf("%w: %w", domain.ErrUpstreamStream, readErr)
		}

		if line = bytes.TrimRight(line, "\r\n"); len(bytes.TrimSpace(line)) > 0 {
			frames++
			text, err := parser.ParseFrame(line)
			if err != nil {
				logger.Warn("skipping malformed frame %q: %v", truncate(line, maxLoggedFrame), err)
			} else {
				reply.WriteString(text)
			}
		}

		if readErr != nil {
			break
		}
	}

	logger.Debug("aggregated %d frames into %d chars", frames, reply.Len())
	return reply.String(), nil
}

// truncate shortens b to at most n bytes for logging.
func truncate(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[:n]
}
