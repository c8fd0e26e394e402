package driven

import (
	"context"
	"io"

	"github.com/topgunprogrammer/DocChat-AI/internal/core/domain"
)

// FrameParser extracts the textual payload from one line of a streamed reply.
//
// A line that is well formed but carries no text (keep-alives, SSE event
// names, the final "done" record) yields an empty string and a nil error.
// A line that cannot be parsed yields an error; the caller skips it.
type FrameParser interface {
	ParseFrame(line []byte) (string, error)
}

// FrameParserFunc adapts a function to the FrameParser interface.
type FrameParserFunc func(line []byte) (string, error)

// ParseFrame calls f(line).
func (f FrameParserFunc) ParseFrame(line []byte) (string, error) {
	return f(line)
}

// ModelBackend streams chat completions from a language model.
//
// Implementations may include:
//   - Ollama (local models, newline-delimited JSON)
//   - OpenAI or any compatible server (server-sent events)
//   - Anthropic (server-sent events)
type ModelBackend interface {
	FrameParser

	// StreamChat sends the ordered messages and returns the raw response body.
	// The caller reads it to completion and closes it.
	StreamChat(ctx context.Context, messages []domain.Message) (io.ReadCloser, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
