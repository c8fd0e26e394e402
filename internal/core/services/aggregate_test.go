package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topgunprogrammer/DocChat-AI/internal/core/domain"
	"github.com/topgunprogrammer/DocChat-AI/internal/core/ports/driven"
	"github.com/topgunprogrammer/DocChat-AI/internal/logger"
)

// ndjsonParser reads Ollama-style {"message":{"content":"..."}} frames.
var ndjsonParser = driven.FrameParserFunc(func(line []byte) (string, error) {
	var frame struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	}
	if err := json.Unmarshal(line, &frame); err != nil {
		return "", err
	}
	return frame.Message.Content, nil
})

func frame(text string) string {
	b, _ := json.Marshal(map[string]any{"message": map[string]string{"content": text}})
	return string(b) + "\n"
}

func TestAggregate_ConcatenatesInOrder(t *testing.T) {
	stream := frame("Hel") + frame("lo")

	text, err := Aggregate(context.Background(), strings.NewReader(stream), ndjsonParser)
	require.NoError(t, err)
	assert.Equal(t, "Hello", text)
}

func TestAggregate_EmptyStream(t *testing.T) {
	text, err := Aggregate(context.Background(), strings.NewReader(""), ndjsonParser)
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestAggregate_SkipsMalformedFrames(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	defer logger.SetOutput(os.Stderr)

	stream := frame("a") + "{not json\n" + frame("b")

	text, err := Aggregate(context.Background(), strings.NewReader(stream), ndjsonParser)
	require.NoError(t, err)
	assert.Equal(t, "ab", text)
	assert.Contains(t, buf.String(), "[WARN] skipping malformed frame")
}

func TestAggregate_ChunkBoundariesDoNotMatter(t *testing.T) {
	stream := frame("split ") + frame("across ") + frame("bytes")

	text, err := Aggregate(context.Background(), iotest.OneByteReader(strings.NewReader(stream)), ndjsonParser)
	require.NoError(t, err)
	assert.Equal(t, "split across bytes", text)

	text, err = Aggregate(context.Background(), iotest.HalfReader(strings.NewReader(stream)), ndjsonParser)
	require.NoError(t, err)
	assert.Equal(t, "split across bytes", text)
}

func TestAggregate_FinalLineWithoutNewline(t *testing.T) {
	stream := frame("one ") + strings.TrimSuffix(frame("two"), "\n")

	text, err := Aggregate(context.Background(), strings.NewReader(stream), ndjsonParser)
	require.NoError(t, err)
	assert.Equal(t, "one two", text)
}

func TestAggregate_HandlesCRLFAndBlankLines(t *testing.T) {
	stream := strings.TrimSuffix(frame("x"), "\n") + "\r\n\r\n\n" + frame("y")

	text, err := Aggregate(context.Background(), strings.NewReader(stream), ndjsonParser)
	require.NoError(t, err)
	assert.Equal(t, "xy", text)
}

func TestAggregate_EmptyPayloadFrames(t *testing.T) {
	stream := frame("") + frame("z") + `{"done":true}` + "\n"

	text, err := Aggregate(context.Background(), strings.NewReader(stream), ndjsonParser)
	require.NoError(t, err)
	assert.Equal(t, "z", text)
}

func TestAggregate_ReadErrorDiscardsPartialText(t *testing.T) {
	broken := io.MultiReader(
		strings.NewReader(frame("partial")),
		iotest.ErrReader(errors.New("connection reset")),
	)

	text, err := Aggregate(context.Background(), broken, ndjsonParser)
	assert.ErrorIs(t, err, domain.ErrUpstreamStream)
	assert.Empty(t, text)
}

func TestAggregate_AlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	text, err := Aggregate(ctx, strings.NewReader(frame("never")), ndjsonParser)
	assert.ErrorIs(t, err, domain.ErrUpstreamStream)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, text)
}

func TestAggregate_CancelUnblocksRead(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := Aggregate(ctx, pr, ndjsonParser)
		done <- err
	}()

	_, err := pw.Write([]byte(frame("first")))
	require.NoError(t, err)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, domain.ErrUpstreamStream)
	case <-time.After(time.Second):
		t.Fatal("Aggregate did not return after cancel")
	}
}

func TestAggregate_Timeout(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	text, err := Aggregate(ctx, pr, ndjsonParser)
	assert.ErrorIs(t, err, domain.ErrUpstreamStream)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Empty(t, text)
}
