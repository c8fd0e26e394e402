package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topgunprogrammer/DocChat-AI/internal/adapters/driven/storage/memory"
	"github.com/topgunprogrammer/DocChat-AI/internal/core/domain"
	"github.com/topgunprogrammer/DocChat-AI/internal/normalisers"
)

// countingFetcher counts fetches against an in-memory object store.
type countingFetcher struct {
	*memory.ObjectStore
	fetches atomic.Int32
}

func (f *countingFetcher) FetchBytes(ctx context.Context, id string) ([]byte, error) {
	f.fetches.Add(1)
	return f.ObjectStore.FetchBytes(ctx, id)
}

// gatedDecoder decodes plain text once release is closed.
type gatedDecoder struct {
	release chan struct{}
	started chan struct{}
	once    sync.Once
	calls   atomic.Int32
	fail    atomic.Bool
}

func newGatedDecoder() *gatedDecoder {
	return &gatedDecoder{release: make(chan struct{}), started: make(chan struct{})}
}

func (d *gatedDecoder) Decode(content []byte, _ domain.Format) (string, error) {
	d.calls.Add(1)
	d.once.Do(func() { close(d.started) })
	<-d.release
	if d.fail.Load() {
		return "", domain.ErrCorruptInput
	}
	return strings.ToUpper(string(content)), nil
}

func newTestDocumentService(t *testing.T, objects map[string]string) (*DocumentService, *countingFetcher, *memory.TextCache) {
	t.Helper()
	store := memory.NewObjectStore()
	for key, body := range objects {
		require.NoError(t, store.Put(context.Background(), key, strings.NewReader(body), int64(len(body)), ""))
	}
	fetcher := &countingFetcher{ObjectStore: store}
	cache := memory.NewTextCache()
	return NewDocumentService(fetcher, normalisers.NewDecoder(), cache), fetcher, cache
}

func TestNewDocumentService(t *testing.T) {
	svc, _, _ := newTestDocumentService(t, nil)
	require.NotNil(t, svc)
}

func TestDocumentService_GetText_PlainText(t *testing.T) {
	svc, _, cache := newTestDocumentService(t, map[string]string{"notes.txt": "hello world"})

	text, err := svc.GetText(context.Background(), "notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)
	assert.Equal(t, 1, cache.Len())
}

func TestDocumentService_GetText_CachesResult(t *testing.T) {
	svc, fetcher, _ := newTestDocumentService(t, map[string]string{"notes.txt": "cached"})
	ctx := context.Background()

	first, err := svc.GetText(ctx, "notes.txt")
	require.NoError(t, err)
	second, err := svc.GetText(ctx, "notes.txt")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), fetcher.fetches.Load())
}

func TestDocumentService_GetText_EmptyDocument(t *testing.T) {
	svc, fetcher, _ := newTestDocumentService(t, map[string]string{"empty.txt": ""})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		text, err := svc.GetText(ctx, "empty.txt")
		require.NoError(t, err)
		assert.Empty(t, text)
	}
	assert.Equal(t, int32(1), fetcher.fetches.Load())
}

func TestDocumentService_GetText_NotFound(t *testing.T) {
	svc, _, cache := newTestDocumentService(t, nil)

	_, err := svc.GetText(context.Background(), "missing.pdf")
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
	assert.Zero(t, cache.Len())
}

func TestDocumentService_GetText_UnsupportedFormat(t *testing.T) {
	svc, _, cache := newTestDocumentService(t, map[string]string{
		"slides.pptx": "PK",
		"README":      "no extension",
	})

	for _, id := range []string{"slides.pptx", "README"} {
		_, err := svc.GetText(context.Background(), id)
		assert.ErrorIs(t, err, domain.ErrUnsupportedFormat, id)
	}
	assert.Zero(t, cache.Len())
}

func TestDocumentService_GetText_CorruptInput(t *testing.T) {
	svc, _, cache := newTestDocumentService(t, map[string]string{"report.docx": "not a zip"})

	_, err := svc.GetText(context.Background(), "report.docx")
	assert.ErrorIs(t, err, domain.ErrCorruptInput)
	assert.Zero(t, cache.Len())
}

func TestDocumentService_GetText_ErrorsAreNotCached(t *testing.T) {
	store := memory.NewObjectStore()
	require.NoError(t, store.Put(context.Background(), "a.txt", strings.NewReader("retry"), 5, ""))
	decoder := newGatedDecoder()
	close(decoder.release)
	decoder.fail.Store(true)
	svc := NewDocumentService(store, decoder, memory.NewTextCache())

	_, err := svc.GetText(context.Background(), "a.txt")
	require.ErrorIs(t, err, domain.ErrCorruptInput)

	decoder.fail.Store(false)
	text, err := svc.GetText(context.Background(), "a.txt")
	require.NoError(t, err)
	assert.Equal(t, "RETRY", text)
	assert.Equal(t, int32(2), decoder.calls.Load())
}

func TestDocumentService_GetText_ConcurrentFirstAccessDecodesOnce(t *testing.T) {
	store := memory.NewObjectStore()
	require.NoError(t, store.Put(context.Background(), "shared.txt", strings.NewReader("shared"), 6, ""))
	decoder := newGatedDecoder()
	svc := NewDocumentService(store, decoder, memory.NewTextCache())

	const callers = 20
	results := make([]string, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.GetText(context.Background(), "shared.txt")
		}(i)
	}

	<-decoder.started
	close(decoder.release)
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, "SHARED", results[i])
	}
	assert.Equal(t, int32(1), decoder.calls.Load())
}

func TestDocumentService_GetText_CancelledWaiterLeavesExtractionRunning(t *testing.T) {
	store := memory.NewObjectStore()
	require.NoError(t, store.Put(context.Background(), "slow.txt", strings.NewReader("slow"), 4, ""))
	decoder := newGatedDecoder()
	cache := memory.NewTextCache()
	svc := NewDocumentService(store, decoder, cache)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := svc.GetText(ctx, "slow.txt")
		done <- err
	}()

	<-decoder.started
	cancel()
	err := <-done
	assert.True(t, errors.Is(err, context.Canceled))

	close(decoder.release)
	assert.Eventually(t, func() bool { return cache.Len() == 1 }, time.Second, 5*time.Millisecond)

	text, err := svc.GetText(context.Background(), "slow.txt")
	require.NoError(t, err)
	assert.Equal(t, "SLOW", text)
	assert.Equal(t, int32(1), decoder.calls.Load())
}
