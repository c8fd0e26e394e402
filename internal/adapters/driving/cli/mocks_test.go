package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/topgunprogrammer/DocChat-AI/internal/adapters/driven/storage/memory"
	"github.com/topgunprogrammer/DocChat-AI/internal/core/domain"
	"github.com/topgunprogrammer/DocChat-AI/internal/core/services"
	"github.com/topgunprogrammer/DocChat-AI/internal/normalisers"
)

// mockModelBackend streams its reply one raw line per word.
type mockModelBackend struct {
	mu       sync.Mutex
	reply    string
	err      error
	received [][]domain.Message
}

func (m *mockModelBackend) ParseFrame(line []byte) (string, error) {
	return string(line), nil
}

func (m *mockModelBackend) StreamChat(_ context.Context, messages []domain.Message) (io.ReadCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.received = append(m.received, messages)
	if m.err != nil {
		return nil, m.err
	}
	return io.NopCloser(strings.NewReader(m.reply + "\n")), nil
}

func (m *mockModelBackend) ModelName() string            { return "mock-model" }
func (m *mockModelBackend) Ping(_ context.Context) error { return nil }
func (m *mockModelBackend) Close() error                 { return nil }

func (m *mockModelBackend) calls() [][]domain.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.received
}

// testEnv holds the fakes installed by setupTestServices.
type testEnv struct {
	store   *memory.ObjectStore
	config  *memory.ConfigStore
	backend *mockModelBackend
}

func (e *testEnv) put(key, content string) {
	if err := e.store.Put(context.Background(), key, strings.NewReader(content), int64(len(content)), ""); err != nil {
		panic(err)
	}
}

// setupTestServices installs in-memory services and returns a cleanup
// function restoring the previous ones.
func setupTestServices() func() {
	_, cleanup := setupTestEnv()
	return cleanup
}

func setupTestEnv() (*testEnv, func()) {
	oldSettings, oldChat, oldDocs, oldUploads := settingsService, chatService, documentService, uploadService

	env := &testEnv{
		store:   memory.NewObjectStore(),
		config:  memory.NewConfigStore(),
		backend: &mockModelBackend{reply: "mock reply"},
	}
	docs := services.NewDocumentService(env.store, normalisers.NewDecoder(), memory.NewTextCache())

	settingsService = services.NewSettingsService(env.config)
	documentService = docs
	uploadService = services.NewUploadService(env.store, time.Minute)
	chatService = services.NewChatService(docs, env.backend, 0)

	return env, func() {
		closeAll()
		settingsService, chatService, documentService, uploadService = oldSettings, oldChat, oldDocs, oldUploads
		askDocument, askInteractive, extractStats, serveAddr, tuiDocument = "", false, false, "", ""
		mcpAddr, versionShort = "", false
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}
}

// execute runs the root command with args and returns its output.
func execute(args ...string) (string, error) {
	return executeWithInput("", args...)
}

func executeWithInput(input string, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
