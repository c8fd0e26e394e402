// Package cli implements the docchat command line.
//
// Commands use the package-level services. They are wired from the
// configuration on first use, so commands that only touch settings never
// open storage or contact a model backend. Tests replace them with fakes.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/topgunprogrammer/DocChat-AI/internal/adapters/driven/ai"
	"github.com/topgunprogrammer/DocChat-AI/internal/adapters/driven/config/file"
	"github.com/topgunprogrammer/DocChat-AI/internal/adapters/driven/storage/lru"
	"github.com/topgunprogrammer/DocChat-AI/internal/adapters/driven/storage/memory"
	"github.com/topgunprogrammer/DocChat-AI/internal/adapters/driven/storage/objectstore"
	"github.com/topgunprogrammer/DocChat-AI/internal/adapters/driven/storage/sqlite"
	"github.com/topgunprogrammer/DocChat-AI/internal/core/domain"
	"github.com/topgunprogrammer/DocChat-AI/internal/core/ports/driven"
	"github.com/topgunprogrammer/DocChat-AI/internal/core/ports/driving"
	"github.com/topgunprogrammer/DocChat-AI/internal/core/services"
	"github.com/topgunprogrammer/DocChat-AI/internal/logger"
	"github.com/topgunprogrammer/DocChat-AI/internal/normalisers"
)

// version is set at build time with -ldflags "-X ...cli.version=...".
var version = "dev"

var (
	verbose   bool
	configDir string
)

var (
	settingsService driving.SettingsService
	chatService     driving.ChatService
	documentService driving.DocumentService
	uploadService   driving.UploadService

	// closers are released when the command finishes.
	closers []io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "docchat",
	Short: "Chat with your documents",
	Long: `DocChat extracts the text of uploaded documents (.txt, .pdf, .docx, .xlsx)
and answers questions about them with a language model.

Run 'docchat serve' to start the HTTP API, or use the document, ask and
summarize commands directly.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.docchat)")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	defer logger.Sync()
	defer closeAll()
	return rootCmd.ExecuteContext(ctx)
}

func closeAll() {
	for _, c := range closers {
		if err := c.Close(); err != nil {
			logger.Warn("close: %v", err)
		}
	}
	closers = nil
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if settingsService != nil {
		return nil
	}

	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("failed to open config: %w", err)
	}
	settingsService = services.NewSettingsService(store)
	logger.Debug("using config %s", store.Path())
	return nil
}

// ensureServices wires the document and chat services from the current
// settings unless they are already set.
func ensureServices() error {
	if chatService != nil && documentService != nil && uploadService != nil {
		return nil
	}
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	store, err := objectstore.New(settings.Storage)
	if err != nil {
		return fmt.Errorf("failed to open %s storage: %w", settings.Storage.Type, err)
	}

	cache, err := newTextCache(settings.Cache)
	if err != nil {
		return err
	}

	backend, err := ai.CreateModelBackend(&settings.LLM)
	if err != nil {
		return fmt.Errorf("failed to create model backend: %w", err)
	}
	if backend != nil {
		closers = append(closers, backend)
	} else {
		logger.Warn("llm provider %q is not configured; chat is unavailable", settings.LLM.Provider)
	}

	docs := services.NewDocumentService(store, normalisers.NewDecoder(), cache)
	documentService = docs
	uploadService = services.NewUploadService(store, settings.Storage.SignedURLTTL)
	chatService = services.NewChatService(docs, backend, settings.LLM.StreamTimeout)

	logger.Debug("wired %s storage, model %s", store.Type(), modelName(backend))
	return nil
}

func newTextCache(settings domain.CacheSettings) (driven.TextCache, error) {
	switch settings.Type {
	case domain.CacheTypeLRU:
		size := settings.MaxEntries
		if size <= 0 {
			size = domain.DefaultLRUEntries
		}
		cache, err := lru.NewTextCache(size)
		if err != nil {
			return nil, fmt.Errorf("failed to create text cache: %w", err)
		}
		return cache, nil
	case domain.CacheTypeSQLite:
		store, err := sqlite.NewStore(settings.Dir)
		if err != nil {
			return nil, fmt.Errorf("failed to open text cache: %w", err)
		}
		closers = append(closers, store)
		logger.Debug("caching extracted text in %s", store.Path())
		return store.TextCache(), nil
	default:
		return memory.NewTextCache(), nil
	}
}

func modelName(backend driven.ModelBackend) string {
	if backend == nil {
		return "(none)"
	}
	return backend.ModelName()
}

// userError leads with the message meant for the user and keeps the cause.
func userError(err error) error {
	return fmt.Errorf("%s (%w)", domain.UserMessage(err), err)
}
