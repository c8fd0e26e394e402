package objectstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/topgunprogrammer/DocChat-AI/internal/core/domain"
	"github.com/topgunprogrammer/DocChat-AI/internal/core/ports/driven"
)

// Ensure LocalStore implements the interface.
var _ driven.ObjectStore = (*LocalStore)(nil)

// filesRoute is where the HTTP server exposes locally stored objects.
const filesRoute = "/files/"

func init() {
	Register(domain.StorageTypeLocal, createLocalStore)
}

// LocalStore keeps objects as files in one directory.
type LocalStore struct {
	dir     string
	baseURL string
}

func createLocalStore(settings domain.StorageSettings) (driven.ObjectStore, error) {
	return NewLocalStore(settings.Dir, settings.Endpoint)
}

// NewLocalStore creates a store rooted at dir. URLs are built from baseURL,
// or are server-relative when baseURL is empty.
func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: local store dir is required", domain.ErrInvalidInput)
	}
	return &LocalStore{
		dir:     dir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Type returns the backend name.
func (s *LocalStore) Type() string {
	return string(domain.StorageTypeLocal)
}

// Put writes the object to a temporary file and renames it into place, so
// readers never see a partial object.
func (s *LocalStore) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create upload dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, key)); err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	return nil
}

// FetchBytes reads a stored object.
func (s *LocalStore) FetchBytes(_ context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.dir, key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return data, nil
}

// SignedURL returns the URL the HTTP server serves the object on.
// Local files are not signed, so ttl is unused.
func (s *LocalStore) SignedURL(_ context.Context, key string, _ time.Duration) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}
	if _, err := os.Stat(filepath.Join(s.dir, key)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("stat %s: %w", key, err)
	}
	return s.baseURL + filesRoute + url.PathEscape(key), nil
}
