// Package objectstore builds the driven.ObjectStore configured by
// domain.StorageSettings. Backends register themselves by storage type.
package objectstore

import (
	"fmt"
	"strings"
	"sync"

	"github.com/topgunprogrammer/DocChat-AI/internal/core/domain"
	"github.com/topgunprogrammer/DocChat-AI/internal/core/ports/driven"
)

// Factory creates an object store from settings.
type Factory func(settings domain.StorageSettings) (driven.ObjectStore, error)

var (
	registryMu sync.RWMutex
	registry   = map[domain.StorageType]Factory{}
)

// Register makes a backend available under a storage type.
func Register(storageType domain.StorageType, factory Factory) {
	key := domain.StorageType(strings.ToLower(strings.TrimSpace(string(storageType))))
	if key == "" || factory == nil {
		return
	}
	registryMu.Lock()
	registry[key] = factory
	registryMu.Unlock()
}

// New creates the object store selected by settings.Type.
func New(settings domain.StorageSettings) (driven.ObjectStore, error) {
	key := domain.StorageType(strings.ToLower(strings.TrimSpace(string(settings.Type))))
	if key == "" {
		return nil, fmt.Errorf("%w: storage.type is required", domain.ErrInvalidInput)
	}
	registryMu.RLock()
	factory := registry[key]
	registryMu.RUnlock()
	if factory == nil {
		return nil, fmt.Errorf("%w: unsupported storage type: %s", domain.ErrInvalidInput, settings.Type)
	}
	return factory(settings)
}

// validateKey rejects keys that could escape the store's namespace.
func validateKey(key string) error {
	if key == "" || key == "." || key == ".." ||
		strings.ContainsAny(key, "/\\") || strings.ContainsRune(key, 0) {
		return fmt.Errorf("%w: invalid object key %q", domain.ErrInvalidInput, key)
	}
	return nil
}
