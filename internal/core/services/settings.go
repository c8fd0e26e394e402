package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/topgunprogrammer/DocChat-AI/internal/core/domain"
	"github.com/topgunprogrammer/DocChat-AI/internal/core/ports/driven"
	"github.com/topgunprogrammer/DocChat-AI/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyServerAddr        = "server.addr"
	keyLLMProvider       = "llm.provider"
	keyLLMModel          = "llm.model"
	keyLLMBaseURL        = "llm.base_url"
	keyLLMAPIKey         = "llm.api_key"
	keyLLMStreamTimeout  = "llm.stream_timeout_seconds"
	keyLLMRequestsPerSec = "llm.requests_per_second"
	keyStorageType       = "storage.type"
	keyStorageDir        = "storage.dir"
	keyStorageBucket     = "storage.bucket"
	keyStorageRegion     = "storage.region"
	keyStorageEndpoint   = "storage.endpoint"
	keyStoragePrefix     = "storage.prefix"
	keyStorageAccessKey  = "storage.access_key_id"
	keyStorageSecretKey  = "storage.secret_access_key"
	keyStorageURLTTL     = "storage.signed_url_ttl_seconds"
	keyCacheType         = "cache.type"
	keyCacheMaxEntries   = "cache.max_entries"
	keyCacheDir          = "cache.dir"
)

// valueKind describes how a setting is parsed from the command line.
type valueKind int

const (
	kindString valueKind = iota
	kindInt
	kindFloat
	kindProvider
	kindStorageType
	kindCacheType
)

// settingKinds lists every settable key in display order.
var settingKinds = []struct {
	key  string
	kind valueKind
}{
	{keyServerAddr, kindString},
	{keyLLMProvider, kindProvider},
	{keyLLMModel, kindString},
	{keyLLMBaseURL, kindString},
	{keyLLMAPIKey, kindString},
	{keyLLMStreamTimeout, kindInt},
	{keyLLMRequestsPerSec, kindFloat},
	{keyStorageType, kindStorageType},
	{keyStorageDir, kindString},
	{keyStorageBucket, kindString},
	{keyStorageRegion, kindString},
	{keyStorageEndpoint, kindString},
	{keyStoragePrefix, kindString},
	{keyStorageAccessKey, kindString},
	{keyStorageSecretKey, kindString},
	{keyStorageURLTTL, kindInt},
	{keyCacheType, kindCacheType},
	{keyCacheMaxEntries, kindInt},
	{keyCacheDir, kindString},
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Missing or invalid values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	provider := s.getProvider(keyLLMProvider, defaults.LLM.Provider)
	model := s.getString(keyLLMModel, domain.DefaultLLMModels()[provider])

	settings := &domain.AppSettings{
		Server: domain.ServerSettings{
			Addr: s.getString(keyServerAddr, defaults.Server.Addr),
		},
		LLM: domain.LLMSettings{
			Provider:          provider,
			Model:             model,
			BaseURL:           s.configStore.GetString(keyLLMBaseURL), // No default - adapters pick the provider URL
			APIKey:            s.configStore.GetString(keyLLMAPIKey),
			StreamTimeout:     s.getSeconds(keyLLMStreamTimeout, defaults.LLM.StreamTimeout),
			RequestsPerSecond: s.getNonNegativeFloat(keyLLMRequestsPerSec, defaults.LLM.RequestsPerSecond),
		},
		Storage: domain.StorageSettings{
			Type:            s.getStorageType(defaults.Storage.Type),
			Dir:             s.getString(keyStorageDir, defaults.Storage.Dir),
			Bucket:          s.configStore.GetString(keyStorageBucket),
			Region:          s.configStore.GetString(keyStorageRegion),
			Endpoint:        s.configStore.GetString(keyStorageEndpoint),
			Prefix:          s.configStore.GetString(keyStoragePrefix),
			AccessKeyID:     s.configStore.GetString(keyStorageAccessKey),
			SecretAccessKey: s.configStore.GetString(keyStorageSecretKey),
			SignedURLTTL:    s.getSeconds(keyStorageURLTTL, defaults.Storage.SignedURLTTL),
		},
		Cache: domain.CacheSettings{
			MaxEntries: s.getInt(keyCacheMaxEntries, defaults.Cache.MaxEntries),
			Dir:        s.configStore.GetString(keyCacheDir),
		},
	}
	settings.Cache.Type = s.getCacheType(defaults.Cache.Type, settings.Cache.MaxEntries)

	return settings, nil
}

// Set parses and persists a single setting.
func (s *SettingsService) Set(key, value string) error {
	kind, ok := lookupKind(key)
	if !ok {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	var stored any
	switch kind {
	case kindString:
		stored = value
	case kindInt:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: %s must be a non-negative integer", domain.ErrInvalidInput, key)
		}
		stored = n
	case kindFloat:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 {
			return fmt.Errorf("%w: %s must be a non-negative number", domain.ErrInvalidInput, key)
		}
		stored = f
	case kindProvider:
		if !domain.AIProvider(value).IsValid() {
			return fmt.Errorf("%w: invalid LLM provider: %s", domain.ErrInvalidInput, value)
		}
		stored = value
	case kindStorageType:
		switch domain.StorageType(value) {
		case domain.StorageTypeLocal, domain.StorageTypeS3:
			stored = value
		default:
			return fmt.Errorf("%w: invalid storage type: %s", domain.ErrInvalidInput, value)
		}
	case kindCacheType:
		if !domain.CacheType(value).IsValid() {
			return fmt.Errorf("%w: invalid cache type: %s", domain.ErrInvalidInput, value)
		}
		stored = value
	}

	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns the settable keys in display order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, 0, len(settingKinds))
	for _, sk := range settingKinds {
		keys = append(keys, sk.key)
	}
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func lookupKind(key string) (valueKind, bool) {
	for _, sk := range settingKinds {
		if sk.key == key {
			return sk.kind, true
		}
	}
	return 0, false
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getSeconds(key string, defaultVal time.Duration) time.Duration {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return time.Duration(val) * time.Second
}

func (s *SettingsService) getNonNegativeFloat(key string, defaultVal float64) float64 {
	val := s.configStore.GetFloat(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getProvider(key string, defaultVal domain.AIProvider) domain.AIProvider {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	provider := domain.AIProvider(val)
	if !provider.IsValid() {
		return defaultVal
	}
	return provider
}

func (s *SettingsService) getStorageType(defaultVal domain.StorageType) domain.StorageType {
	switch val := domain.StorageType(s.configStore.GetString(keyStorageType)); val {
	case domain.StorageTypeLocal, domain.StorageTypeS3:
		return val
	default:
		return defaultVal
	}
}

// getCacheType reads cache.type. When it is unset a positive max_entries
// selects the lru backend.
func (s *SettingsService) getCacheType(defaultVal domain.CacheType, maxEntries int) domain.CacheType {
	val := domain.CacheType(s.configStore.GetString(keyCacheType))
	if val == "" && maxEntries > 0 {
		return domain.CacheTypeLRU
	}
	if !val.IsValid() {
		return defaultVal
	}
	return val
}
