package domain

import "time"

const unknownDescription = "Unknown"

// AIProvider identifies a model backend provider.
type AIProvider string

// Available AI providers.
const (
	// AIProviderOllama is local Ollama instance.
	AIProviderOllama AIProvider = "ollama"

	// AIProviderOpenAI is OpenAI cloud API or any compatible server.
	AIProviderOpenAI AIProvider = "openai"

	// AIProviderAnthropic is Anthropic cloud API.
	AIProviderAnthropic AIProvider = "anthropic"
)

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderOllama, AIProviderOpenAI, AIProviderAnthropic:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p AIProvider) RequiresAPIKey() bool {
	return p == AIProviderOpenAI || p == AIProviderAnthropic
}

// IsLocal returns true if this provider runs locally.
func (p AIProvider) IsLocal() bool {
	return p == AIProviderOllama
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AIProvider) Description() string {
	switch p {
	case AIProviderOllama:
		return "Ollama (local)"
	case AIProviderOpenAI:
		return "OpenAI (cloud)"
	case AIProviderAnthropic:
		return "Anthropic (cloud)"
	default:
		return unknownDescription
	}
}

// LLMSettings holds model backend configuration.
type LLMSettings struct {
	// Provider is the LLM service provider.
	Provider AIProvider

	// Model is the LLM model name.
	Model string

	// BaseURL is the API endpoint. Empty uses the provider default.
	BaseURL string

	// APIKey is the API key (for OpenAI/Anthropic).
	APIKey string

	// StreamTimeout bounds one streamed reply. Zero means no timeout.
	StreamTimeout time.Duration

	// RequestsPerSecond limits dispatches to the backend. Zero means unlimited.
	RequestsPerSecond float64
}

// IsConfigured returns true if the LLM provider is set up.
func (l LLMSettings) IsConfigured() bool {
	if !l.Provider.IsValid() {
		return false
	}
	if l.Provider.RequiresAPIKey() && l.APIKey == "" {
		return false
	}
	return true
}

// StorageType identifies an object storage backend.
type StorageType string

// Available storage backends.
const (
	// StorageTypeLocal keeps uploads in a directory on disk.
	StorageTypeLocal StorageType = "local"

	// StorageTypeS3 keeps uploads in an S3 (or S3-compatible) bucket.
	StorageTypeS3 StorageType = "s3"
)

// StorageSettings holds object storage configuration.
type StorageSettings struct {
	// Type selects the backend.
	Type StorageType

	// Dir is the upload directory for the local backend.
	Dir string

	// Bucket is the S3 bucket name.
	Bucket string

	// Region is the S3 region.
	Region string

	// Endpoint overrides the S3 endpoint for compatible services.
	Endpoint string

	// Prefix is prepended to every object key.
	Prefix string

	// AccessKeyID and SecretAccessKey are static S3 credentials.
	// When empty the default AWS credential chain is used.
	AccessKeyID     string
	SecretAccessKey string

	// SignedURLTTL is how long issued document URLs stay valid.
	SignedURLTTL time.Duration
}

// CacheType identifies an extracted-text cache backend.
type CacheType string

// Available cache backends.
const (
	// CacheTypeMemory keeps every entry in an unbounded map.
	CacheTypeMemory CacheType = "memory"

	// CacheTypeLRU keeps at most MaxEntries entries, evicting the least recently used.
	CacheTypeLRU CacheType = "lru"

	// CacheTypeSQLite persists entries in a SQLite database across restarts.
	CacheTypeSQLite CacheType = "sqlite"
)

// IsValid returns true if the cache type is recognised.
func (c CacheType) IsValid() bool {
	switch c {
	case CacheTypeMemory, CacheTypeLRU, CacheTypeSQLite:
		return true
	default:
		return false
	}
}

// DefaultLRUEntries bounds an LRU cache when no size is configured.
const DefaultLRUEntries = 128

// CacheSettings holds extracted-text cache configuration.
type CacheSettings struct {
	// Type selects the backend.
	Type CacheType

	// MaxEntries bounds the lru backend. Zero keeps every entry in memory.
	MaxEntries int

	// Dir holds the sqlite database. Empty uses ~/.docchat/data.
	Dir string
}

// ServerSettings holds HTTP server configuration.
type ServerSettings struct {
	// Addr is the listen address.
	Addr string
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Server holds HTTP server settings.
	Server ServerSettings

	// LLM holds model backend settings.
	LLM LLMSettings

	// Storage holds object storage settings.
	Storage StorageSettings

	// Cache holds extracted-text cache settings.
	Cache CacheSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// The defaults talk to a local Ollama and keep uploads on disk.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Server: ServerSettings{
			Addr: ":8080",
		},
		LLM: LLMSettings{
			Provider: AIProviderOllama,
			Model:    DefaultLLMModels()[AIProviderOllama],
		},
		Storage: StorageSettings{
			Type:         StorageTypeLocal,
			Dir:          "uploads",
			SignedURLTTL: 5 * time.Minute,
		},
		Cache: CacheSettings{
			Type: CacheTypeMemory,
		},
	}
}

// AllLLMProviders returns providers that support streamed chat.
func AllLLMProviders() []AIProvider {
	return []AIProvider{
		AIProviderOllama,
		AIProviderOpenAI,
		AIProviderAnthropic,
	}
}

// DefaultLLMModels returns default models for each LLM provider.
func DefaultLLMModels() map[AIProvider]string {
	return map[AIProvider]string{
		AIProviderOllama:    "llama2",
		AIProviderOpenAI:    "gpt-4o-mini",
		AIProviderAnthropic: "claude-3-5-sonnet-latest",
	}
}
