package driven

// ConfigStore reads and writes raw settings. Keys use dot notation for
// nested tables ("llm.model", "storage.bucket"); the settings service turns
// the raw values into typed domain.AppSettings and applies defaults.
type ConfigStore interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) (any, bool)

	// GetString returns "" when the key is missing or not a string.
	GetString(key string) string

	// GetInt returns 0 when the key is missing or not an integer.
	GetInt(key string) int

	// GetFloat returns the value as float64, widening integers.
	// Returns 0 when the key is missing or not numeric.
	GetFloat(key string) float64

	// Set stores a value and persists it immediately where the backend
	// supports persistence.
	Set(key string, value any) error

	// Load re-reads settings from the backend.
	Load() error

	// Path describes where settings live.
	Path() string
}
