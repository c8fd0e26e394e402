package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topgunprogrammer/DocChat-AI/internal/core/domain"
)

// Test helper functions in settings.go

func TestMaskAPIKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Short key",
			input:    "abc123",
			expected: "****",
		},
		{
			name:     "Exactly 8 chars",
			input:    "12345678",
			expected: "****",
		},
		{
			name:     "Long key",
			input:    "sk-1234567890abcdef",
			expected: "sk-1...cdef",
		},
		{
			name:     "Empty key",
			input:    "",
			expected: "****",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := maskAPIKey(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSettingValue_KnowsEveryKey(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	settings := domain.DefaultAppSettings()
	for _, key := range settingsService.Keys() {
		_, ok := settingValue(&settings, key)
		assert.True(t, ok, key)
	}

	_, ok := settingValue(&settings, "llm.temperature")
	assert.False(t, ok)
}

func TestSettingValue_MasksSecrets(t *testing.T) {
	settings := domain.DefaultAppSettings()
	settings.LLM.APIKey = "sk-1234567890abcdef"
	settings.Storage.SignedURLTTL = 90 * time.Second

	v, _ := settingValue(&settings, "llm.api_key")
	assert.Equal(t, "sk-1...cdef", v)

	v, _ = settingValue(&settings, "storage.secret_access_key")
	assert.Equal(t, "(not set)", v)

	v, _ = settingValue(&settings, "storage.signed_url_ttl_seconds")
	assert.Equal(t, "90", v)
}

func TestSettingsCmd_Show(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("settings")

	require.NoError(t, err)
	assert.Contains(t, out, "[Server]")
	assert.Contains(t, out, "Address: :8080")
	assert.Contains(t, out, "Provider: Ollama (local)")
	assert.Contains(t, out, "Type: local")
	assert.Contains(t, out, "Max entries: unbounded")
}

func TestSettingsCmd_SetThenGet(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("settings", "set", "llm.model", "mistral")
	require.NoError(t, err)
	assert.Contains(t, out, "llm.model updated")

	out, err = execute("settings", "get", "llm.model")
	require.NoError(t, err)
	assert.Equal(t, "mistral\n", out)
}

func TestSettingsCmd_SetInvalid(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("settings", "set", "llm.provider", "gemini")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = execute("settings", "set", "cache.max_entries", "lots")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsCmd_GetUnknown(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("settings", "get", "nope")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown setting")
}

func TestSettingsCmd_CheckUnconfigured(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("settings", "set", "llm.provider", "openai")
	require.NoError(t, err)

	_, err = execute("settings", "check")
	assert.ErrorIs(t, err, domain.ErrLLMUnavailable)
}

func TestSettingsCmd_SetReadsValueFromStdin(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := executeWithInput("sk-from-stdin-123456\n", "settings", "set", "llm.api_key")
	require.NoError(t, err)

	settings, err := settingsService.Get()
	require.NoError(t, err)
	assert.Equal(t, "sk-from-stdin-123456", settings.LLM.APIKey)
}

func TestReadSecret_NonTerminal(t *testing.T) {
	assert.Equal(t, "secret", readSecret(strings.NewReader("  secret \nignored\n")))
	assert.Equal(t, "", readSecret(strings.NewReader("")))
}
