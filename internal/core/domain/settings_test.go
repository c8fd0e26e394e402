package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAIProvider_IsValid(t *testing.T) {
	for _, p := range AllLLMProviders() {
		assert.True(t, p.IsValid(), p.String())
	}
	assert.False(t, AIProvider("gemini").IsValid())
}

func TestAIProvider_RequiresAPIKey(t *testing.T) {
	assert.False(t, AIProviderOllama.RequiresAPIKey())
	assert.True(t, AIProviderOpenAI.RequiresAPIKey())
	assert.True(t, AIProviderAnthropic.RequiresAPIKey())
}

func TestAIProvider_Description(t *testing.T) {
	assert.Equal(t, "Ollama (local)", AIProviderOllama.Description())
	assert.Equal(t, "Unknown", AIProvider("x").Description())
}

func TestLLMSettings_IsConfigured(t *testing.T) {
	tests := []struct {
		name     string
		settings LLMSettings
		expected bool
	}{
		{"ollama without key", LLMSettings{Provider: AIProviderOllama}, true},
		{"openai without key", LLMSettings{Provider: AIProviderOpenAI}, false},
		{"openai with key", LLMSettings{Provider: AIProviderOpenAI, APIKey: "sk-test"}, true},
		{"empty provider", LLMSettings{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.settings.IsConfigured())
		})
	}
}

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, ":8080", s.Server.Addr)
	assert.Equal(t, AIProviderOllama, s.LLM.Provider)
	assert.Equal(t, "llama2", s.LLM.Model)
	assert.Zero(t, s.LLM.StreamTimeout)
	assert.Equal(t, StorageTypeLocal, s.Storage.Type)
	assert.Equal(t, 5*time.Minute, s.Storage.SignedURLTTL)
	assert.Zero(t, s.Cache.MaxEntries)
	assert.Equal(t, CacheTypeMemory, s.Cache.Type)
	assert.True(t, s.LLM.IsConfigured())
}

func TestCacheType_IsValid(t *testing.T) {
	for _, c := range []CacheType{CacheTypeMemory, CacheTypeLRU, CacheTypeSQLite} {
		assert.True(t, c.IsValid(), c)
	}
	assert.False(t, CacheType("redis").IsValid())
	assert.False(t, CacheType("").IsValid())
}
