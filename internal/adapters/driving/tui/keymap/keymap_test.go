package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_Bindings(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		want    []string
	}{
		{"quit", km.Quit, []string{"ctrl+c"}},
		{"send", km.Send, []string{"enter"}},
		{"summarize", km.Summarize, []string{"ctrl+s"}},
		{"document", km.Document, []string{"ctrl+o"}},
		{"clear", km.Clear, []string{"ctrl+l"}},
		{"back", km.Back, []string{"esc"}},
		{"up", km.Up, []string{"up", "k"}},
		{"down", km.Down, []string{"down", "j"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.binding.Keys())
			assert.NotEmpty(t, tt.binding.Help().Desc)
		})
	}
}

func TestKeyMap_ChatHelp_WithoutDocument(t *testing.T) {
	km := DefaultKeyMap()

	help := km.ChatHelp(false)

	require.Len(t, help, 3)
	for _, b := range help {
		assert.NotEqual(t, "summarize", b.Help().Desc)
		assert.NotEqual(t, "document", b.Help().Desc)
	}
}

func TestKeyMap_ChatHelp_WithDocument(t *testing.T) {
	km := DefaultKeyMap()

	help := km.ChatHelp(true)

	require.Len(t, help, 5)
	assert.Equal(t, "summarize", help[1].Help().Desc)
	assert.Equal(t, "document", help[2].Help().Desc)
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("enter", km.Send))
	assert.True(t, Matches("k", km.Up))
	assert.False(t, Matches("q", km.Quit))
	assert.False(t, Matches("x", km.Send))
}
