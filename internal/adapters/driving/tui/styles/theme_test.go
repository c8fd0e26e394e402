package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topgunprogrammer/DocChat-AI/internal/core/domain"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	assert.NotEmpty(t, string(theme.Primary))
	assert.NotEmpty(t, string(theme.Secondary))
	assert.NotEmpty(t, string(theme.Foreground))
	assert.NotEmpty(t, string(theme.Muted))
	assert.NotEmpty(t, string(theme.Error))
	assert.NotEmpty(t, string(theme.Border))
	assert.NotEmpty(t, string(theme.Bar))
}

func TestDefaultTheme_SpeakersAreDistinct(t *testing.T) {
	theme := DefaultTheme()

	assert.NotEqual(t, theme.Primary, theme.Secondary)
	assert.NotEqual(t, theme.Error, theme.Primary)
}

func TestNewStyles_WithTheme(t *testing.T) {
	theme := &Theme{Primary: lipgloss.Color("#000001"), Secondary: lipgloss.Color("#000002")}

	s := NewStyles(theme)

	require.NotNil(t, s)
	assert.Equal(t, theme, s.Theme())
	assert.Equal(t, lipgloss.Color("#000001"), s.UserLabel.GetForeground())
	assert.Equal(t, lipgloss.Color("#000002"), s.AssistantLabel.GetForeground())
}

func TestNewStyles_NilTheme(t *testing.T) {
	s := NewStyles(nil)

	require.NotNil(t, s)
	require.NotNil(t, s.Theme())
	assert.Equal(t, DefaultTheme().Primary, s.Theme().Primary)
}

func TestDefaultStyles(t *testing.T) {
	s := DefaultStyles()

	require.NotNil(t, s)
	assert.True(t, s.Title.GetBold())
	assert.True(t, s.UserLabel.GetBold())
	assert.True(t, s.AssistantLabel.GetBold())
}

func TestStyles_Render(t *testing.T) {
	s := DefaultStyles()

	assert.Contains(t, s.Normal.Render("hello"), "hello")
	assert.Contains(t, s.Error.Render("boom"), "boom")
}

func TestStyles_Speaker(t *testing.T) {
	s := DefaultStyles()

	label, style := s.Speaker(domain.RoleUser)
	assert.Equal(t, "You: ", label)
	assert.Equal(t, s.UserLabel.GetForeground(), style.GetForeground())

	label, style = s.Speaker(domain.RoleAssistant)
	assert.Equal(t, "Assistant: ", label)
	assert.Equal(t, s.AssistantLabel.GetForeground(), style.GetForeground())

	label, _ = s.Speaker(domain.RoleSystem)
	assert.Empty(t, label)
}
