package settings

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := Default()

	assert.Equal(t, uint32(1280), s.Window.Width)
	assert.Equal(t, uint32(720), s.Window.Height)
	assert.Equal(t, "trigon", s.Window.Title)
	assert.True(t, s.Window.Transparent)
	assert.True(t, s.Graphics.VSync)
	assert.Equal(t, GPUPreferenceHighPerformance, s.Graphics.GPUPreference)
	assert.False(t, s.Debug.Profile)
}

func TestParseKeepsDefaultsForMissingKeys(t *testing.T) {
	s, err := Parse(`
[graphics]
vsync = false
`)
	require.NoError(t, err)

	assert.False(t, s.Graphics.VSync)

	// untouched sections keep their defaults
	assert.Equal(t, uint32(1280), s.Window.Width)
	assert.Equal(t, "trigon", s.Window.Title)
}

func TestParseRejectsBrokenToml(t *testing.T) {
	_, err := Parse(`[window`)
	assert.Error(t, err)
}

func TestValidatedFixesBadValues(t *testing.T) {
	log := slog.New(slog.DiscardHandler)

	s := Default()
	s.Graphics.GPUPreference = "fastest"
	s.Window.Width = 0

	s = s.validated(log)

	assert.Equal(t, GPUPreferenceHighPerformance, s.Graphics.GPUPreference)
	assert.Equal(t, uint32(1280), s.Window.Width)
	assert.Equal(t, uint32(720), s.Window.Height)
}
