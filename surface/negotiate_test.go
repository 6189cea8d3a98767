package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	formatA PixelFormat = 10
	formatB PixelFormat = 20
)

func negotiateWith(t *testing.T, caps Capabilities, opts Options) (Config, error) {
	t.Helper()

	backend := &fakeBackend{caps: caps}
	nego := NewNegotiator[*fakeFrame](backend, testLogger())

	drawable := &fakeDrawable{width: 800, height: 600}

	binding, err := nego.Bind(drawable)
	require.NoError(t, err)

	return nego.Negotiate(binding, drawable, opts)
}

func TestNegotiateAlphaModePriority(t *testing.T) {
	tests := []struct {
		name      string
		supported []AlphaMode
		want      AlphaMode
	}{
		{"post over pre", []AlphaMode{AlphaPostMultiplied, AlphaPreMultiplied}, AlphaPostMultiplied},
		{"post over pre, reversed order", []AlphaMode{AlphaPreMultiplied, AlphaPostMultiplied}, AlphaPostMultiplied},
		{"pre only", []AlphaMode{AlphaPreMultiplied}, AlphaPreMultiplied},
		{"neither falls back to auto", []AlphaMode{AlphaOpaque, AlphaInherit}, AlphaAuto},
		{"empty falls back to auto", nil, AlphaAuto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caps := Capabilities{
				Formats:    []PixelFormat{formatA},
				AlphaModes: tt.supported,
			}

			config, err := negotiateWith(t, caps, Options{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, config.AlphaMode)
		})
	}
}

func TestNegotiateTakesPreferredFormat(t *testing.T) {
	caps := Capabilities{
		Formats:    []PixelFormat{formatB, formatA},
		AlphaModes: []AlphaMode{AlphaOpaque},
	}

	config, err := negotiateWith(t, caps, Options{})
	require.NoError(t, err)
	assert.Equal(t, formatB, config.Format)
}

func TestNegotiateFailsWithoutFormats(t *testing.T) {
	config, err := negotiateWith(t, Capabilities{}, Options{})
	require.ErrorIs(t, err, ErrIncompatible)
	assert.Zero(t, config)
}

func TestNegotiatePresentMode(t *testing.T) {
	caps := Capabilities{Formats: []PixelFormat{formatA}}

	config, err := negotiateWith(t, caps, Options{VSync: true})
	require.NoError(t, err)
	assert.Equal(t, PresentAutoVsync, config.PresentMode)

	config, err = negotiateWith(t, caps, Options{VSync: false})
	require.NoError(t, err)
	assert.Equal(t, PresentAutoNoVsync, config.PresentMode)
}

func TestNegotiateSizeOverride(t *testing.T) {
	caps := Capabilities{Formats: []PixelFormat{formatA}}

	config, err := negotiateWith(t, caps, Options{Width: 320, Height: 200})
	require.NoError(t, err)
	assert.Equal(t, uint32(320), config.Width)
	assert.Equal(t, uint32(200), config.Height)
}

// the full scenario from the drawing board: two formats, premultiplied
// alpha only, vsync on, drawable reporting 800x600.
func TestNegotiateScenario(t *testing.T) {
	caps := Capabilities{
		Formats:    []PixelFormat{formatA, formatB},
		AlphaModes: []AlphaMode{AlphaPreMultiplied},
	}

	config, err := negotiateWith(t, caps, Options{VSync: true})
	require.NoError(t, err)

	assert.Equal(t, Config{
		Width:       800,
		Height:      600,
		Format:      formatA,
		PresentMode: PresentAutoVsync,
		AlphaMode:   AlphaPreMultiplied,
	}, config)
}
