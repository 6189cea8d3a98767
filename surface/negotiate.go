package surface

import (
	"fmt"
	"log/slog"
	"slices"
)

// Negotiator binds drawables to a backend and picks the concrete
// configuration values for the resulting surface. It has no dependency
// on rendering and no side effects beyond the returned values.
type Negotiator[F Frame] struct {
	backend Backend[F]
	log     *slog.Logger
}

func NewNegotiator[F Frame](backend Backend[F], log *slog.Logger) *Negotiator[F] {
	return &Negotiator[F]{backend: backend, log: log}
}

// Options steer negotiation.
type Options struct {
	// VSync requests a vsync-preferring present mode.
	VSync bool

	// Width and Height override the drawable's reported size when both
	// are non-zero.
	Width  uint32
	Height uint32
}

// Bind creates the backend surface object for the drawable.
func (n *Negotiator[F]) Bind(drawable Drawable) (Binding[F], error) {
	binding, err := n.backend.Bind(drawable)
	if err != nil {
		return nil, fmt.Errorf("bind drawable: %w", err)
	}

	return binding, nil
}

// Negotiate queries the binding's capabilities and selects a pixel
// format, alpha mode, present mode and initial size.
//
// The pixel format is the first the backend reports, which is its
// preferred one. PostMultiplied alpha wins over PreMultiplied because
// it composites correctly against a transparent window background
// without an extra un-premultiply pass.
func (n *Negotiator[F]) Negotiate(binding Binding[F], drawable Drawable, opts Options) (Config, error) {
	caps := binding.Capabilities()

	if len(caps.Formats) == 0 {
		return Config{}, ErrIncompatible
	}
	format := caps.Formats[0]

	alphaMode := AlphaAuto
	if slices.Contains(caps.AlphaModes, AlphaPostMultiplied) {
		alphaMode = AlphaPostMultiplied
	} else if slices.Contains(caps.AlphaModes, AlphaPreMultiplied) {
		alphaMode = AlphaPreMultiplied
	}

	presentMode := PresentAutoNoVsync
	if opts.VSync {
		presentMode = PresentAutoVsync
	}

	width, height := opts.Width, opts.Height
	if width == 0 || height == 0 {
		width, height = drawable.Size()
	}

	n.log.Debug("Surface negotiated",
		slog.Any("format", format),
		slog.String("alphaMode", alphaMode.String()),
		slog.String("presentMode", presentMode.String()),
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
	)

	return Config{
		Width:       width,
		Height:      height,
		Format:      format,
		PresentMode: presentMode,
		AlphaMode:   alphaMode,
	}, nil
}
