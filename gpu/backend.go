package gpu

import (
	"slices"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/xorbits/trigon/surface"
)

// Bind creates a wgpu surface for the drawable. The surface created
// during New for adapter selection is handed out on the first call;
// later calls (surface recreation after a loss) build a fresh one from
// the same native window.
func (c *Context) Bind(drawable surface.Drawable) (surface.Binding[*Frame], error) {
	d, ok := drawable.(Drawable)
	if !ok {
		return nil, surface.ErrUnsupportedPlatform
	}

	var s *wgpu.Surface
	if c.initial != nil && d == c.compatTo {
		s = c.initial
		c.initial = nil
	} else {
		sd := d.SurfaceDescriptor()
		if sd == nil {
			return nil, surface.ErrUnsupportedPlatform
		}

		s = c.Instance.CreateSurface(sd)
	}

	// captured here so a binding created for recovery picks the same
	// concrete present mode as the original one
	presentModes := s.GetCapabilities(c.Adapter).PresentModes

	return &binding{ctx: c, surface: s, presentModes: presentModes}, nil
}

type binding struct {
	ctx     *Context
	surface *wgpu.Surface

	// present modes advertised by the backend, captured in Bind
	presentModes []wgpu.PresentMode
}

func (b *binding) Capabilities() surface.Capabilities {
	caps := b.surface.GetCapabilities(b.ctx.Adapter)
	b.presentModes = caps.PresentModes

	formats := make([]surface.PixelFormat, len(caps.Formats))
	for idx, format := range caps.Formats {
		formats[idx] = surface.PixelFormat(format)
	}

	alphaModes := make([]surface.AlphaMode, 0, len(caps.AlphaModes))
	for _, mode := range caps.AlphaModes {
		alphaModes = append(alphaModes, alphaModeOf(mode))
	}

	return surface.Capabilities{
		Formats:    formats,
		AlphaModes: alphaModes,
	}
}

func (b *binding) Configure(config surface.Config) error {
	b.surface.Configure(b.ctx.Adapter, b.ctx.Device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      wgpu.TextureFormat(config.Format),
		Width:       config.Width,
		Height:      config.Height,
		PresentMode: b.presentMode(config.PresentMode),
		AlphaMode:   alphaModeToWGPU(config.AlphaMode),
	})

	return nil
}

func (b *binding) Acquire() (*Frame, surface.Outcome) {
	texture, err := b.surface.GetCurrentTexture()
	if err != nil {
		return nil, classifyAcquireError(err)
	}

	return &Frame{surface: b.surface, texture: texture}, surface.OutcomeSuccess
}

func (b *binding) Destroy() {
	if b.surface != nil {
		b.surface.Release()
		b.surface = nil
	}
}

func (b *binding) presentMode(mode surface.PresentMode) wgpu.PresentMode {
	return concretePresentMode(mode, b.presentModes)
}

// concretePresentMode picks a concrete backend present mode for the
// negotiated policy, restricted to what the backend advertised. Fifo
// is the only mode WebGPU guarantees everywhere.
func concretePresentMode(mode surface.PresentMode, available []wgpu.PresentMode) wgpu.PresentMode {
	if mode == surface.PresentAutoVsync {
		return wgpu.PresentModeFifo
	}

	for _, candidate := range []wgpu.PresentMode{wgpu.PresentModeMailbox, wgpu.PresentModeImmediate} {
		if slices.Contains(available, candidate) {
			return candidate
		}
	}

	return wgpu.PresentModeFifo
}

func alphaModeOf(mode wgpu.CompositeAlphaMode) surface.AlphaMode {
	switch mode {
	case wgpu.CompositeAlphaModeOpaque:
		return surface.AlphaOpaque
	case wgpu.CompositeAlphaModePremultiplied:
		return surface.AlphaPreMultiplied
	case wgpu.CompositeAlphaModeUnpremultiplied:
		return surface.AlphaPostMultiplied
	case wgpu.CompositeAlphaModeInherit:
		return surface.AlphaInherit
	default:
		return surface.AlphaAuto
	}
}

func alphaModeToWGPU(mode surface.AlphaMode) wgpu.CompositeAlphaMode {
	switch mode {
	case surface.AlphaOpaque:
		return wgpu.CompositeAlphaModeOpaque
	case surface.AlphaPreMultiplied:
		return wgpu.CompositeAlphaModePremultiplied
	case surface.AlphaPostMultiplied:
		return wgpu.CompositeAlphaModeUnpremultiplied
	case surface.AlphaInherit:
		return wgpu.CompositeAlphaModeInherit
	default:
		return wgpu.CompositeAlphaModeAuto
	}
}

// classifyAcquireError maps the backend error text onto the closed
// outcome set. wgpu reports acquisition state as errors; everything we
// cannot identify is treated as a lost surface, since recreation is
// the recovery that works for the widest class of failures.
func classifyAcquireError(err error) surface.Outcome {
	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "timeout"):
		return surface.OutcomeTimeout
	case strings.Contains(msg, "outdated"):
		return surface.OutcomeOutdated
	case strings.Contains(msg, "suboptimal"):
		return surface.OutcomeSuboptimal
	case strings.Contains(msg, "out of memory"), strings.Contains(msg, "outofmemory"):
		return surface.OutcomeOutOfMemory
	default:
		return surface.OutcomeLost
	}
}
