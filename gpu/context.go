// Package gpu owns the WebGPU connection (instance, adapter, device,
// queue) and adapts it to the backend interfaces of the surface
// package.
package gpu

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/xorbits/trigon/settings"
	"github.com/xorbits/trigon/surface"
)

func init() {
	runtime.LockOSThread()

	switch strings.ToUpper(os.Getenv("WGPU_LOG_LEVEL")) {
	case "OFF":
		wgpu.SetLogLevel(wgpu.LogLevelOff)
	case "ERROR":
		wgpu.SetLogLevel(wgpu.LogLevelError)
	case "WARN":
		wgpu.SetLogLevel(wgpu.LogLevelWarn)
	case "INFO":
		wgpu.SetLogLevel(wgpu.LogLevelInfo)
	case "DEBUG":
		wgpu.SetLogLevel(wgpu.LogLevelDebug)
	case "TRACE":
		wgpu.SetLogLevel(wgpu.LogLevelTrace)
	}
}

// Drawable is what the windowing layer must provide for a window to be
// presentable on this backend.
type Drawable interface {
	surface.Drawable

	SurfaceDescriptor() *wgpu.SurfaceDescriptor
}

// Options for New.
type Options struct {
	PowerPreference      wgpu.PowerPreference
	ForceFallbackAdapter bool
}

// PowerPreferenceOf maps the settings value onto the backend enum.
func PowerPreferenceOf(name string) wgpu.PowerPreference {
	if name == settings.GPUPreferenceLowPower {
		return wgpu.PowerPreferenceLowPower
	}

	return wgpu.PowerPreferenceHighPerformance
}

// Context encapsulates the low level state of the webgpu connection.
// It outlives every surface binding created through it.
type Context struct {
	Instance *wgpu.Instance
	*wgpu.Device
	*wgpu.Queue
	Adapter *wgpu.Adapter

	// the wgpu surface created to pick a compatible adapter. Handed
	// out by the first Bind for the same drawable.
	initial  *wgpu.Surface
	compatTo Drawable
}

// New connects to the GPU. The drawable is used to request an adapter
// that can actually present to it.
func New(drawable Drawable, opts Options) (ctx *Context, err error) {
	defer func() {
		if err != nil && ctx != nil {
			ctx.Release()
			ctx = nil
		}
	}()

	ctx = &Context{}

	ctx.Instance = wgpu.CreateInstance(nil)

	sd := drawable.SurfaceDescriptor()
	if sd == nil {
		return nil, surface.ErrUnsupportedPlatform
	}

	ctx.initial = ctx.Instance.CreateSurface(sd)
	ctx.compatTo = drawable

	ctx.Adapter, err = ctx.Instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference:      opts.PowerPreference,
		ForceFallbackAdapter: opts.ForceFallbackAdapter,
		CompatibleSurface:    ctx.initial,
	})
	if err != nil {
		return nil, fmt.Errorf("request adapter: %w", err)
	}

	ctx.Device, err = ctx.Adapter.RequestDevice(nil)
	if err != nil {
		return nil, fmt.Errorf("request device: %w", err)
	}

	ctx.Queue = ctx.Device.GetQueue()

	return ctx, nil
}

func (c *Context) Release() {
	if c.Queue != nil {
		c.Queue.Release()
		c.Queue = nil
	}

	if c.Device != nil {
		c.Device.Release()
		c.Device = nil
	}

	if c.Adapter != nil {
		c.Adapter.Release()
		c.Adapter = nil
	}

	if c.initial != nil {
		c.initial.Release()
		c.initial = nil
	}

	if c.Instance != nil {
		c.Instance.Release()
		c.Instance = nil
	}
}
