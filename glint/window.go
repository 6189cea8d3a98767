// Package glint is the windowing glue: it owns the native window and
// routes key, scroll and resize events to the caller. Everything GPU
// related only sees the window through small interfaces.
package glint

import "github.com/cogentcore/webgpu/wgpu"

//go:generate go tool stringer -type=Key -trimprefix=Key

// Key identifies the keys the application reacts to. Unmapped keys are
// dropped at the window layer.
type Key uint8

const (
	KeyEscape Key = iota
	KeyF1
)

// Window is a native window that frames can be presented into. Size
// reports the framebuffer size in physical pixels; on HiDPI displays
// this differs from the logical window size.
type Window interface {
	Size() (width, height uint32)
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	SetVisible(visible bool)

	// Close requests an orderly shutdown; Run returns after the
	// current frame.
	Close()

	OnKeyPressed(fn func(key Key))
	OnScroll(fn func(dx, dy float32))
	OnResize(fn func(width, height uint32))

	// Run drives the event loop, calling frame once per tick until the
	// window is closed or frame fails.
	Run(frame func() error) error

	// Terminate destroys the window. Surfaces built on the window must
	// be destroyed first.
	Terminate()
}
