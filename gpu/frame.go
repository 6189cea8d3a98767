package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// Frame is an acquired surface texture. Present or Discard it exactly
// once, before the next acquisition.
type Frame struct {
	surface *wgpu.Surface
	texture *wgpu.Texture
	view    *wgpu.TextureView

	done bool
}

// Texture returns the backing drawable texture.
func (f *Frame) Texture() *wgpu.Texture {
	return f.texture
}

// View returns the color attachment view for this frame, creating it
// on first use.
func (f *Frame) View() (*wgpu.TextureView, error) {
	if f.view != nil {
		return f.view, nil
	}

	view, err := f.texture.CreateView(nil)
	if err != nil {
		return nil, fmt.Errorf("create frame view: %w", err)
	}
	f.view = view

	return view, nil
}

// Present schedules the frame for display. The texture itself must not
// be released after a successful present.
func (f *Frame) Present() {
	if f.done {
		return
	}
	f.done = true

	f.releaseView()
	f.surface.Present()
}

// Discard releases the frame without presenting it. Safe to call on a
// nil frame, which the backend hands out for suboptimal acquisitions
// it could not attach a texture to.
func (f *Frame) Discard() {
	if f == nil || f.done {
		return
	}
	f.done = true

	f.releaseView()
	f.texture.Release()
}

func (f *Frame) releaseView() {
	if f.view != nil {
		f.view.Release()
		f.view = nil
	}
}
