package glint

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/profile"
)

// Options for NewWindow.
type Options struct {
	Width  uint32
	Height uint32
	Title  string

	// Transparent asks the compositor to blend the framebuffer with
	// the content behind the window.
	Transparent bool

	// Profile records a CPU profile until Terminate.
	Profile bool
}

type glfwWindow struct {
	win  *glfw.Window
	prof interface{ Stop() }

	onKeyPressed func(key Key)
	onScroll     func(dx, dy float32)
	onResize     func(width, height uint32)
}

var glfwToKey = map[glfw.Key]Key{
	glfw.KeyEscape: KeyEscape,
	glfw.KeyF1:     KeyF1,
}

func NewWindow(opts Options) (Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Visible, glfw.False)

	if opts.Transparent {
		glfw.WindowHint(glfw.TransparentFramebuffer, glfw.True)
	}

	window, err := glfw.CreateWindow(int(opts.Width), int(opts.Height), opts.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	w := &glfwWindow{win: window}

	if opts.Profile {
		w.prof = profile.Start(profile.CPUProfile)
	}

	window.SetKeyCallback(func(_ *glfw.Window, glfwKey glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}

		key, ok := glfwToKey[glfwKey]
		if !ok {
			return
		}

		if w.onKeyPressed != nil {
			w.onKeyPressed(key)
		}
	})

	window.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		if w.onScroll != nil {
			w.onScroll(float32(xoff), float32(yoff))
		}
	})

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if w.onResize != nil {
			w.onResize(uint32(width), uint32(height))
		}
	})

	return w, nil
}

func (w *glfwWindow) Size() (uint32, uint32) {
	width, height := w.win.GetFramebufferSize()
	return uint32(width), uint32(height)
}

func (w *glfwWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(w.win)
}

func (w *glfwWindow) SetVisible(visible bool) {
	if visible {
		w.win.Show()
	} else {
		w.win.Hide()
	}
}

func (w *glfwWindow) Close() {
	w.win.SetShouldClose(true)
}

func (w *glfwWindow) OnKeyPressed(fn func(key Key)) { w.onKeyPressed = fn }

func (w *glfwWindow) OnScroll(fn func(dx, dy float32)) { w.onScroll = fn }

func (w *glfwWindow) OnResize(fn func(width, height uint32)) { w.onResize = fn }

func (w *glfwWindow) Run(frame func() error) error {
	for !w.win.ShouldClose() {
		glfw.PollEvents()

		if err := frame(); err != nil {
			return err
		}
	}

	return nil
}

func (w *glfwWindow) Terminate() {
	if w.prof != nil {
		w.prof.Stop()
	}

	w.win.Destroy()
	glfw.Terminate()
}
