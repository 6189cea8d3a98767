package gpu

import (
	"errors"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"

	"github.com/xorbits/trigon/surface"
)

func TestConcretePresentMode(t *testing.T) {
	tests := []struct {
		name      string
		mode      surface.PresentMode
		available []wgpu.PresentMode
		want      wgpu.PresentMode
	}{
		{
			"vsync is always fifo",
			surface.PresentAutoVsync,
			[]wgpu.PresentMode{wgpu.PresentModeMailbox, wgpu.PresentModeImmediate},
			wgpu.PresentModeFifo,
		},
		{
			"no-vsync prefers mailbox",
			surface.PresentAutoNoVsync,
			[]wgpu.PresentMode{wgpu.PresentModeFifo, wgpu.PresentModeImmediate, wgpu.PresentModeMailbox},
			wgpu.PresentModeMailbox,
		},
		{
			"no-vsync falls back to immediate",
			surface.PresentAutoNoVsync,
			[]wgpu.PresentMode{wgpu.PresentModeFifo, wgpu.PresentModeImmediate},
			wgpu.PresentModeImmediate,
		},
		{
			"no-vsync with fifo only",
			surface.PresentAutoNoVsync,
			[]wgpu.PresentMode{wgpu.PresentModeFifo},
			wgpu.PresentModeFifo,
		},
		{
			"no-vsync with nothing advertised",
			surface.PresentAutoNoVsync,
			nil,
			wgpu.PresentModeFifo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, concretePresentMode(tt.mode, tt.available))
		})
	}
}

// a binding fresh out of Bind, as built for surface recovery, must
// already know the advertised present modes; otherwise no-vsync would
// silently degrade to fifo after a recreation.
func TestRecreatedBindingKeepsPresentModes(t *testing.T) {
	b := binding{presentModes: []wgpu.PresentMode{
		wgpu.PresentModeFifo,
		wgpu.PresentModeMailbox,
	}}

	assert.Equal(t, wgpu.PresentModeMailbox, b.presentMode(surface.PresentAutoNoVsync))
	assert.Equal(t, wgpu.PresentModeFifo, b.presentMode(surface.PresentAutoVsync))
}

func TestClassifyAcquireError(t *testing.T) {
	tests := []struct {
		msg  string
		want surface.Outcome
	}{
		{"Surface timed out: timeout", surface.OutcomeTimeout},
		{"Surface is outdated", surface.OutcomeOutdated},
		{"Surface is suboptimal", surface.OutcomeSuboptimal},
		{"Device out of memory", surface.OutcomeOutOfMemory},
		{"OutOfMemory", surface.OutcomeOutOfMemory},
		{"Surface is lost", surface.OutcomeLost},
		{"parent device dropped", surface.OutcomeLost},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyAcquireError(errors.New(tt.msg)))
		})
	}
}
