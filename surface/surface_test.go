package surface

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFrame records what happened to a frame handed out by the fake
// backend. seq is 1-based and counts backend acquire calls.
type fakeFrame struct {
	seq       int
	discarded bool
}

func (f *fakeFrame) Discard() { f.discarded = true }

type fakeDrawable struct {
	width, height uint32
}

func (d *fakeDrawable) Size() (uint32, uint32) { return d.width, d.height }

type fakeBinding struct {
	backend    *fakeBackend
	configures []Config
	destroyed  bool
}

func (b *fakeBinding) Capabilities() Capabilities { return b.backend.caps }

func (b *fakeBinding) Configure(config Config) error {
	b.configures = append(b.configures, config)
	return nil
}

func (b *fakeBinding) Acquire() (*fakeFrame, Outcome) {
	b.backend.calls++

	if len(b.backend.script) == 0 {
		frame := &fakeFrame{seq: b.backend.calls}
		b.backend.frames = append(b.backend.frames, frame)
		return frame, OutcomeSuccess
	}

	outcome := b.backend.script[0]
	b.backend.script = b.backend.script[1:]

	switch outcome {
	case OutcomeSuccess, OutcomeSuboptimal:
		frame := &fakeFrame{seq: b.backend.calls}
		b.backend.frames = append(b.backend.frames, frame)
		return frame, outcome

	default:
		return nil, outcome
	}
}

func (b *fakeBinding) Destroy() { b.destroyed = true }

// fakeBackend plays a scripted sequence of acquisition outcomes, then
// keeps reporting success.
type fakeBackend struct {
	caps   Capabilities
	script []Outcome

	calls    int
	frames   []*fakeFrame
	bindings []*fakeBinding
	boundTo  []Drawable
}

func (b *fakeBackend) Bind(drawable Drawable) (Binding[*fakeFrame], error) {
	binding := &fakeBinding{backend: b}
	b.bindings = append(b.bindings, binding)
	b.boundTo = append(b.boundTo, drawable)
	return binding, nil
}

func defaultCaps() Capabilities {
	return Capabilities{
		Formats:    []PixelFormat{1},
		AlphaModes: []AlphaMode{AlphaOpaque},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newTestSurface(t *testing.T, backend *fakeBackend, drawable *fakeDrawable) *Surface[*fakeFrame] {
	t.Helper()

	nego := NewNegotiator[*fakeFrame](backend, testLogger())

	binding, err := nego.Bind(drawable)
	require.NoError(t, err)

	config, err := nego.Negotiate(binding, drawable, Options{VSync: true})
	require.NoError(t, err)

	surf, err := New(backend, drawable, binding, config, testLogger())
	require.NoError(t, err)

	return surf
}

func TestAcquireRetriesUntilSuccess(t *testing.T) {
	tests := []struct {
		name   string
		script []Outcome
	}{
		{"immediate", nil},
		{"timeout", []Outcome{OutcomeTimeout}},
		{"suboptimal", []Outcome{OutcomeSuboptimal}},
		{"outdated", []Outcome{OutcomeOutdated}},
		{"lost", []Outcome{OutcomeLost}},
		{"mixed", []Outcome{
			OutcomeTimeout, OutcomeSuboptimal, OutcomeOutdated,
			OutcomeLost, OutcomeTimeout,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &fakeBackend{caps: defaultCaps(), script: tt.script}
			surf := newTestSurface(t, backend, &fakeDrawable{width: 800, height: 600})

			frame, err := surf.Acquire()
			require.NoError(t, err)
			require.NotNil(t, frame)

			// the frame comes from the attempt right after the scripted
			// failures, never earlier
			assert.Equal(t, len(tt.script)+1, frame.seq)
			assert.Equal(t, StateConfigured, surf.State())
		})
	}
}

func TestReconfigureReadsCurrentDrawableSize(t *testing.T) {
	for _, outcome := range []Outcome{OutcomeSuboptimal, OutcomeOutdated} {
		t.Run(outcome.String(), func(t *testing.T) {
			drawable := &fakeDrawable{width: 800, height: 600}
			backend := &fakeBackend{caps: defaultCaps(), script: []Outcome{outcome}}
			surf := newTestSurface(t, backend, drawable)

			// the drawable grows without a resize event reaching the
			// surface; recovery must pick up the new size on its own
			drawable.width, drawable.height = 1024, 768

			_, err := surf.Acquire()
			require.NoError(t, err)

			binding := backend.bindings[0]
			last := binding.configures[len(binding.configures)-1]
			assert.Equal(t, uint32(1024), last.Width)
			assert.Equal(t, uint32(768), last.Height)

			width, height := surf.Size()
			assert.Equal(t, uint32(1024), width)
			assert.Equal(t, uint32(768), height)
		})
	}
}

func TestSuboptimalFrameIsDiscarded(t *testing.T) {
	backend := &fakeBackend{caps: defaultCaps(), script: []Outcome{OutcomeSuboptimal}}
	surf := newTestSurface(t, backend, &fakeDrawable{width: 800, height: 600})

	frame, err := surf.Acquire()
	require.NoError(t, err)

	require.Len(t, backend.frames, 2)
	stale := backend.frames[0]
	assert.True(t, stale.discarded, "stale frame must be released explicitly")
	assert.False(t, frame.discarded)
}

func TestTimeoutDoesNotReconfigure(t *testing.T) {
	backend := &fakeBackend{
		caps:   defaultCaps(),
		script: []Outcome{OutcomeTimeout, OutcomeTimeout},
	}
	surf := newTestSurface(t, backend, &fakeDrawable{width: 800, height: 600})

	_, err := surf.Acquire()
	require.NoError(t, err)

	// only the initial configure from New
	assert.Len(t, backend.bindings[0].configures, 1)
}

func TestLostRecreatesBindingOnce(t *testing.T) {
	drawable := &fakeDrawable{width: 800, height: 600}
	backend := &fakeBackend{caps: defaultCaps(), script: []Outcome{OutcomeLost}}
	surf := newTestSurface(t, backend, drawable)

	frame, err := surf.Acquire()
	require.NoError(t, err)
	assert.Equal(t, 2, frame.seq)

	require.Len(t, backend.bindings, 2)
	assert.True(t, backend.bindings[0].destroyed, "old binding must be destroyed")
	assert.False(t, backend.bindings[1].destroyed)

	// recreation must reuse the exact drawable the original binding
	// was created from
	require.Same(t, backend.boundTo[0], backend.boundTo[1])
	assert.Same(t, Drawable(drawable), backend.boundTo[1])

	// the fresh binding was configured before the next attempt
	assert.Len(t, backend.bindings[1].configures, 1)
	assert.Equal(t, StateConfigured, surf.State())
}

func TestOutOfMemoryPropagatesImmediately(t *testing.T) {
	backend := &fakeBackend{
		caps:   defaultCaps(),
		script: []Outcome{OutcomeOutOfMemory, OutcomeSuccess},
	}
	surf := newTestSurface(t, backend, &fakeDrawable{width: 800, height: 600})

	_, err := surf.Acquire()
	require.ErrorIs(t, err, ErrOutOfMemory)

	// zero retries after the fatal outcome
	assert.Equal(t, 1, backend.calls)
}

func TestScenarioSuboptimalTimeoutSuccess(t *testing.T) {
	backend := &fakeBackend{
		caps:   defaultCaps(),
		script: []Outcome{OutcomeSuboptimal, OutcomeTimeout, OutcomeSuccess},
	}
	surf := newTestSurface(t, backend, &fakeDrawable{width: 800, height: 600})

	frame, err := surf.Acquire()
	require.NoError(t, err)

	// the returned frame corresponds to the third backend call
	assert.Equal(t, 3, frame.seq)
	assert.Equal(t, 3, backend.calls)

	// one reconfiguration (suboptimal) on top of the initial configure;
	// the timeout must not add another
	assert.Len(t, backend.bindings[0].configures, 2)
}

func TestResizedAppliesExplicitSize(t *testing.T) {
	drawable := &fakeDrawable{width: 800, height: 600}
	backend := &fakeBackend{caps: defaultCaps()}
	surf := newTestSurface(t, backend, drawable)

	require.NoError(t, surf.Resized(640, 480))

	binding := backend.bindings[0]
	last := binding.configures[len(binding.configures)-1]
	assert.Equal(t, uint32(640), last.Width)
	assert.Equal(t, uint32(480), last.Height)

	// the live config tracks exactly what was applied to the binding
	assert.Equal(t, last, surf.Config())
}

func TestDestroyDropsBinding(t *testing.T) {
	backend := &fakeBackend{caps: defaultCaps()}
	surf := newTestSurface(t, backend, &fakeDrawable{width: 800, height: 600})

	surf.Destroy()

	assert.True(t, backend.bindings[0].destroyed)
	assert.Equal(t, StateUnconfigured, surf.State())

	// Destroy is idempotent
	surf.Destroy()
}

// TestTryAcquireHandlesEveryOutcome walks the whole Outcome enum and
// verifies that no value falls through to the unhandled branch.
func TestTryAcquireHandlesEveryOutcome(t *testing.T) {
	for i := range outcomeCount {
		outcome := Outcome(i)

		t.Run(outcome.String(), func(t *testing.T) {
			backend := &fakeBackend{caps: defaultCaps(), script: []Outcome{outcome}}
			surf := newTestSurface(t, backend, &fakeDrawable{width: 800, height: 600})

			_, _, err := surf.TryAcquire()
			if err != nil {
				require.ErrorIs(t, err, ErrOutOfMemory)
			}
		})
	}

	t.Run("out of range", func(t *testing.T) {
		backend := &fakeBackend{
			caps:   defaultCaps(),
			script: []Outcome{Outcome(outcomeCount)},
		}
		surf := newTestSurface(t, backend, &fakeDrawable{width: 800, height: 600})

		_, ok, err := surf.TryAcquire()
		assert.False(t, ok)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrOutOfMemory)
	})
}
