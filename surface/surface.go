// Package surface owns the lifecycle of a GPU presentation surface:
// capability negotiation, per-frame acquisition with built-in recovery,
// and reconfiguration after resizes and backend hiccups.
//
// The backend and the windowing system are only seen through the small
// interfaces in backend.go, so the state machine can be driven by a
// real GPU binding as well as by a simulated one in tests.
package surface

import (
	"context"
	"fmt"
	"log/slog"
)

//go:generate go tool stringer -type=State -trimprefix=State

// LevelTrace sits below slog.LevelDebug. Acquisition timeouts are
// expected under GPU backpressure and must not show up in normal
// debug output.
const LevelTrace = slog.LevelDebug - 4

// State of a Surface.
type State uint8

const (
	StateUnconfigured State = iota
	StateConfigured
	StateLost
)

// Surface owns the configured backend surface object for a single
// drawable and runs the acquisition state machine on top of it.
//
// The drawable is referenced, not owned: it must outlive the Surface,
// and Destroy must run before the drawable is torn down. All methods
// must be called from the thread that drives acquisition.
type Surface[F Frame] struct {
	backend  Backend[F]
	drawable Drawable
	binding  Binding[F]

	config Config
	state  State

	log *slog.Logger
}

// New wraps a fresh binding and applies the initial configuration.
// The config usually comes from Negotiator.Negotiate.
func New[F Frame](backend Backend[F], drawable Drawable, binding Binding[F], config Config, log *slog.Logger) (*Surface[F], error) {
	s := &Surface[F]{
		backend:  backend,
		drawable: drawable,
		binding:  binding,
		config:   config,
		log:      log,
	}

	if err := s.configure(config.Width, config.Height); err != nil {
		return nil, err
	}

	return s, nil
}

// Format returns the negotiated pixel format. The renderer needs it to
// build a compatible pipeline.
func (s *Surface[F]) Format() PixelFormat {
	return s.config.Format
}

// Size returns the currently configured size.
func (s *Surface[F]) Size() (width, height uint32) {
	return s.config.Width, s.config.Height
}

// Config returns the live configuration, including the size applied
// by the most recent configure step.
func (s *Surface[F]) Config() Config {
	return s.config
}

func (s *Surface[F]) State() State {
	return s.state
}

// Reconfigure re-applies the current configuration with the size
// re-read from the drawable. Used by the recovery paths, where the
// cached size may be stale.
func (s *Surface[F]) Reconfigure() error {
	width, height := s.drawable.Size()
	return s.configure(width, height)
}

// Resized applies an authoritative new size from a window-system
// resize event, bypassing the acquisition retry path.
func (s *Surface[F]) Resized(width, height uint32) error {
	return s.configure(width, height)
}

func (s *Surface[F]) configure(width, height uint32) error {
	s.config.Width = width
	s.config.Height = height

	if err := s.binding.Configure(s.config); err != nil {
		return fmt.Errorf("configure surface: %w", err)
	}

	s.state = StateConfigured

	s.log.Debug("Surface configured",
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
	)

	return nil
}

// Acquire blocks until the backend hands out a frame. Suboptimal,
// timeout, outdated and lost outcomes are absorbed by retrying; only
// resource exhaustion and failed recovery surface as errors, and those
// are terminal for the session.
func (s *Surface[F]) Acquire() (F, error) {
	for {
		frame, ok, err := s.TryAcquire()
		if err != nil {
			var zero F
			return zero, err
		}

		if ok {
			return frame, nil
		}
	}
}

// TryAcquire runs a single acquisition attempt, the unit of retry.
// ok is false when the attempt was absorbed by recovery and the caller
// should retry.
func (s *Surface[F]) TryAcquire() (frame F, ok bool, err error) {
	var zero F

	frame, outcome := s.binding.Acquire()

	switch outcome {
	case OutcomeSuccess:
		return frame, true, nil

	case OutcomeSuboptimal:
		// the frame is usable but the config is stale. The backend may
		// require every acquired frame to be presented or released, so
		// release it explicitly before reconfiguring.
		frame.Discard()

		s.log.Debug("Surface suboptimal")

		if err := s.Reconfigure(); err != nil {
			return zero, false, err
		}
		return zero, false, nil

	case OutcomeTimeout:
		s.log.Log(context.Background(), LevelTrace, "Surface timeout")
		return zero, false, nil

	case OutcomeOutdated:
		s.log.Debug("Surface outdated")

		if err := s.Reconfigure(); err != nil {
			return zero, false, err
		}
		return zero, false, nil

	case OutcomeLost:
		s.log.Debug("Surface lost")
		s.state = StateLost

		if err := s.recreate(); err != nil {
			return zero, false, err
		}
		return zero, false, nil

	case OutcomeOutOfMemory:
		return zero, false, ErrOutOfMemory

	default:
		return zero, false, fmt.Errorf("surface: unhandled acquire outcome %s", outcome)
	}
}

// recreate rebuilds the backend surface object from the retained
// backend and drawable pair. It must reuse the exact drawable the
// original binding was created from.
func (s *Surface[F]) recreate() error {
	s.binding.Destroy()

	binding, err := s.backend.Bind(s.drawable)
	if err != nil {
		return fmt.Errorf("recreate surface: %w", err)
	}
	s.binding = binding

	return s.Reconfigure()
}

// Destroy drops the backend surface object. Call this before tearing
// down the drawable; some backends misbehave when the native window
// dies first.
func (s *Surface[F]) Destroy() {
	if s.binding != nil {
		s.binding.Destroy()
		s.binding = nil
	}

	s.state = StateUnconfigured
}
