package surface

// Drawable is the native on-screen target that frames are presented
// into. It must outlive every Surface and Binding built on top of it.
type Drawable interface {
	// Size returns the drawable's current physical size in pixels.
	Size() (width, height uint32)
}

// Frame is a one-shot handle to a backend drawable texture. The owner
// must present it or discard it, exactly once. Holding a Frame across
// a reconfiguration is undefined.
type Frame interface {
	// Discard releases the frame without presenting it.
	Discard()
}

// Binding is the backend-side surface object created for a single
// drawable. It is driven from the thread that runs acquisition.
type Binding[F Frame] interface {
	// Capabilities reports the pixel formats and alpha modes supported
	// for this binding. The first format is the backend's preferred one.
	Capabilities() Capabilities

	// Configure applies the given configuration. A successful call
	// fully replaces the previous configuration.
	Configure(config Config) error

	// Acquire attempts to fetch the next frame. The returned frame is
	// valid only for OutcomeSuccess and OutcomeSuboptimal.
	Acquire() (F, Outcome)

	// Destroy drops the backend surface object. A binding must be
	// destroyed before the drawable it was created from.
	Destroy()
}

// Backend is the process-wide connection to the GPU driver. It
// outlives all bindings created through it.
type Backend[F Frame] interface {
	// Bind creates the native surface object for the drawable. Returns
	// ErrUnsupportedPlatform if the drawable's native handle type
	// cannot be presented on this backend.
	Bind(drawable Drawable) (Binding[F], error)
}
