package surface

//go:generate go tool stringer -type=Outcome -trimprefix=Outcome

// Outcome is the result of a single acquisition attempt as reported by
// the backend. The set is closed; TryAcquire handles every value and
// the package tests assert exhaustiveness.
type Outcome uint8

const (
	// OutcomeSuccess delivered a frame matching the configuration.
	OutcomeSuccess Outcome = iota

	// OutcomeSuboptimal delivered a usable frame, but the configuration
	// is stale (e.g. a DPI or compositor change not yet seen as a
	// resize event).
	OutcomeSuboptimal

	// OutcomeTimeout means no frame was ready within the backend's
	// internal deadline. Expected under GPU backpressure.
	OutcomeTimeout

	// OutcomeOutdated means the configuration no longer matches the
	// drawable, typically after a resize.
	OutcomeOutdated

	// OutcomeLost means the surface object itself was invalidated,
	// e.g. by a device or display reset.
	OutcomeLost

	// OutcomeOutOfMemory is fatal; retrying cannot recover exhausted
	// device memory.
	OutcomeOutOfMemory
)

const outcomeCount = int(OutcomeOutOfMemory) + 1
