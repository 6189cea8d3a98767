package surface

import "errors"

var (
	// ErrUnsupportedPlatform is returned by Backend.Bind when the
	// drawable's native handle type cannot be presented on the backend.
	ErrUnsupportedPlatform = errors.New("surface: drawable not presentable on this backend")

	// ErrIncompatible is returned by negotiation when the backend
	// reports no supported pixel formats for the binding.
	ErrIncompatible = errors.New("surface: no supported pixel formats")

	// ErrOutOfMemory is returned by acquisition when the backend ran
	// out of device memory. There is no local recovery.
	ErrOutOfMemory = errors.New("surface: backend out of memory")
)
