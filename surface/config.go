package surface

//go:generate go tool stringer -type=AlphaMode -trimprefix=Alpha
//go:generate go tool stringer -type=PresentMode -trimprefix=Present

// PixelFormat identifies a backend texture format. The concrete values
// are owned by the backend; the zero value is not a valid format.
type PixelFormat uint32

// AlphaMode describes how a frame's alpha channel is combined with the
// window-system compositor content behind it.
type AlphaMode uint8

const (
	AlphaAuto AlphaMode = iota
	AlphaOpaque
	AlphaPreMultiplied
	AlphaPostMultiplied
	AlphaInherit
)

// PresentMode is the vsync policy requested from the backend. The
// concrete backend present mode is chosen by the backend itself, since
// not all present modes exist on all platforms.
type PresentMode uint8

const (
	PresentAutoVsync PresentMode = iota
	PresentAutoNoVsync
)

// Capabilities is an immutable snapshot of what the backend supports
// for one drawable, queried once per binding.
type Capabilities struct {
	// Formats in backend preference order, most preferred first.
	Formats []PixelFormat

	AlphaModes []AlphaMode
}

// Config is the full surface configuration. Width and Height always
// match the drawable's current physical size whenever a frame was
// acquired successfully.
type Config struct {
	Width  uint32
	Height uint32

	Format      PixelFormat
	PresentMode PresentMode
	AlphaMode   AlphaMode
}
