package mipitft

// MADCTL bit assignments, common to the ST77xx/ILI93xx/ILI94xx controller
// family. See e.g. ILI9341 datasheet §8.2.29.
const (
	madctlMY  byte = 0x80 // row address order: bottom to top
	madctlMX  byte = 0x40 // column address order: right to left
	madctlMV  byte = 0x20 // row/column exchange
	madctlML  byte = 0x10 // vertical refresh order: bottom to top
	madctlBGR byte = 0x08 // blue-green-red pixel order
	madctlMH  byte = 0x04 // horizontal refresh order: right to left
)

// ColorOrder selects the panel's subpixel wiring, RGB or BGR.
type ColorOrder uint8

const (
	// RGB is the default red-green-blue subpixel order.
	RGB ColorOrder = iota
	// BGR sets the MADCTL BGR bit for panels wired blue-green-red.
	BGR
)

// Rotation selects the panel scan direction in quarter turns.
type Rotation uint8

const (
	// Portrait is the panel's native orientation.
	Portrait Rotation = iota
	// Landscape is rotated 90° from Portrait; width and height swap.
	Landscape
	// PortraitInverted is rotated 180° from Portrait.
	PortraitInverted
	// LandscapeInverted is rotated 270° from Portrait; width and height swap.
	LandscapeInverted
)

// Orientation combines a rotation with an optional mirror flip.
//
// The zero value (Portrait, unmirrored) is the default orientation.
type Orientation struct {
	Rotation Rotation
	Mirror   bool
}

// madctl returns the orientation's MADCTL MY/MX/MV bits.
func (o Orientation) madctl() byte {
	switch o.Rotation {
	case Landscape:
		if o.Mirror {
			return madctlMX | madctlMV
		}
		return madctlMV
	case PortraitInverted:
		if o.Mirror {
			return madctlMY
		}
		return madctlMY | madctlMX
	case LandscapeInverted:
		if o.Mirror {
			return madctlMY | madctlMV
		}
		return madctlMY | madctlMX | madctlMV
	default: // Portrait
		if o.Mirror {
			return madctlMX
		}
		return 0
	}
}

// landscape reports whether width and height swap under this orientation.
// Only the rotation class matters; mirroring never swaps axes.
func (o Orientation) landscape() bool {
	return o.Rotation == Landscape || o.Rotation == LandscapeInverted
}

// Size is a width/height pair in pixels.
//
// The zero value doubles as the "no override" sentinel for framebuffer
// sizes.
type Size struct {
	W, H uint16
}

// orient swaps width and height iff the orientation is a landscape variant.
func (s Size) orient(o Orientation) Size {
	if o.landscape() {
		return Size{W: s.H, H: s.W}
	}
	return s
}

// WindowOffsetResult is the outcome of one offset computation: the origin
// translation to apply to addressing commands, plus whether the value may
// be memoized.
//
// Cachable must be false for handlers whose result depends on mutable
// state (in practice: the orientation), since a cached result is never
// invalidated.
type WindowOffsetResult struct {
	X, Y     uint16
	Cachable bool
}

// OffsetHandler computes the window offset for the current options.
//
// Implementations must be pure: they may read any accessor of ModelOptions
// except WindowOffset itself, and must not retain or mutate the options.
type OffsetHandler interface {
	ComputeOffset(*ModelOptions) WindowOffsetResult
}

// OffsetHandlerFunc adapts a plain function to the OffsetHandler interface.
type OffsetHandlerFunc func(*ModelOptions) WindowOffsetResult

// ComputeOffset calls f(o).
func (f OffsetHandlerFunc) ComputeOffset(o *ModelOptions) WindowOffsetResult {
	return f(o)
}

// NoOffset is the default offset handler. It assumes the unused margin of
// an oversized framebuffer sits at the high end of each axis, yielding
// (0, 0) when framebuffer and display sizes match and the margin size
// otherwise. It reads only the raw, unoriented sizes, so the result is
// safe to cache.
func NoOffset(o *ModelOptions) WindowOffsetResult {
	var x, y uint16
	if o.framebufferSize.W > o.displaySize.W {
		x = o.framebufferSize.W - o.displaySize.W
	}
	if o.framebufferSize.H > o.displaySize.H {
		y = o.framebufferSize.H - o.displaySize.H
	}
	return WindowOffsetResult{X: x, Y: y, Cachable: true}
}

// ModelOptions holds the per-panel settings that shape addressing and the
// MADCTL register: color order, orientation, refresh direction, raw sizes
// and the window offset handler.
//
// A driver builds one ModelOptions per display session and then queries
// MADCTL, DisplaySize, FramebufferSize and WindowOffset while issuing
// commands. Only the orientation is meant to change after construction.
type ModelOptions struct {
	// ColorOrder selects RGB (default) or BGR subpixel order.
	ColorOrder ColorOrder
	// InvertVerticalRefresh makes the panel refresh bottom to top.
	InvertVerticalRefresh bool
	// InvertHorizontalRefresh makes the panel refresh right to left.
	InvertHorizontalRefresh bool

	orientation   Orientation
	offsetHandler OffsetHandler
	// Raw, pre-orientation sizes. displaySize must be non-zero for any
	// panel that is actually rendered to; framebufferSize zero means
	// "same as displaySize".
	displaySize     Size
	framebufferSize Size
	// Memoized offset. Populated by WindowOffset when the handler marks
	// its result cachable; never invalidated, not even by SetOrientation.
	cachedOffset *WindowOffsetResult
}

// NewOptions returns options for a panel with the given raw display and
// framebuffer sizes, using the NoOffset handler. Pass a zero framebuffer
// size when the framebuffer matches the display.
func NewOptions(displaySize, framebufferSize Size) *ModelOptions {
	return NewOptionsWithHandler(displaySize, framebufferSize, OffsetHandlerFunc(NoOffset))
}

// NewOptionsWithHandler is NewOptions with a custom window offset handler.
func NewOptionsWithHandler(displaySize, framebufferSize Size, handler OffsetHandler) *ModelOptions {
	return &ModelOptions{
		offsetHandler:   handler,
		displaySize:     displaySize,
		framebufferSize: framebufferSize,
	}
}

// MADCTL returns the memory access control register value for the current
// orientation, color order and refresh direction. Bits 1-0 are reserved
// and always zero.
func (o *ModelOptions) MADCTL() byte {
	v := o.orientation.madctl()
	if o.InvertVerticalRefresh {
		v |= madctlML
	}
	if o.ColorOrder == BGR {
		v |= madctlBGR
	}
	if o.InvertHorizontalRefresh {
		v |= madctlMH
	}
	return v
}

// DisplaySize returns the addressable display size under the current
// orientation.
func (o *ModelOptions) DisplaySize() Size {
	return o.displaySize.orient(o.orientation)
}

// FramebufferSize returns the framebuffer size under the current
// orientation, falling back to the display size when no framebuffer
// override was given.
func (o *ModelOptions) FramebufferSize() Size {
	size := o.framebufferSize
	if size == (Size{}) {
		size = o.displaySize
	}
	return size.orient(o.orientation)
}

// WindowOffset returns the (x, y) origin translation for addressing
// commands. The first call runs the offset handler; if the handler marks
// its result cachable the value is memoized and the handler is never
// consulted again. This memoization is the only hidden mutation on
// ModelOptions.
func (o *ModelOptions) WindowOffset() (x, y uint16) {
	if o.cachedOffset != nil {
		return o.cachedOffset.X, o.cachedOffset.Y
	}
	result := o.offsetHandler.ComputeOffset(o)
	if result.Cachable {
		o.cachedOffset = &result
	}
	return result.X, result.Y
}

// Orientation returns the current orientation.
func (o *ModelOptions) Orientation() Orientation {
	return o.orientation
}

// SetOrientation replaces the current orientation. A previously cached
// window offset is kept as-is.
func (o *ModelOptions) SetOrientation(orientation Orientation) {
	o.orientation = orientation
}
