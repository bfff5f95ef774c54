package mipitft

// Panel model presets. A model bundles the raw panel geometry with the
// offset handler that positions the addressable window inside the
// controller's RAM.

// ST7789 returns options for a generic 240x320 ST7789 panel whose
// framebuffer matches the display area.
func ST7789() *ModelOptions {
	return NewOptions(Size{W: 240, H: 320}, Size{W: 240, H: 320})
}

// ILI9341 returns options for a generic 240x320 ILI9341 panel. These
// panels are usually wired BGR.
func ILI9341() *ModelOptions {
	o := NewOptions(Size{W: 240, H: 320}, Size{W: 240, H: 320})
	o.ColorOrder = BGR
	return o
}

// ST7789Pico1 returns options for the 135x240 panel on the Pimoroni Pico
// Display Pack v1. The glass covers only part of the ST7789's 240x320 RAM
// and its position inside the RAM moves with the rotation, so the handler
// reports its result as non-cachable.
func ST7789Pico1() *ModelOptions {
	return NewOptionsWithHandler(Size{W: 135, H: 240}, Size{W: 135, H: 240},
		OffsetHandlerFunc(pico1Offset))
}

// pico1Offset returns the Pico Display Pack v1 window position for the
// current rotation. Not cachable: a cached offset would go stale on the
// next SetOrientation.
func pico1Offset(o *ModelOptions) WindowOffsetResult {
	switch o.Orientation().Rotation {
	case Landscape:
		return WindowOffsetResult{X: 40, Y: 53}
	case PortraitInverted:
		return WindowOffsetResult{X: 53, Y: 40}
	case LandscapeInverted:
		return WindowOffsetResult{X: 40, Y: 52}
	default: // Portrait
		return WindowOffsetResult{X: 52, Y: 40}
	}
}
