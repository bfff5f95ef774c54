// Package mipitft controls MIPI DCS TFT panels via SPI.
//
// The package targets the ST77xx/ILI93xx controller family (ST7789,
// ST7735, ILI9341, ILI9342 and similar), which share the MIPI DCS command
// set and the MADCTL memory access control register. It implements the
// display.Drawer interface from periph.io.
//
// # Panel Models
//
// A panel is described by a ModelOptions value: its raw display size, its
// framebuffer size (the controller RAM, which may be larger than the
// glass), the subpixel order, and a window offset handler that positions
// the addressable area inside the RAM. Presets are provided for common
// panels:
//
//	mipitft.ST7789()      // generic 240x320 ST7789
//	mipitft.ILI9341()     // generic 240x320 ILI9341 (BGR)
//	mipitft.ST7789Pico1() // 135x240 Pimoroni Pico Display Pack v1
//
// Custom panels build their own options:
//
//	opts := mipitft.NewOptions(mipitft.Size{W: 128, H: 160}, mipitft.Size{W: 132, H: 162})
//	opts.ColorOrder = mipitft.BGR
//
// Panels whose window position inside the RAM depends on the rotation
// supply a handler via NewOptionsWithHandler; such handlers must report
// their results as non-cachable.
//
// # Hardware Connection
//
// Connect the panel to your system via SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL/CLK     → SPI Clock (SCLK)
//	SDA/MOSI    → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	CS          → SPI Chip Select (or GND if always selected)
//	RES         → Optional: GPIO for hardware reset
//
// # Basic Usage
//
//	package main
//
//	import (
//		"image"
//
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/devices/v3/mipitft"
//		"periph.io/x/devices/v3/mipitft/rgb565"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		host.Init()
//
//		spiBus, _ := spireg.Open("")
//		dcPin := gpioreg.ByName("GPIO25")
//
//		dev, _ := mipitft.NewSPI(spiBus, dcPin, &mipitft.Opts{
//			Model:    mipitft.ST7789(),
//			Inverted: true, // most IPS ST7789 panels
//		})
//		defer dev.Halt()
//
//		img := rgb565.NewImage(dev.Bounds())
//		for y := 0; y < 320; y++ {
//			for x := 0; x < 240; x++ {
//				img.SetRGB565(x, y, rgb565.New(uint8(x), uint8(y), 128))
//			}
//		}
//		dev.Draw(dev.Bounds(), img, image.Point{})
//	}
//
// # Orientation
//
// SetOrientation rewrites MADCTL and swaps the logical width and height
// for landscape rotations:
//
//	dev.SetOrientation(mipitft.Orientation{Rotation: mipitft.Landscape})
//	// dev.Bounds() is now 320x240
//
// # Drawing Modes
//
// Write sends a raw big-endian RGB565 frame without any bookkeeping:
//
//	pixels := make([]byte, 240*320*2)
//	// ... fill pixels ...
//	dev.Write(pixels)
//
// Draw performs differential updates: it tracks the previous frame,
// computes the minimal bounding rectangle of changed pixels and only
// transfers that region. A full-frame *rgb565.Image takes a fast path
// that skips the comparison entirely.
//
// # Scrolling
//
// The controller can scroll the framebuffer vertically without
// retransmitting pixels:
//
//	dev.SetScrollArea(0, 0)
//	for line := uint16(0); line < 320; line++ {
//		dev.ScrollTo(line)
//		time.Sleep(10 * time.Millisecond)
//	}
//
// # Compatibility with periph.io
//
// Dev implements the display.Drawer interface and can be used with any
// periph.io tool or library expecting one:
// https://pkg.go.dev/periph.io/x/conn/v3/display
package mipitft
