// Package rgb565 provides the 16-bit RGB565 pixel format used by MIPI DCS
// TFT panels.
//
// Pixels are packed 5-6-5 (red in the top 5 bits, green in the middle 6,
// blue in the bottom 5) and stored big-endian, two bytes per pixel, which
// is the byte order the panels expect over SPI after COLMOD 16bpp.
package rgb565

import (
	"image"
	"image/color"
)

// RGB565 represents a 16-bit color with 5 bits of red, 6 bits of green and
// 5 bits of blue.
type RGB565 uint16

// New packs 8-bit color components into an RGB565 value, truncating the
// low bits of each component.
func New(r, g, b uint8) RGB565 {
	return RGB565(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// RGBA expands the packed components back to 16-bit channels by bit
// replication, so full-scale components map to 0xFFFF exactly.
func (c RGB565) RGBA() (r, g, b, a uint32) {
	r5 := uint32(c>>11) & 0x1F
	g6 := uint32(c>>5) & 0x3F
	b5 := uint32(c) & 0x1F

	r8 := r5<<3 | r5>>2
	g8 := g6<<2 | g6>>4
	b8 := b5<<3 | b5>>2

	return r8 * 0x101, g8 * 0x101, b8 * 0x101, 0xFFFF
}

// toRGB565 converts any color.Color to RGB565.
func toRGB565(c color.Color) color.Color {
	if v, ok := c.(RGB565); ok {
		return v
	}
	r, g, b, _ := c.RGBA()
	return RGB565(uint16(r>>11)<<11 | uint16(g>>10)<<5 | uint16(b>>11))
}

// Model converts colors to RGB565.
var Model = color.ModelFunc(toRGB565)

// Image is an in-memory RGB565 image. Pix holds two bytes per pixel,
// big-endian, so the buffer can be streamed to a panel as-is.
type Image struct {
	Pix    []byte          // Pixel data, 2 bytes per pixel, big-endian
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
}

// NewImage creates a new RGB565 image with the specified bounds.
func NewImage(r image.Rectangle) *Image {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &Image{Rect: r}
	}
	stride := w * 2
	return &Image{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *Image) ColorModel() color.Model {
	return Model
}

// Bounds returns the image bounds.
func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (p *Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*2
}

// At returns the color of the pixel at (x, y).
func (p *Image) At(x, y int) color.Color {
	return p.RGB565At(x, y)
}

// RGB565At returns the RGB565 value of the pixel at (x, y).
func (p *Image) RGB565At(x, y int) RGB565 {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return 0
	}
	i := p.PixOffset(x, y)
	return RGB565(uint16(p.Pix[i])<<8 | uint16(p.Pix[i+1]))
}

// Set sets the pixel at (x, y), converting c to RGB565 if needed.
func (p *Image) Set(x, y int, c color.Color) {
	p.SetRGB565(x, y, toRGB565(c).(RGB565))
}

// SetRGB565 sets the pixel at (x, y) without a color model conversion.
func (p *Image) SetRGB565(x, y int, c RGB565) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	p.Pix[i] = byte(c >> 8)
	p.Pix[i+1] = byte(c)
}

// Opaque reports whether the image is fully opaque. RGB565 has no alpha
// channel, so it always is.
func (p *Image) Opaque() bool {
	return true
}
