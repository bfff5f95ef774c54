// Package mipitft controls MIPI DCS TFT panels (ST7789, ILI9341 and
// friends) via SPI.
//
// Panel geometry, orientation and window addressing are described by
// ModelOptions; Dev drives the hardware through a periph.io SPI port and
// a Data/Command GPIO pin.
//
// See the examples for how to use this package.
package mipitft

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/mipitft/rgb565"
)

// Opts is the configuration for the display.
type Opts struct {
	// Model describes the panel: sizes, color order, orientation and the
	// window offset handler. Nil selects a generic 240x320 ST7789.
	Model *ModelOptions

	// Inverted enables display inversion during init. Most IPS ST7789
	// panels need it for correct colors.
	Inverted bool

	// RST is the optional hardware reset pin (nil if not wired).
	RST gpio.PinIO
}

var errHalted = errors.New("mipitft: halted")

// Dev is the device handle for a MIPI DCS TFT panel.
type Dev struct {
	// Communication
	c   conn.Conn   // SPI connection
	dc  gpio.PinOut // Data/Command pin
	rst gpio.PinIO  // Reset pin (optional)

	// Panel description and derived geometry
	opts *ModelOptions
	rect image.Rectangle

	// Pixel buffers, 2 bytes per pixel
	buffer []byte        // Current frame
	next   *rgb565.Image // For lazy double buffering
	last   rgb565.Image  // Last displayed frame for differential updates

	// State
	inverted bool
	halted   bool
}

// NewSPI creates a new TFT device connected via SPI.
//
// The SPI port is configured for 40MHz, Mode0 (CPOL=0, CPHA=0), 8-bit
// transfers. The dc (Data/Command) GPIO pin must be provided and
// configured as an output.
//
// opts can be nil to use defaults (generic 240x320 ST7789).
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}
	model := opts.Model
	if model == nil {
		model = ST7789()
	}

	size := model.DisplaySize()
	if size.W == 0 || size.H == 0 {
		return nil, errors.New("mipitft: display size must be non-zero")
	}

	// The ST7789 is rated for 62.5MHz writes, the ILI9341 for less, but
	// both families are commonly driven at 40MHz in practice.
	c, err := p.Connect(40*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}

	d := &Dev{
		c:        c,
		dc:       dc,
		rst:      opts.RST,
		opts:     model,
		rect:     image.Rect(0, 0, int(size.W), int(size.H)),
		buffer:   make([]byte, int(size.W)*int(size.H)*2),
		inverted: opts.Inverted,
	}

	if err := d.init(); err != nil {
		return nil, err
	}
	return d, nil
}

// init resets the panel and sends the initialization sequence.
func (d *Dev) init() error {
	// Hardware reset sequence (if RST pin is provided), otherwise a
	// software reset.
	if d.rst != nil {
		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("mipitft: failed to pull RST low: %w", err)
		}
		time.Sleep(100 * time.Millisecond)

		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("mipitft: failed to pull RST high: %w", err)
		}
		time.Sleep(150 * time.Millisecond)
	} else {
		if err := d.writeCommand(cmdSWReset); err != nil {
			return err
		}
		time.Sleep(150 * time.Millisecond)
	}

	if err := d.writeCommand(cmdSleepOut); err != nil {
		return err
	}
	// The controller needs up to 120ms after sleep out before it accepts
	// further commands.
	time.Sleep(120 * time.Millisecond)

	if err := d.writeCommand(cmdPixelFormat, pixelFormat16bpp); err != nil {
		return err
	}
	if err := d.writeCommand(cmdMemAccessCtl, d.opts.MADCTL()); err != nil {
		return err
	}

	inv := cmdInvertOff
	if d.inverted {
		inv = cmdInvertOn
	}
	if err := d.writeCommand(inv); err != nil {
		return err
	}
	if err := d.writeCommand(cmdNormalOn); err != nil {
		return err
	}

	// Clear display RAM; its power-on content is random.
	if err := d.writeFullFrame(d.buffer); err != nil {
		return err
	}

	return d.writeCommand(cmdDisplayOn)
}

// writeCommand sends a command byte followed by its parameter bytes.
// MIPI DCS sends the opcode with DC low and parameters with DC high.
func (d *Dev) writeCommand(cmd byte, args ...byte) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	if err := d.c.Tx([]byte{cmd}, nil); err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}
	return d.sendData(args)
}

// sendData sends a slice of data bytes, split per the connection's
// transfer size limit.
func (d *Dev) sendData(data []byte) error {
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	max := len(data)
	if l, ok := d.c.(conn.Limits); ok {
		if m := l.MaxTxSize(); m > 0 && m < max {
			max = m
		}
	}
	for len(data) > 0 {
		n := min(len(data), max)
		if err := d.c.Tx(data[:n], nil); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// setAddressWindow selects the RAM region [x0,x1]x[y0,y1] for the next
// memory write, translated by the model's window offset.
func (d *Dev) setAddressWindow(x0, y0, x1, y1 int) error {
	ox, oy := d.opts.WindowOffset()
	xs, xe := x0+int(ox), x1+int(ox)
	ys, ye := y0+int(oy), y1+int(oy)

	if err := d.writeCommand(cmdColumnAddrSet,
		byte(xs>>8), byte(xs), byte(xe>>8), byte(xe)); err != nil {
		return err
	}
	return d.writeCommand(cmdPageAddrSet,
		byte(ys>>8), byte(ys), byte(ye>>8), byte(ye))
}

// writeRect writes pixel data to a rectangular region of the display.
func (d *Dev) writeRect(x, y, width, height int, pixels []byte) error {
	if err := d.setAddressWindow(x, y, x+width-1, y+height-1); err != nil {
		return err
	}
	if err := d.writeCommand(cmdMemoryWrite); err != nil {
		return err
	}
	return d.sendData(pixels)
}

// writeFullFrame writes the entire frame buffer to the display.
func (d *Dev) writeFullFrame(pixels []byte) error {
	return d.writeRect(0, 0, d.rect.Dx(), d.rect.Dy(), pixels)
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return rgb565.Model
}

// Bounds returns the image bounds of the display under the current
// orientation.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Options returns the panel description the device was built with.
// Mutate it only through the Dev methods.
func (d *Dev) Options() *ModelOptions {
	return d.opts
}

// Write writes raw pixel data to the display in big-endian RGB565 format.
// The data must be exactly d.rect.Dx() * d.rect.Dy() * 2 bytes.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, errHalted
	}
	if len(pixels) != len(d.buffer) {
		return 0, errors.New("mipitft: invalid buffer size")
	}
	if err := d.writeFullFrame(pixels); err != nil {
		return 0, err
	}
	copy(d.buffer, pixels)
	return len(pixels), nil
}

// Draw draws an image onto the display with differential update
// optimization. The dst rectangle specifies the destination region on the
// display. sp is the source image origin within dst.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errHalted
	}

	// Clip to display bounds
	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}

	// Fast path: full-frame native image.
	if srcImg, ok := src.(*rgb565.Image); ok {
		zeroPoint := image.Point{}
		if dst == d.rect && sp == zeroPoint && srcImg.Rect == d.rect {
			if err := d.writeFullFrame(srcImg.Pix); err != nil {
				return err
			}
			copy(d.buffer, srcImg.Pix)
			if d.next != nil {
				copy(d.next.Pix, srcImg.Pix)
				copy(d.last.Pix, srcImg.Pix)
			}
			return nil
		}
	}

	// Slow path: render to buffer with differential updates.
	// Lazy-initialize double buffer.
	if d.next == nil {
		d.next = rgb565.NewImage(d.rect)
		copy(d.next.Pix, d.buffer)
		d.last = rgb565.Image{
			Pix:    make([]byte, len(d.buffer)),
			Stride: d.next.Stride,
			Rect:   d.rect,
		}
		copy(d.last.Pix, d.buffer)
	}

	// Draw source into our buffer
	draw.Draw(d.next, dst, src, sp, draw.Src)

	// Calculate minimal bounding box of changed pixels
	minCol, maxCol, minRow, maxRow := d.calculateDiff()
	if minCol > maxCol {
		// No changes
		return nil
	}

	// Extract and write the changed region
	changed := d.extractRegion(minCol, maxCol, minRow, maxRow)
	if err := d.writeRect(minCol, minRow, maxCol-minCol+1, maxRow-minRow+1, changed); err != nil {
		return err
	}

	// Update stored buffers
	copy(d.buffer, d.next.Pix)
	copy(d.last.Pix, d.next.Pix)

	return nil
}

// calculateDiff compares the current and next buffers to find the minimal
// changed region. minCol > maxCol signals that nothing changed.
func (d *Dev) calculateDiff() (minCol, maxCol, minRow, maxRow int) {
	width := d.rect.Dx()
	height := d.rect.Dy()
	stride := width * 2

	minRow = height
	maxRow = -1
	minCol = width
	maxCol = -1

	for y := 0; y < height; y++ {
		rowStart := y * stride
		row := d.next.Pix[rowStart : rowStart+stride]
		lastRow := d.last.Pix[rowStart : rowStart+stride]

		if bytes.Equal(row, lastRow) {
			continue
		}
		if y < minRow {
			minRow = y
		}
		maxRow = y

		// Scan pixels within this row for precise boundaries
		for x := 0; x < width; x++ {
			i := x * 2
			if row[i] != lastRow[i] || row[i+1] != lastRow[i+1] {
				if x < minCol {
					minCol = x
				}
				if x > maxCol {
					maxCol = x
				}
			}
		}
	}

	return
}

// extractRegion extracts the pixel data for a rectangular region.
func (d *Dev) extractRegion(minCol, maxCol, minRow, maxRow int) []byte {
	width := maxCol - minCol + 1
	height := maxRow - minRow + 1
	stride := d.rect.Dx() * 2
	byteWidth := width * 2

	result := make([]byte, byteWidth*height)
	dstIdx := 0

	for y := minRow; y <= maxRow; y++ {
		srcStart := y*stride + minCol*2
		copy(result[dstIdx:], d.next.Pix[srcStart:srcStart+byteWidth])
		dstIdx += byteWidth
	}

	return result
}

// SetOrientation rotates and/or mirrors the display by rewriting MADCTL.
//
// The logical bounds swap width and height for landscape variants and the
// frame buffers restart empty. A previously cached window offset is kept;
// models whose offset depends on the orientation must use a non-cachable
// handler.
func (d *Dev) SetOrientation(o Orientation) error {
	if d.halted {
		return errHalted
	}

	d.opts.SetOrientation(o)
	size := d.opts.DisplaySize()
	d.rect = image.Rect(0, 0, int(size.W), int(size.H))
	d.buffer = make([]byte, int(size.W)*int(size.H)*2)
	d.next = nil

	return d.writeCommand(cmdMemAccessCtl, d.opts.MADCTL())
}

// Invert inverts the display colors.
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return errHalted
	}
	// Panels initialized with Inverted read "invert" relative to their
	// natural mode.
	if invert != d.inverted {
		return d.writeCommand(cmdInvertOn)
	}
	return d.writeCommand(cmdInvertOff)
}

// SetTearingEffect configures the controller's TE output pin.
func (d *Dev) SetTearingEffect(te TearingEffect) error {
	if d.halted {
		return errHalted
	}
	switch te {
	case TearingVertical:
		return d.writeCommand(cmdTearingOn, 0x00)
	case TearingHorizontalAndVertical:
		return d.writeCommand(cmdTearingOn, 0x01)
	default:
		return d.writeCommand(cmdTearingOff)
	}
}

// SetScrollArea defines the vertical scrolling region. topFixed and
// bottomFixed are the number of framebuffer lines pinned at each end; the
// lines in between scroll with ScrollTo.
func (d *Dev) SetScrollArea(topFixed, bottomFixed uint16) error {
	if d.halted {
		return errHalted
	}
	fbHeight := d.opts.FramebufferSize().H
	if uint32(topFixed)+uint32(bottomFixed) > uint32(fbHeight) {
		return errors.New("mipitft: scroll area larger than framebuffer")
	}
	scroll := fbHeight - topFixed - bottomFixed
	return d.writeCommand(cmdVScrollDef,
		byte(topFixed>>8), byte(topFixed),
		byte(scroll>>8), byte(scroll),
		byte(bottomFixed>>8), byte(bottomFixed))
}

// ScrollTo sets the framebuffer line displayed at the top of the scroll
// area.
func (d *Dev) ScrollTo(line uint16) error {
	if d.halted {
		return errHalted
	}
	return d.writeCommand(cmdVScrollStart, byte(line>>8), byte(line))
}

// Sleep puts the panel into sleep mode, retaining RAM content.
func (d *Dev) Sleep() error {
	if d.halted {
		return errHalted
	}
	return d.writeCommand(cmdSleepIn)
}

// Wake brings the panel out of sleep mode.
func (d *Dev) Wake() error {
	if d.halted {
		return errHalted
	}
	if err := d.writeCommand(cmdSleepOut); err != nil {
		return err
	}
	time.Sleep(120 * time.Millisecond)
	return nil
}

// Halt turns the display off. After calling Halt, the display will not
// respond to further commands until the device is re-initialized.
func (d *Dev) Halt() error {
	d.halted = true
	if err := d.writeCommand(cmdDisplayOff); err != nil {
		return err
	}
	return d.writeCommand(cmdSleepIn)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("mipitft.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}
