package mipitft

// MIPI DCS opcodes shared by the ST77xx/ILI93xx controller family.
// ILI9341 datasheet pp. 83-88; the ST7789 set is identical for these.
const (
	cmdNop        byte = 0x00 // No Operation
	cmdSWReset    byte = 0x01 // Software Reset
	cmdSleepIn    byte = 0x10 // Enter Sleep Mode
	cmdSleepOut   byte = 0x11 // Sleep Out
	cmdNormalOn   byte = 0x13 // Normal Display Mode ON
	cmdInvertOff  byte = 0x20 // Display Inversion OFF
	cmdInvertOn   byte = 0x21 // Display Inversion ON
	cmdDisplayOff byte = 0x28 // Display OFF
	cmdDisplayOn  byte = 0x29 // Display ON

	cmdColumnAddrSet byte = 0x2A // CASET: Column Address Set
	cmdPageAddrSet   byte = 0x2B // PASET: Page Address Set
	cmdMemoryWrite   byte = 0x2C // RAMWR: Memory Write

	cmdVScrollDef   byte = 0x33 // VSCRDEF: Vertical Scrolling Definition
	cmdTearingOff   byte = 0x34 // TEOFF: Tearing Effect Line OFF
	cmdTearingOn    byte = 0x35 // TEON: Tearing Effect Line ON
	cmdMemAccessCtl byte = 0x36 // MADCTL: Memory Access Control
	cmdVScrollStart byte = 0x37 // VSCRSADD: Vertical Scrolling Start Address
	cmdPixelFormat  byte = 0x3A // COLMOD: Interface Pixel Format
)

// COLMOD value for 16 bits per pixel on both the DPI and DBI interfaces.
const pixelFormat16bpp byte = 0x55

// TearingEffect selects what the controller's TE output pin signals.
type TearingEffect uint8

const (
	// TearingOff disables the TE output.
	TearingOff TearingEffect = iota
	// TearingVertical outputs vertical blanking information only.
	TearingVertical
	// TearingHorizontalAndVertical outputs horizontal and vertical
	// blanking information.
	TearingHorizontalAndVertical
)
