// Package rgb565 implements image.Image for the 16-bit 5-6-5 pixel format
// of MIPI DCS TFT panels.
//
// The Image type stores pixels big-endian, two bytes each, matching the
// byte order the panels consume over SPI after COLMOD selects 16bpp. Its
// Pix buffer can therefore be handed to the display driver without any
// conversion pass.
//
// Standard Go colors are converted by truncating each component to the
// panel's channel depth; RGB565.RGBA expands channels back by bit
// replication so that full-scale values round-trip exactly.
package rgb565
