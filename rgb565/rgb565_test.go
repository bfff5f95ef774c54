package rgb565

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestNewPacking(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    RGB565
	}{
		{"black", 0, 0, 0, 0x0000},
		{"white", 255, 255, 255, 0xFFFF},
		{"red", 255, 0, 0, 0xF800},
		{"green", 0, 255, 0, 0x07E0},
		{"blue", 0, 0, 255, 0x001F},
		{"mid gray", 128, 128, 128, 0x8410},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("New(%d, %d, %d) = 0x%04X, want 0x%04X", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestRGBA(t *testing.T) {
	tests := []struct {
		name    string
		c       RGB565
		r, g, b uint32
	}{
		{"black", 0x0000, 0, 0, 0},
		{"white", 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF},
		{"red", 0xF800, 0xFFFF, 0, 0},
		{"green", 0x07E0, 0, 0xFFFF, 0},
		{"blue", 0x001F, 0, 0, 0xFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("RGBA() = (%#x, %#x, %#x), want (%#x, %#x, %#x)", r, g, b, tt.r, tt.g, tt.b)
			}
			if a != 0xFFFF {
				t.Errorf("alpha = %#x, want 0xFFFF", a)
			}
		})
	}
}

func TestModelConversion(t *testing.T) {
	tests := []struct {
		name string
		c    color.Color
		want RGB565
	}{
		{"red", color.RGBA{R: 255, A: 255}, 0xF800},
		{"green", color.RGBA{G: 255, A: 255}, 0x07E0},
		{"blue", color.RGBA{B: 255, A: 255}, 0x001F},
		{"white", color.White, 0xFFFF},
		{"black", color.Black, 0x0000},
		{"identity", RGB565(0x1234), 0x1234},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Model.Convert(tt.c).(RGB565); got != tt.want {
				t.Errorf("Model.Convert(%v) = 0x%04X, want 0x%04X", tt.c, got, tt.want)
			}
		})
	}
}

func TestImageLayout(t *testing.T) {
	img := NewImage(image.Rect(0, 0, 4, 2))

	if img.Stride != 8 {
		t.Errorf("Stride = %d, want 8", img.Stride)
	}
	if len(img.Pix) != 16 {
		t.Errorf("len(Pix) = %d, want 16", len(img.Pix))
	}

	img.SetRGB565(1, 0, 0x1234)
	if img.Pix[2] != 0x12 || img.Pix[3] != 0x34 {
		t.Errorf("Pix[2:4] = % X, want 12 34 (big-endian)", img.Pix[2:4])
	}
	if got := img.RGB565At(1, 0); got != 0x1234 {
		t.Errorf("RGB565At(1, 0) = 0x%04X, want 0x1234", got)
	}
}

func TestImageOutOfBounds(t *testing.T) {
	img := NewImage(image.Rect(0, 0, 4, 2))

	// Out-of-bounds access must not touch (or read past) the buffer.
	img.SetRGB565(4, 0, 0xFFFF)
	img.SetRGB565(0, 2, 0xFFFF)
	img.SetRGB565(-1, 0, 0xFFFF)
	for i, b := range img.Pix {
		if b != 0 {
			t.Fatalf("Pix[%d] = 0x%02X after out-of-bounds Set", i, b)
		}
	}
	if got := img.RGB565At(4, 0); got != 0 {
		t.Errorf("RGB565At(4, 0) = 0x%04X, want 0", got)
	}
}

func TestImageDraw(t *testing.T) {
	img := NewImage(image.Rect(0, 0, 4, 4))
	red := image.NewUniform(color.RGBA{R: 255, A: 255})

	draw.Draw(img, image.Rect(0, 0, 4, 2), red, image.Point{}, draw.Src)

	if got := img.RGB565At(3, 1); got != 0xF800 {
		t.Errorf("RGB565At(3, 1) = 0x%04X, want 0xF800", got)
	}
	if got := img.RGB565At(0, 2); got != 0 {
		t.Errorf("RGB565At(0, 2) = 0x%04X, want 0 (outside draw rect)", got)
	}
	if !img.Opaque() {
		t.Error("Opaque() = false, want true")
	}
}
