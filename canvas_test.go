package oled

import (
	"image"
	"image/color"
	"testing"

	"github.com/glowkit/oled/pixel"
)

func mustCanvas(t *testing.T, width, height int, rotation Rotation) *Canvas {
	t.Helper()
	c, err := NewCanvas(width, height, rotation)
	if err != nil {
		t.Fatalf("NewCanvas(%d, %d, %v) failed: %v", width, height, rotation, err)
	}
	return c
}

// bitAt reads the physical buffer bit for (bx, by) without rotation mapping.
func bitAt(c *Canvas, bx, by int) bool {
	return c.pix[bx+c.width*(by>>3)]&(1<<uint(by&7)) != 0
}

func countBits(c *Canvas) (n int) {
	for _, b := range c.pix {
		for ; b != 0; b >>= 1 {
			n += int(b & 1)
		}
	}
	return
}

func TestNewCanvas(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantErr       bool
	}{
		{"128x64", 128, 64, false},
		{"64x32", 64, 32, false},
		{"1x8 (minimum)", 1, 8, false},
		{"width zero", 0, 64, true},
		{"height zero", 128, 0, true},
		{"negative width", -1, 64, true},
		{"height not multiple of 8", 128, 30, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			c, err := NewCanvas(test.width, test.height, NoRotation)
			if test.wantErr {
				if err == nil {
					it.Fatal("expected error, got none")
				}
				return
			}
			if err != nil {
				it.Fatalf("unexpected error: %v", err)
			}

			if want := test.width*test.height/8 + 1; len(c.buf) != want {
				it.Errorf("expected %d buffer bytes, got %d", want, len(c.buf))
			}
			if c.Pages() != test.height/8 {
				it.Errorf("expected %d pages, got %d", test.height/8, c.Pages())
			}
		})
	}
}

func TestSetPixelNoRotation(t *testing.T) {
	c := mustCanvas(t, 16, 16, NoRotation)

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			c.SetPixel(x, y, true)
			if !bitAt(c, x, y) {
				t.Fatalf("pixel (%d,%d) not set at pix[%d] bit %d", x, y, x+16*(y>>3), y&7)
			}
			c.SetPixel(x, y, false)
			if bitAt(c, x, y) {
				t.Fatalf("pixel (%d,%d) not cleared", x, y)
			}
		}
	}
}

func TestSetPixelRotationMapping(t *testing.T) {
	const (
		width  = 128
		height = 64
	)

	// Expected physical coordinates per rotation.
	mapping := map[Rotation]func(x, y int) (int, int){
		NoRotation: func(x, y int) (int, int) { return x, y },
		Rotate90:   func(x, y int) (int, int) { return height - 1 - y + width/2, x },
		Rotate180:  func(x, y int) (int, int) { return width - 1 - x, height - 1 - y },
		Rotate270:  func(x, y int) (int, int) { return y, height - 1 - x },
	}

	for rotation, expect := range mapping {
		t.Run(rotation.String(), func(it *testing.T) {
			c := mustCanvas(it, width, height, rotation)

			for y := 0; y < height; y += 5 {
				for x := 0; x < width; x += 7 {
					c.Clear()
					c.SetPixel(x, y, true)

					bx, by := expect(x, y)
					inBounds := bx >= 0 && bx < width && by >= 0 && by < height

					if n := countBits(c); inBounds && n != 1 {
						it.Fatalf("rotation %v pixel (%d,%d): expected 1 bit set, got %d", rotation, x, y, n)
					} else if !inBounds && n != 0 {
						it.Fatalf("rotation %v pixel (%d,%d): expected clamped no-op, got %d bits", rotation, x, y, n)
					}
					if inBounds && !bitAt(c, bx, by) {
						it.Fatalf("rotation %v pixel (%d,%d): bit not at physical (%d,%d)", rotation, x, y, bx, by)
					}
				}
			}
		})
	}
}

func TestSetPixelOutOfBounds(t *testing.T) {
	c := mustCanvas(t, 32, 16, NoRotation)

	for _, p := range []image.Point{
		{-1, 0}, {0, -1}, {32, 0}, {0, 16}, {1000, 1000}, {-1000, -1000},
	} {
		c.SetPixel(p.X, p.Y, true)
	}
	if n := countBits(c); n != 0 {
		t.Errorf("expected no pixels set, got %d", n)
	}
}

func TestClear(t *testing.T) {
	c := mustCanvas(t, 32, 16, NoRotation)
	for y := 0; y < 16; y++ {
		for x := 0; x < 32; x++ {
			c.SetPixel(x, y, true)
		}
	}
	c.buf[0] = controlData

	c.Clear()
	for i, b := range c.pix {
		if b != 0 {
			t.Fatalf("pix[%d] = %#02x after Clear", i, b)
		}
	}
	if c.buf[0] != controlData {
		t.Error("Clear must not touch the framing slot")
	}
}

func TestSetRotation(t *testing.T) {
	c := mustCanvas(t, 128, 64, NoRotation)

	c.SetRotation(Rotate90)
	if c.Rotation() != Rotate90 {
		t.Fatalf("expected rotation %v, got %v", Rotate90, c.Rotation())
	}

	// Invalid values leave the setting unchanged.
	c.SetRotation(Rotation(7))
	if c.Rotation() != Rotate90 {
		t.Errorf("expected rotation %v after invalid set, got %v", Rotate90, c.Rotation())
	}
}

func TestCanvasImage(t *testing.T) {
	c := mustCanvas(t, 32, 16, NoRotation)

	if v := c.Bounds(); v != image.Rect(0, 0, 32, 16) {
		t.Errorf("expected bounds 32x16, got %v", v)
	}
	if c.ColorModel() != pixel.MonoModel {
		t.Error("expected monochrome color model")
	}

	c.Set(3, 9, color.White)
	if v := c.At(3, 9); v != pixel.On {
		t.Errorf("expected pixel on, got %#+v", v)
	}
	c.Set(3, 9, color.Black)
	if v := c.At(3, 9); v != pixel.Off {
		t.Errorf("expected pixel off, got %#+v", v)
	}

	if v := c.At(-1, 0); v != color.Transparent {
		t.Errorf("expected transparent out of bounds, got %#+v", v)
	}
}

func TestRotationString(t *testing.T) {
	for r, want := range map[Rotation]string{
		NoRotation: "0°",
		Rotate90:   "90°",
		Rotate180:  "180°",
		Rotate270:  "270°",
	} {
		if v := r.String(); v != want {
			t.Errorf("expected %q, got %q", want, v)
		}
	}
}
