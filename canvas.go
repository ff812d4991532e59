package oled

import (
	"image"
	"image/color"

	"github.com/glowkit/oled/pixel"
)

// Canvas is a page-packed monochrome pixel buffer.
//
// Pixels are stored the way SSD1306-class controllers expect them: each byte
// holds a vertical strip of 8 pixels ("page"), least significant bit on top,
// at pix[x + width*(y>>3)]. One framing byte precedes the addressable region;
// it is reserved for the bulk-transfer control marker and never holds pixel
// state.
//
// Canvas implements draw.Image, so image/draw and font rasterizers compose
// with it directly.
type Canvas struct {
	width    int
	height   int
	pages    int
	rotation Rotation
	buf      []byte // framing slot followed by the addressable region
	pix      []byte // buf[1:]
}

// NewCanvas allocates a zero-filled canvas. The height must be a positive
// multiple of 8.
func NewCanvas(width, height int, rotation Rotation) (*Canvas, error) {
	if width < 1 || height < 1 || height%8 != 0 {
		return nil, ErrCanvasSize
	}

	c := &Canvas{
		width:  width,
		height: height,
		pages:  height / 8,
	}
	c.buf = make([]byte, width*c.pages+1)
	c.pix = c.buf[1:]
	c.SetRotation(rotation)
	return c, nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Pages returns the number of 8-pixel pages.
func (c *Canvas) Pages() int { return c.pages }

// Rotation returns the active rotation.
func (c *Canvas) Rotation() Rotation { return c.rotation }

// SetRotation updates the rotation applied to subsequent pixel operations.
// Values outside the four supported rotations leave the setting unchanged.
func (c *Canvas) SetRotation(rotation Rotation) {
	if rotation > Rotate270 {
		return
	}
	c.rotation = rotation
}

// Clear zeroes the addressable region. The framing slot is left alone.
func (c *Canvas) Clear() {
	for i := range c.pix {
		c.pix[i] = 0
	}
}

// SetPixel sets or clears the pixel at (x, y). Coordinates that map outside
// the buffer are silently ignored.
func (c *Canvas) SetPixel(x, y int, on bool) {
	bx, by := c.mapToBuffer(x, y)
	if bx < 0 || bx >= c.width || by < 0 || by >= c.height {
		return
	}

	var (
		pos = bx + c.width*(by>>3)
		bit = byte(1) << uint(by&7)
	)
	if on {
		c.pix[pos] |= bit
	} else {
		c.pix[pos] &^= bit
	}
}

// mapToBuffer translates logical coordinates to physical buffer coordinates.
// The +width/2 term in the 90° case is part of the established pixel
// placement contract and is deliberately not mirrored in the 270° case.
func (c *Canvas) mapToBuffer(x, y int) (bx, by int) {
	switch c.rotation {
	case Rotate90:
		return c.height - 1 - y + c.width/2, x
	case Rotate180:
		return c.width - 1 - x, c.height - 1 - y
	case Rotate270:
		return y, c.height - 1 - x
	default:
		return x, y
	}
}

// ColorModel returns the monochrome color model.
func (c *Canvas) ColorModel() color.Model {
	return pixel.MonoModel
}

// Bounds is the canvas bounding box.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// At returns the color of the pixel at (x, y) after rotation mapping.
func (c *Canvas) At(x, y int) color.Color {
	bx, by := c.mapToBuffer(x, y)
	if bx < 0 || bx >= c.width || by < 0 || by >= c.height {
		return color.Transparent
	}

	var (
		pos = bx + c.width*(by>>3)
		bit = byte(1) << uint(by&7)
	)
	return pixel.Mono{On: c.pix[pos]&bit != 0}
}

// Set sets the pixel at (x, y) to the monochrome conversion of col.
func (c *Canvas) Set(x, y int, col color.Color) {
	c.SetPixel(x, y, pixel.MonoModel.Convert(col).(pixel.Mono).On)
}
