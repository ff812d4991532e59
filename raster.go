package oled

// DrawPixel turns on the pixel at (x, y).
func (c *Canvas) DrawPixel(x, y int) {
	c.SetPixel(x, y, true)
}

// ClearPixel turns off the pixel at (x, y).
func (c *Canvas) ClearPixel(x, y int) {
	c.SetPixel(x, y, false)
}

// DrawLine draws a line between (x1, y1) and (x2, y2).
//
// Non-vertical lines are interpolated with a single real-valued slope and the
// row truncated toward zero, which keeps pixel placement identical to the
// controller's established rasterizer.
func (c *Canvas) DrawLine(x1, y1, x2, y2 int) {
	if x1 > x2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	if x1 == x2 {
		if y1 > y2 {
			y1, y2 = y2, y1
		}
		for y := y1; y <= y2; y++ {
			c.DrawPixel(x1, y)
		}
		return
	}

	m := float32(y2-y1) / float32(x2-x1)
	for x := x1; x <= x2; x++ {
		y := m*float32(x-x1) + float32(y1)
		c.DrawPixel(x, int(y))
	}
}

// DrawSquare fills the rectangle spanning width columns and height rows from
// (x, y).
func (c *Canvas) DrawSquare(x, y, width, height int) {
	c.square(x, y, width, height, true)
}

// ClearSquare clears the rectangle spanning width columns and height rows
// from (x, y).
func (c *Canvas) ClearSquare(x, y, width, height int) {
	c.square(x, y, width, height, false)
}

func (c *Canvas) square(x, y, width, height int, on bool) {
	for i := 0; i < width; i++ {
		for j := 0; j < height; j++ {
			c.SetPixel(x+i, y+j, on)
		}
	}
}

// DrawEmptySquare draws a rectangle outline. The width and height arguments
// are offsets to the far corner (x+width, y+height), so both edges are
// inclusive and the outline spans width+1 columns and height+1 rows.
func (c *Canvas) DrawEmptySquare(x, y, width, height int) {
	c.DrawLine(x, y, x+width, y)
	c.DrawLine(x, y+height, x+width, y+height)
	c.DrawLine(x, y, x, y+height)
	c.DrawLine(x+width, y, x+width, y+height)
}

// DrawCircle fills a disk of radius r centered at (x, y).
func (c *Canvas) DrawCircle(x, y, r int) {
	c.circle(x, y, r, true)
}

// ClearCircle clears a disk of radius r centered at (x, y).
func (c *Canvas) ClearCircle(x, y, r int) {
	c.circle(x, y, r, false)
}

// circle plots the four symmetric quadrant points for every (i, j) in the
// bounding box that passes the i²+j² ≤ r² membership test.
func (c *Canvas) circle(x, y, r int, on bool) {
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			if i*i+j*j <= r*r {
				c.SetPixel(x+i, y+j, on)
				c.SetPixel(x+i, y-j, on)
				c.SetPixel(x-i, y+j, on)
				c.SetPixel(x-i, y-j, on)
			}
		}
	}
}

// DrawCharWithFont draws one character at (x, y), scaled by an integer
// factor. Characters outside the font's supported range are ignored.
func (c *Canvas) DrawCharWithFont(x, y, scale int, font Font, ch byte) {
	if len(font.data) < fontHeaderLen {
		return
	}
	if ch < font.First() || ch > font.Last() {
		return
	}

	parts := font.PartsPerLine()
	for w := 0; w < font.Width(); w++ {
		pp := int(ch-font.First())*font.Width()*parts + w*parts + fontHeaderLen
		for lp := 0; lp < parts; lp++ {
			line := font.data[pp]
			for j := 0; j < 8; j, line = j+1, line>>1 {
				if line&1 != 0 {
					c.DrawSquare(x+w*scale, y+(lp<<3+j)*scale, scale, scale)
				}
			}
			pp++
		}
	}
}

// DrawStringWithFont draws s from left to right starting at (x, y), advancing
// by the font width plus inter-glyph spacing per character. No wrapping or
// clipping happens beyond the per-pixel bounds check.
func (c *Canvas) DrawStringWithFont(x, y, scale int, font Font, s string) {
	if len(font.data) < fontHeaderLen {
		return
	}
	for i := 0; i < len(s); i++ {
		c.DrawCharWithFont(x, y, scale, font, s[i])
		x += (font.Width() + font.Spacing()) * scale
	}
}

// DrawChar draws one character with the builtin 8x5 font.
func (c *Canvas) DrawChar(x, y, scale int, ch byte) {
	c.DrawCharWithFont(x, y, scale, Font8x5, ch)
}

// DrawString draws s with the builtin 8x5 font.
func (c *Canvas) DrawString(x, y, scale int, s string) {
	c.DrawStringWithFont(x, y, scale, Font8x5, s)
}
