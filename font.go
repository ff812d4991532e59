package oled

// fontHeaderLen is the size of the glyph table header: pixel height, pixel
// width, inter-glyph spacing, first character code, last character code.
const fontHeaderLen = 5

// Font is a descriptor over a raw glyph table.
//
// The table layout is the header above followed by one glyph block per
// character code, column major, each column packed into ceil(height/8)
// bytes with the least significant bit on top. Externally authored tables
// using this layout load unmodified.
type Font struct {
	data []byte
}

// NewFont wraps data as a font, verifying that the header and every glyph it
// announces are actually present.
func NewFont(data []byte) (Font, error) {
	if len(data) < fontHeaderLen {
		return Font{}, ErrFontData
	}

	f := Font{data: data}
	glyphs := int(f.Last()) - int(f.First()) + 1
	if glyphs < 1 || len(data) < fontHeaderLen+glyphs*f.Width()*f.PartsPerLine() {
		return Font{}, ErrFontData
	}
	return f, nil
}

// Height is the glyph height in pixels.
func (f Font) Height() int { return int(f.data[0]) }

// Width is the glyph width in pixels.
func (f Font) Width() int { return int(f.data[1]) }

// Spacing is the inter-glyph spacing in pixels.
func (f Font) Spacing() int { return int(f.data[2]) }

// First is the first representable character code.
func (f Font) First() byte { return f.data[3] }

// Last is the last representable character code.
func (f Font) Last() byte { return f.data[4] }

// PartsPerLine is the number of packed bytes per glyph column.
func (f Font) PartsPerLine() int { return (f.Height() + 7) / 8 }
