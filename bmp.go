package oled

import "encoding/binary"

// Windows bitmap header field offsets (little-endian).
const (
	bmpMinSize      = 54
	bmpOffPixelData = 10
	bmpOffDIBSize   = 14
	bmpOffWidth     = 18
	bmpOffHeight    = 22
	bmpOffBitCount  = 28
	bmpOffCompress  = 30
)

// ShowImage blits an uncompressed 1-bit Windows bitmap onto the canvas at
// the origin. See ShowImageWithOffset.
func (c *Canvas) ShowImage(data []byte) {
	c.ShowImageWithOffset(data, 0, 0)
}

// ShowImageWithOffset blits an uncompressed 1-bit Windows bitmap onto the
// canvas, translated by (xOffset, yOffset). The data slice must hold the
// whole file, header included.
//
// Unsupported or malformed buffers are ignored: anything shorter than the
// 54-byte header, not 1 bit per pixel, compressed, or whose declared palette
// and pixel rows run past the end of the slice draws nothing.
func (c *Canvas) ShowImageWithOffset(data []byte, xOffset, yOffset int) {
	if len(data) < bmpMinSize {
		return
	}

	var (
		pixelData = int(binary.LittleEndian.Uint32(data[bmpOffPixelData:]))
		dibSize   = int(binary.LittleEndian.Uint32(data[bmpOffDIBSize:]))
		width     = int(binary.LittleEndian.Uint32(data[bmpOffWidth:]))
		height    = int(int32(binary.LittleEndian.Uint32(data[bmpOffHeight:])))
		bitCount  = binary.LittleEndian.Uint16(data[bmpOffBitCount:])
		compress  = binary.LittleEndian.Uint32(data[bmpOffCompress:])
	)
	if bitCount != 1 {
		return
	}
	if compress != 0 {
		return
	}

	palette := 14 + dibSize
	if palette < 0 || palette+8 > len(data) {
		return
	}

	// The palette index whose entry is all black is the bit value that lights
	// a pixel. When neither entry is all black, the second index wins.
	colorVal := byte(1)
	for i := 0; i < 2; i++ {
		if data[palette+i*4] == 0 && data[palette+i*4+1] == 0 && data[palette+i*4+2] == 0 {
			colorVal = byte(i)
			break
		}
	}

	rows := height
	if rows < 0 {
		rows = -rows
	}

	// Rows are padded to 4-byte boundaries.
	stride := (width + 7) / 8
	if stride&3 != 0 {
		stride += 4 - stride&3
	}

	if width < 1 || rows < 1 || pixelData < 0 || pixelData+rows*stride > len(data) {
		return
	}

	for i := 0; i < rows; i++ {
		// A positive height means bottom-up row storage.
		y := i
		if height > 0 {
			y = rows - 1 - i
		}

		row := data[pixelData+i*stride:]
		for x := 0; x < width; x++ {
			if (row[x>>3]>>(7-uint(x&7)))&1 == colorVal {
				c.DrawPixel(xOffset+x, yOffset+y)
			}
		}
	}
}
