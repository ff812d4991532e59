// Package oled drives SSD1306-class monochrome OLED displays over an I²C bus.
//
// Drawing operations only mutate the in-memory canvas; Flush pushes the whole
// buffer to the controller in a single bulk transfer.
package oled

import (
	"errors"
	"os"
)

var debug bool

func init() {
	debug = os.Getenv("OLED_DEBUG") != ""
}

// Errors
var (
	ErrCanvasSize = errors.New("oled: invalid canvas size")
	ErrFontData   = errors.New("oled: truncated font table")
)

// Rotation defines pixel rotation.
type Rotation uint8

// Supported rotations.
const (
	NoRotation Rotation = iota
	Rotate90            // Rotate 90° clock wise
	Rotate180           // Rotate 180°
	Rotate270           // Rotate 270° clock wise
)

func (r Rotation) String() string {
	switch r % 4 {
	case Rotate90:
		return "90°"
	case Rotate180:
		return "180°"
	case Rotate270:
		return "270°"
	default:
		return "0°"
	}
}
