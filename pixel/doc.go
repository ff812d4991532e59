// Package pixel implements the monochrome color model used by OLED
// canvases.
package pixel
