package oled

import (
	"fmt"

	"go.uber.org/zap"
)

const (
	defaultWidth  = 128
	defaultHeight = 64
)

// Config is the display configuration.
type Config struct {
	// Width of the display in pixels.
	Width int

	// Height of the display in pixels.
	Height int

	// Rotation of the canvas.
	Rotation Rotation

	// ExternalVCC selects the external charge pump and precharge timings.
	ExternalVCC bool

	// Logger receives bus transfer diagnostics. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Device drives one SSD1306 display. It owns the canvas and turns buffer
// state and configuration changes into ordered control-framed bus writes.
//
// Bus transfer failures never surface as errors from drawing, configuration
// or flush calls; they are reported on the diagnostic logger only. A Device
// is not safe for concurrent use without external serialization.
type Device struct {
	*Canvas
	c           Conn
	log         *zap.Logger
	externalVCC bool
	halted      bool
}

// New allocates the canvas and brings the controller up with the full
// initialization sequence. Width and height default to 128x64.
func New(c Conn, config *Config) (*Device, error) {
	if config.Width == 0 {
		config.Width = defaultWidth
	}
	if config.Height == 0 {
		config.Height = defaultHeight
	}

	canvas, err := NewCanvas(config.Width, config.Height, config.Rotation)
	if err != nil {
		return nil, err
	}

	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}

	d := &Device{
		Canvas:      canvas,
		c:           c,
		log:         log,
		externalVCC: config.ExternalVCC,
	}
	d.init()
	return d, nil
}

func (d *Device) String() string {
	return fmt.Sprintf("SSD1306 OLED %dx%d", d.width, d.height)
}

func (d *Device) init() {
	var (
		chargePump = byte(0x14)
		precharge  = byte(0xF1)
		comPins    = byte(0x12)
	)
	if d.externalVCC {
		chargePump, precharge = 0x10, 0x22
	}
	if d.width > 2*d.height {
		comPins = 0x02
	}

	for _, cmd := range []byte{
		setDisp,
		// timing and driving scheme
		setDispClockDiv, 0x80,
		setMuxRatio, byte(d.height - 1),
		setDispOffset, 0x00,
		// resolution and layout
		setDispStartLine,
		setChargePump, chargePump,
		setSegRemap | 0x01,  // column 127 mapped to SEG0
		setComOutDir | 0x08, // scan from COM[N-1] to COM0
		setComPinCfg, comPins,
		// display
		setContrast, 0xFF,
		setPrecharge, precharge,
		setVComDesel, 0x30,
		setEntireOn, // output follows RAM contents
		setNormInv,  // not inverted
		setDisp | 0x01,
		// addressing
		setMemAddr, 0x00, // horizontal
	} {
		d.command(cmd)
	}
}

// command sends one control-framed command byte.
func (d *Device) command(val byte) {
	n, err := d.c.Write([]byte{controlCommand, val})
	if err != nil {
		d.log.Warn("oled: command write failed",
			zap.Uint8("command", val),
			zap.Int("written", n),
			zap.Error(err))
	} else if debug {
		d.log.Debug("oled: command write",
			zap.Uint8("command", val),
			zap.Int("written", n))
	}
}

// Reset issues the legacy wake-up sequence. It is shorter than the one New
// runs and independent of the configured geometry; both sequences are kept
// as-is for compatibility with deployed modules.
func (d *Device) Reset() {
	for _, cmd := range []byte{
		setCommandMode,
		setDisp,
		setEntireOn,
		setDispClockDiv, 0x80,
		setChargePump, 0x14,
		setNormInv,
		setDispOffset, 0x00,
		setDispStartLine,
		setDispOn,
	} {
		d.command(cmd)
	}
}

// PowerOn turns the display on.
func (d *Device) PowerOn() {
	d.command(setDisp | 0x01)
}

// PowerOff turns the display off.
func (d *Device) PowerOff() {
	d.command(setDisp)
}

// SetContrast adjusts the contrast level.
func (d *Device) SetContrast(level uint8) {
	d.command(setContrast)
	d.command(level)
}

// Invert toggles inverted video mode.
func (d *Device) Invert(inv bool) {
	var b byte
	if inv {
		b = 0x01
	}
	d.command(setNormInv | b)
}

// VFlip toggles the COM output scan direction, flipping the panel
// vertically.
func (d *Device) VFlip(flip bool) {
	var b byte
	if !flip {
		b = 0x08
	}
	d.command(setComOutDir | b)
}

// HFlip toggles the segment remap, flipping the panel horizontally.
func (d *Device) HFlip(flip bool) {
	var b byte
	if !flip {
		b = 0x01
	}
	d.command(setSegRemap | b)
}

// Rotate flips the panel 180° in hardware by composing VFlip and HFlip.
//
// Deprecated: use SetRotation on the canvas instead.
func (d *Device) Rotate(flip bool) {
	d.VFlip(flip)
	d.HFlip(flip)
}

// Flush sets the column and page addressing windows and pushes the whole
// canvas to the controller in one bulk transfer.
func (d *Device) Flush() {
	colStart, colEnd := byte(0), byte(d.width-1)
	if d.width == 64 {
		// 64-column modules wire SEG32..SEG95; shift the window to match.
		colStart += 32
		colEnd += 32
	}

	for _, cmd := range []byte{
		setColAddr, colStart, colEnd,
		setPageAddr, 0x00, byte(d.pages - 1),
	} {
		d.command(cmd)
	}

	d.buf[0] = controlData
	if n, err := d.c.Write(d.buf); err != nil {
		d.log.Warn("oled: flush failed",
			zap.Int("written", n),
			zap.Error(err))
	}
}

// Close powers the display off and closes the connection.
func (d *Device) Close() error {
	if !d.halted {
		d.PowerOff()
		d.halted = true
	}
	return d.c.Close()
}
