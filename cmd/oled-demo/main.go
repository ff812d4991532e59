// Command oled-demo exercises an SSD1306 module on an I²C bus: primitives,
// builtin-font text, optional TrueType text and an optional BMP blit.
package main

import (
	"fmt"
	"image"
	"os"
	"time"

	"github.com/golang/freetype"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"periph.io/x/host/v3"

	"github.com/glowkit/oled"
	"github.com/glowkit/oled/pixel"
)

func main() {
	widthFlag := flag.Int("width", 0, "Display width")
	heightFlag := flag.Int("height", 0, "Display height")
	i2cDeviceFlag := flag.Int("i2c-dev", oled.DefaultI2CConfig.Device, "I²C device number (default: use first available)")
	i2cAddrFlag := flag.Uint8("i2c-addr", oled.DefaultI2CConfig.Addr, "I²C device address")
	externalVCCFlag := flag.Bool("external-vcc", false, "Display uses an external VCC supply")
	rotateFlag := flag.String("rotate", "", "Canvas rotation")
	textFlag := flag.String("text", "glowkit", "Text to draw with the builtin font")
	ttfFlag := flag.String("ttf", "", "TrueType font file to render the text with instead")
	bmpFlag := flag.String("bmp", "", "Monochrome BMP file to blit")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fatal(err)
	}
	defer logger.Sync() //nolint:errcheck

	var rotation oled.Rotation
	switch *rotateFlag {
	case "", "no", "0":
		rotation = oled.NoRotation
	case "90", "right", "cw":
		rotation = oled.Rotate90
	case "180", "flip":
		rotation = oled.Rotate180
	case "270", "left", "ccw":
		rotation = oled.Rotate270
	default:
		fatal(fmt.Errorf("invalid rotation %q specified", *rotateFlag))
	}
	logger.Info("using rotation", zap.Stringer("rotation", rotation))

	if _, err = host.Init(); err != nil {
		fatal(err)
	}

	conn, err := oled.OpenI2C(&oled.I2CConfig{
		Device: *i2cDeviceFlag,
		Addr:   *i2cAddrFlag,
	})
	if err != nil {
		fatal(err)
	}
	logger.Info("using connection", zap.Stringer("conn", conn))

	dev, err := oled.New(conn, &oled.Config{
		Width:       *widthFlag,
		Height:      *heightFlag,
		Rotation:    rotation,
		ExternalVCC: *externalVCCFlag,
		Logger:      logger,
	})
	if err != nil {
		fatal(err)
	}
	defer dev.Close()
	logger.Info("using device", zap.Stringer("device", dev))

	var (
		w = dev.Width()
		h = dev.Height()
	)

	// Border and a disk in the lower right corner.
	dev.DrawEmptySquare(0, 0, w-1, h-1)
	dev.DrawCircle(w-12, h-12, 6)

	if *bmpFlag != "" {
		data, err := os.ReadFile(*bmpFlag)
		if err != nil {
			fatal(err)
		}
		dev.ShowImageWithOffset(data, 4, 4)
	}

	switch {
	case *ttfFlag != "":
		if err = drawTrueType(dev, *ttfFlag, *textFlag); err != nil {
			fatal(err)
		}
	default:
		dev.DrawString(4, h/2-4, 1, *textFlag)
	}

	dev.Flush()

	// Blink the text region so it is obvious the bus is alive.
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	logger.Info("hit control-c to stop")
	for inverted := false; ; inverted = !inverted {
		<-ticker.C
		dev.Invert(inverted)
	}
}

// drawTrueType renders text onto the device canvas with a TrueType font,
// using the canvas as a draw.Image target.
func drawTrueType(dev *oled.Device, path, text string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	ttf, err := freetype.ParseFont(data)
	if err != nil {
		return err
	}

	const size = 13
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttf)
	ctx.SetFontSize(size)
	ctx.SetClip(dev.Bounds())
	ctx.SetDst(dev)
	ctx.SetSrc(image.NewUniform(pixel.On))
	ctx.SetHinting(font.HintingFull)

	baseline := fixed.P(4, dev.Height()/2+size/2)
	_, err = ctx.DrawString(text, baseline)
	return err
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
