package oled

import (
	"github.com/glowkit/oled/conn"
)

// Conn is the connection interface for communicating with hardware. Write
// performs one blocking bus transfer of an already control-framed payload.
type Conn interface {
	String() string

	// Close the connection.
	Close() error

	// Write sends p over the bus in a single transaction.
	Write(p []byte) (n int, err error)
}

// I2CConfig describes the I²C bus configuration.
type I2CConfig struct {
	// Device is the I²C device, use -1 to use the first available device.
	Device int

	// Addr is the I²C address.
	Addr uint8
}

var DefaultI2CConfig = I2CConfig{
	Device: -1,
	Addr:   0x3C,
}

// OpenI2C opens an I²C connection to the display controller.
func OpenI2C(config *I2CConfig) (Conn, error) {
	if config == nil {
		config = new(I2CConfig)
		*config = DefaultI2CConfig
	}
	return conn.OpenI2C(config.Device, config.Addr)
}
