package oled

// SSD1306 command set.
const (
	setCommandMode   = 0x00
	setMemAddr       = 0x20
	setColAddr       = 0x21
	setPageAddr      = 0x22
	setDispStartLine = 0x40
	setContrast      = 0x81
	setChargePump    = 0x8D
	setSegRemap      = 0xA0
	setEntireOn      = 0xA4
	setNormInv       = 0xA6
	setMuxRatio      = 0xA8
	setDisp          = 0xAE
	setDispOn        = 0xAF
	setComOutDir     = 0xC0
	setDispOffset    = 0xD3
	setDispClockDiv  = 0xD5
	setPrecharge     = 0xD9
	setComPinCfg     = 0xDA
	setVComDesel     = 0xDB
)

// Control framing markers. Every bus write leads with one of these: 0x00 for
// a single command byte, 0x40 for a bulk pixel-data payload.
const (
	controlCommand = 0x00
	controlData    = 0x40
)
