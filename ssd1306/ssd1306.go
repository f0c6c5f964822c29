// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"

	"github.com/displayworks/oled/font"
)

// Command opcodes. See the datasheet, page 28, for the full table.
const (
	_CHARGEPUMP          = 0x8D
	_COLUMNADDR          = 0x21
	_COMSCANDEC          = 0xC8
	_COMSCANINC          = 0xC0
	_DISPLAYALLON_RESUME = 0xA4
	_DISPLAYOFF          = 0xAE
	_DISPLAYON           = 0xAF
	_INVERTDISPLAY       = 0xA7
	_MEMORYMODE          = 0x20
	_NORMALDISPLAY       = 0xA6
	_PAGEADDR            = 0x22
	_SEGREMAP            = 0xA0
	_SETCOMPINS          = 0xDA
	_SETCONTRAST         = 0x81
	_SETDISPLAYCLOCKDIV  = 0xD5
	_SETDISPLAYOFFSET    = 0xD3
	_SETMULTIPLEX        = 0xA8
	_SETPRECHARGE        = 0xD9
	_SETSEGMENTREMAP     = 0xA1
	_SETSTARTLINE        = 0x40
	_SETVCOMDETECT       = 0xDB
)

// I²C control bytes, prefixed to every transaction to discriminate the
// payload that follows.
const (
	i2cCmd  = 0x00 // one command byte follows
	i2cData = 0x40 // a stream of GDDRAM bytes follows
)

const (
	// Width is the fixed panel width in pixels. All SSD1306 panels are 128
	// segments wide; shorter modules exist but are not supported.
	Width = 128
	// MaxHeight is the tallest supported panel.
	MaxHeight = 64
	// bufferSize is sized for the tallest panel regardless of the configured
	// height so that the addressing arithmetic stays branch-free. A 128x32
	// panel simply never touches the upper half.
	bufferSize = Width * MaxHeight / 8

	defaultContrast = 150
)

// ErrHeight is latched at construction when the requested height exceeds
// MaxHeight. No bus traffic happens in that case.
var ErrHeight = errors.New("ssd1306: height must be between 1 and 64")

// Color is the color of a single pixel. The values double as the byte fill
// pattern for Fill, which is why White is 0xFF and not 1.
type Color byte

// Valid pixel colors. White means the pixel is lit.
const (
	Black Color = 0x00
	White Color = 0xFF
)

// HardwareConfig selects the COM pin layout of the OLED panel. Vendors wire
// the panel rows to different SSD1306 pins; a wrong value shows every other
// row blank or interleaved.
//
// As a rule of thumb use AltNoRemap for 128x64 panels and SeqNoRemap for
// 128x32 panels.
type HardwareConfig byte

// Possible COM pin configurations, the argument to command 0xDA.
const (
	SeqNoRemap HardwareConfig = 0x02
	SeqRemap   HardwareConfig = 0x22
	AltNoRemap HardwareConfig = 0x12
	AltRemap   HardwareConfig = 0x32
)

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	H:    64,
	HW:   AltNoRemap,
	Addr: 0x3C,
}

// Opts defines the options for the device.
type Opts struct {
	// H is the panel height in pixels, at most MaxHeight. 0 defaults to 64.
	H int
	// HW is the COM pin hardware configuration. 0 defaults to AltNoRemap.
	HW HardwareConfig
	// Addr is the 7-bit I²C address of the display. 0 defaults to 0x3C.
	Addr uint16
	// Font is the initial font for text rendering. An empty Font defaults to
	// font.Font7x10.
	Font font.Font
}

// Dev is an open handle to one display controller.
//
// It exclusively owns its framebuffer; nothing reaches the bus until Init or
// Update is called.
type Dev struct {
	// Communication.
	c conn.Conn

	// Immutable geometry.
	h  int
	hw HardwareConfig

	// Mutable.
	// The GDDRAM mirror: page-major, column-minor. Byte x + Width*(y/8)
	// holds the 8 vertically stacked pixels of column x in band y/8, bit
	// y%8 being the topmost.
	buffer           [bufferSize]byte
	cursorX, cursorY uint8
	font             font.Font
	initialized      bool
	// The sticky error. Any transport failure lands here and stays until
	// ClearErrors; later failures overwrite it.
	err error
}

// New returns a Dev that communicates through c, which receives every
// transaction prefixed with the command/data control byte.
//
// No bus traffic happens until Init. A height above MaxHeight latches
// ErrHeight immediately, again without touching the bus; Init will then
// refuse to run.
//
// Use NewI2C for a real bus. Tests can pass an i2ctest.Record backed
// i2c.Dev, or any other conn.Conn, to capture the byte stream instead.
func New(c conn.Conn, opts *Opts) *Dev {
	d := &Dev{
		c:    c,
		h:    opts.H,
		hw:   opts.HW,
		font: opts.Font,
	}
	if d.h == 0 {
		d.h = DefaultOpts.H
	}
	if d.hw == 0 {
		d.hw = DefaultOpts.HW
	}
	if d.font.Data == nil {
		d.font = font.Font7x10
	}
	if d.h > MaxHeight || d.h < 1 {
		d.err = ErrHeight
	}
	return d
}

// NewI2C returns a Dev that communicates over I²C to a SSD1306 display
// controller.
func NewI2C(b i2c.Bus, opts *Opts) *Dev {
	addr := opts.Addr
	if addr == 0 {
		addr = DefaultOpts.Addr
	}
	return New(&i2c.Dev{Bus: b, Addr: addr}, opts)
}

func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306.Dev{%s, %dx%d}", d.c, Width, d.h)
}

// Init runs the power-up command sequence, clears the framebuffer and
// flushes it, leaving the panel on and blank.
//
// A transport failure anywhere in the sequence does not abort it; the
// sequence runs to the end and Init reports the latched error. Init never
// clears a previously latched error, so a tainted device must be passed
// through ClearErrors first.
func (d *Dev) Init() error {
	d.initialized = false
	if d.h > MaxHeight || d.h < 1 {
		// Nothing sensible can be sent for an impossible geometry. Re-latch
		// in case the caller cleared the construction error.
		d.err = ErrHeight
		return d.err
	}
	for _, c := range d.initSeq() {
		d.writeCommand(c)
	}
	d.Clear()
	d.Update()
	if d.err != nil {
		return d.err
	}
	d.initialized = true
	return nil
}

// initSeq is the power-up sequence, sent one command byte per transaction.
// The order follows the recommended flow on page 64 of the datasheet.
func (d *Dev) initSeq() []byte {
	return []byte{
		_DISPLAYOFF,
		_SETDISPLAYCLOCKDIV, 0x80, // default divide ratio
		_SETMULTIPLEX, byte(d.h - 1),
		_SETDISPLAYOFFSET, 0x00,
		_SETSTARTLINE, // line 0
		_CHARGEPUMP, 0x14, // enable the internal DC-DC
		_SETSEGMENTREMAP, // not mirrored
		_COMSCANDEC,      // not flipped
		_SETCOMPINS, byte(d.hw),
		_SETCONTRAST, defaultContrast,
		_SETPRECHARGE, 0x22, // try 0xF1 if the panel stays dark
		_SETVCOMDETECT, 0x40,
		_DISPLAYALLON_RESUME, // output follows RAM content
		_NORMALDISPLAY,
		_MEMORYMODE, 0x00, // horizontal addressing
		_COLUMNADDR, 0x00, Width - 1,
		_PAGEADDR, 0x00, byte(d.h/8 - 1),
		_DISPLAYON,
	}
}

// Update serializes the framebuffer to the controller.
//
// It re-asserts the full column and page address windows, then transmits
// the frame as a single data transaction of Width*H/8 bytes. This is the
// only operation that sends pixel data; every drawing primitive is local
// until Update is called.
func (d *Dev) Update() error {
	var first error
	for _, c := range []byte{
		_COLUMNADDR, 0x00, Width - 1,
		_PAGEADDR, 0x00, byte(d.h/8 - 1),
	} {
		if err := d.writeCommand(c); err != nil && first == nil {
			first = err
		}
	}
	if err := d.writeData(d.buffer[:Width*d.h/8]); err != nil && first == nil {
		first = err
	}
	return first
}

// On wakes the display up.
func (d *Dev) On() error {
	return d.writeCommand(_DISPLAYON)
}

// Off puts the display in sleep mode. The GDDRAM content is retained.
func (d *Dev) Off() error {
	return d.writeCommand(_DISPLAYOFF)
}

// Halt turns off the display. It implements conn.Resource.
func (d *Dev) Halt() error {
	return d.Off()
}

// SetContrast changes the screen contrast; 0xFF is fully lit.
func (d *Dev) SetContrast(level byte) error {
	if err := d.writeCommand(_SETCONTRAST); err != nil {
		return err
	}
	return d.writeCommand(level)
}

// Invert swaps lit and unlit pixels panel-wide without touching the
// framebuffer.
func (d *Dev) Invert(inverted bool) error {
	if inverted {
		return d.writeCommand(_INVERTDISPLAY)
	}
	return d.writeCommand(_NORMALDISPLAY)
}

// Flip turns the panel output upside down by reversing the COM scan
// direction. The framebuffer is unaffected.
func (d *Dev) Flip(flipped bool) error {
	if flipped {
		return d.writeCommand(_COMSCANINC)
	}
	return d.writeCommand(_COMSCANDEC)
}

// Mirror reverses the panel output left to right by remapping the segment
// order. The framebuffer is unaffected.
func (d *Dev) Mirror(mirrored bool) error {
	if mirrored {
		return d.writeCommand(_SEGREMAP)
	}
	return d.writeCommand(_SETSEGMENTREMAP)
}

// Initialized reports whether the last Init completed without a latched
// error.
func (d *Dev) Initialized() bool {
	return d.initialized
}

// LastError returns the sticky error: the most recent transport failure, or
// ErrHeight for an invalid construction. It is nil only if no failure
// happened since the last ClearErrors.
func (d *Dev) LastError() error {
	return d.err
}

// ClearErrors resets the sticky error.
func (d *Dev) ClearErrors() {
	d.err = nil
}

// Pix returns the live framebuffer prefix for the configured height, in the
// controller packing. The caller must not hold on to it across drawing
// calls; it aliases the device state.
func (d *Dev) Pix() []byte {
	return d.buffer[:Width*d.h/8]
}

// writeCommand sends one command byte in its own 0x00-prefixed transaction.
// A failure latches into the sticky error but does not stop callers mid
// sequence; the controller tolerates partial sequences and the latch is
// what Init checks at the end.
func (d *Dev) writeCommand(cmd byte) error {
	err := d.c.Tx([]byte{i2cCmd, cmd}, nil)
	if err != nil {
		d.err = err
	}
	return err
}

// writeData sends pixel bytes in one 0x40-prefixed transaction.
func (d *Dev) writeData(pix []byte) error {
	err := d.c.Tx(append([]byte{i2cData}, pix...), nil)
	if err != nil {
		d.err = err
	}
	return err
}

var _ conn.Resource = &Dev{}
