// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package oledterm emulates an SSD1306 hooked up to the terminal (stdout)
// using ANSI color codes.
//
// It implements conn.Conn, so it can be passed to ssd1306.New in place of
// the real bus: command transactions (control byte 0x00) drive a small
// interpreter tracking the addressing windows, data transactions (control
// byte 0x40) land in an emulated GDDRAM which is repainted on every frame.
//
// Useful while you are waiting for your OLED module to come by mail, and as
// an end-to-end check of the wire protocol.
package oledterm

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	colorable "github.com/mattn/go-colorable"
	"periph.io/x/conn/v3"
)

// Opts represents the options available for the emulated display.
type Opts struct {
	// W and H are the emulated panel size. 0 defaults to 128x64.
	W, H int
	// Palette used to render; nil defaults to ansi256.Default.
	Palette *ansi256.Palette
	// Writer receiving the ANSI output; nil defaults to a colorable stdout.
	Writer io.Writer
}

// Dev is an SSD1306 emulator that renders to the console.
type Dev struct {
	w       io.Writer
	width   int
	height  int
	palette ansi256.Palette

	// Emulated GDDRAM, same packing as the real chip.
	ram []byte
	// Addressing windows and pointers, horizontal addressing mode.
	colStart, colEnd   int
	pageStart, pageEnd int
	col, page          int
	// Pending multi-byte command.
	pending byte
	args    int

	on       bool
	inverted bool
	buf      bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) *Dev {
	w := opts.Writer
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	width, height := opts.W, opts.H
	if width == 0 {
		width = 128
	}
	if height == 0 {
		height = 64
	}
	return &Dev{
		w:       w,
		width:   width,
		height:  height,
		palette: *p,
		ram:     make([]byte, width*height/8),
		colEnd:  width - 1,
		pageEnd: height/8 - 1,
	}
}

func (d *Dev) String() string {
	return fmt.Sprintf("OLEDTerm{%dx%d}", d.width, d.height)
}

// Duplex implements conn.Conn.
func (d *Dev) Duplex() conn.Duplex {
	return conn.Half
}

// Tx implements conn.Conn. The first write byte is the control byte; 0x00
// introduces command bytes, 0x40 a pixel data block.
func (d *Dev) Tx(w, r []byte) error {
	if len(r) != 0 {
		return errors.New("oledterm: reads are not supported")
	}
	if len(w) < 2 {
		return errors.New("oledterm: transaction without payload")
	}
	switch w[0] {
	case 0x00:
		for _, c := range w[1:] {
			d.command(c)
		}
		return nil
	case 0x40:
		d.data(w[1:])
		return d.render()
	default:
		return fmt.Errorf("oledterm: unknown control byte %#02x", w[0])
	}
}

// Pixel reports whether the panel shows the pixel at (x, y) lit, taking the
// display on/off and inversion state into account.
func (d *Dev) Pixel(x, y int) bool {
	if x < 0 || x >= d.width || y < 0 || y >= d.height || !d.on {
		return false
	}
	lit := d.ram[(y/8)*d.width+x]&(1<<uint(y&7)) != 0
	return lit != d.inverted
}

func (d *Dev) command(c byte) {
	if d.args > 0 {
		d.args--
		switch d.pending {
		case 0x21: // column window: start, then end
			if d.args == 1 {
				d.colStart = int(c)
				d.col = int(c)
			} else {
				d.colEnd = int(c)
			}
		case 0x22: // page window: start, then end
			if d.args == 1 {
				d.pageStart = int(c)
				d.page = int(c)
			} else {
				d.pageEnd = int(c)
			}
		}
		// Arguments of the remaining commands (contrast, clock, charge
		// pump, ...) have no visible effect here and are swallowed.
		return
	}
	switch c {
	case 0xAE:
		d.on = false
	case 0xAF:
		d.on = true
	case 0xA6:
		d.inverted = false
	case 0xA7:
		d.inverted = true
	case 0x21, 0x22:
		d.pending, d.args = c, 2
	case 0x20, 0x81, 0x8D, 0xA8, 0xD3, 0xD5, 0xD9, 0xDA, 0xDB:
		d.pending, d.args = c, 1
	default:
		// Argument-less commands (remap, scan direction, start line, ...)
		// don't affect the emulated RAM.
	}
}

// data writes a block into RAM honoring the addressing windows, wrapping
// the way horizontal addressing mode does.
func (d *Dev) data(pix []byte) {
	for _, b := range pix {
		if d.col < d.width && d.page <= d.pageEnd {
			if i := d.page*d.width + d.col; i < len(d.ram) {
				d.ram[i] = b
			}
		}
		d.col++
		if d.col > d.colEnd {
			d.col = d.colStart
			d.page++
			if d.page > d.pageEnd {
				d.page = d.pageStart
			}
		}
	}
}

var (
	litColor   = color.NRGBA{R: 0xB0, G: 0xE0, B: 0xFF, A: 0xFF}
	unlitColor = color.NRGBA{R: 0x10, G: 0x10, B: 0x20, A: 0xFF}
)

func (d *Dev) render() error {
	// This code is designed to minimize the amount of memory allocated per
	// frame.
	d.buf.Reset()
	d.buf.WriteString("\033[H")
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			c := unlitColor
			if d.Pixel(x, y) {
				c = litColor
			}
			d.buf.WriteString(d.palette.Block(c))
		}
		d.buf.WriteString("\033[0m\n")
	}
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ conn.Conn = &Dev{}
var _ fmt.Stringer = &Dev{}
