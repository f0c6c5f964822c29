// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import "github.com/displayworks/oled/font"

// SetCursor moves the text cursor to (x, y), the top-left corner of the
// next glyph. Values past the panel bounds are clamped to the bound itself,
// which parks the cursor just off screen and makes subsequent glyphs clip
// away entirely.
func (d *Dev) SetCursor(x, y uint8) {
	if x >= Width {
		x = Width
	}
	if int(y) >= d.h {
		y = uint8(d.h)
	}
	d.cursorX = x
	d.cursorY = y
}

// SetFont selects the font used by subsequent WriteString calls.
func (d *Dev) SetFont(f font.Font) {
	d.font = f
}

// WriteString renders s at the cursor, lit glyphs on dark background,
// advancing the cursor by one glyph width per character. There is no line
// wrapping: glyphs running past the right edge are clipped pixel by pixel.
//
// s must contain printable ASCII only (codes 32-126); the glyph lookup is
// unchecked.
func (d *Dev) WriteString(s string) {
	for i := 0; i < len(s); i++ {
		d.writeChar(s[i], White)
	}
}

// WriteStringInverted is WriteString with dark glyphs on a lit background.
func (d *Dev) WriteStringInverted(s string) {
	for i := 0; i < len(s); i++ {
		d.writeChar(s[i], Black)
	}
}

// writeChar rasterizes one glyph at the cursor. The glyph rectangle is
// always painted in full: background pixels get the opposite color rather
// than being left untouched, so text overdraws whatever was below it.
func (d *Dev) writeChar(c byte, col Color) {
	bg := White
	if col == White {
		bg = Black
	}
	for y := uint8(0); y < d.font.Height; y++ {
		row := d.font.Data[(int(c)-' ')*int(d.font.Height)+int(y)]
		for x := uint8(0); x < d.font.Width; x++ {
			// Bit 15 of the row is the leftmost pixel.
			if row<<x&0x8000 != 0 {
				d.DrawPixel(d.cursorX+x, d.cursorY+y, col)
			} else {
				d.DrawPixel(d.cursorX+x, d.cursorY+y, bg)
			}
		}
	}
	d.cursorX += d.font.Width
}
