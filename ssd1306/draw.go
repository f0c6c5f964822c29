// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

// Drawing primitives. All of them mutate the in-memory framebuffer only;
// call Update to push the result to the panel.

// DrawPixel sets or clears the pixel at (x, y).
//
// Out of range coordinates are a silent no-op, which the line and waveform
// primitives rely on for clipping.
func (d *Dev) DrawPixel(x, y uint8, c Color) {
	if x >= Width || int(y) >= d.h {
		return
	}
	if c == White {
		d.buffer[int(x)+Width*(int(y)/8)] |= 1 << (y % 8)
	} else {
		d.buffer[int(x)+Width*(int(y)/8)] &^= 1 << (y % 8)
	}
}

// Fill sets every pixel to c.
//
// Black and White are the only colors, so this is a plain byte fill of the
// whole buffer rather than a per-pixel walk.
func (d *Dev) Fill(c Color) {
	for i := range d.buffer {
		d.buffer[i] = byte(c)
	}
}

// Clear blanks the framebuffer. Synonymous with Fill(Black).
func (d *Dev) Clear() {
	d.Fill(Black)
}

// DrawImage copies a pre-packed frame verbatim into the framebuffer, with
// no pixel reinterpretation. pix must use the controller packing (see
// image1bit.VerticalLSB) and should be at least Width*MaxHeight/8 bytes;
// extra bytes are ignored, a short slice leaves the tail of the previous
// frame in place.
func (d *Dev) DrawImage(pix []byte) {
	copy(d.buffer[:], pix)
}

// DrawHLine draws a horizontal line of the given length starting at (x, y),
// moving right. Pixels past the panel edge are dropped.
func (d *Dev) DrawHLine(x, y, length uint8, c Color) {
	for i := uint8(0); i < length; i++ {
		d.DrawPixel(x+i, y, c)
	}
}

// DrawVLine draws a vertical line of the given length starting at (x, y),
// moving down. Pixels past the panel edge are dropped.
func (d *Dev) DrawVLine(x, y, length uint8, c Color) {
	for i := uint8(0); i < length; i++ {
		d.DrawPixel(x, y+i, c)
	}
}

// DrawRect draws the border of the rectangle spanned by the corners (x, y)
// and (x2, y2), both included. x2 == x and y2 == y draws a single pixel.
//
// The edge lengths are computed with unsigned arithmetic: the caller must
// ensure x2 >= x and y2 >= y or the lengths wrap around.
func (d *Dev) DrawRect(x, y, x2, y2 uint8, c Color) {
	d.DrawHLine(x, y, x2-x+1, c)
	d.DrawHLine(x, y2, x2-x+1, c)
	d.DrawVLine(x, y, y2-y+1, c)
	d.DrawVLine(x2, y, y2-y+1, c)
}

// DrawWaveform plots samples in an oscilloscope-like fashion: sample i is
// drawn at (x+i, y-samples[i]), so a zero sample sits on the y baseline and
// larger values rise above it.
//
// The vertical offset is computed with unsigned arithmetic: the caller must
// ensure samples[i] <= y for every sample, and len(samples) <= Width-x to
// keep the plot on screen.
func (d *Dev) DrawWaveform(x, y uint8, samples []uint8, c Color) {
	for i, s := range samples {
		d.DrawPixel(x+uint8(i), y-s, c)
	}
}
