// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package image1bit implements black and white (1 bit per pixel) images in
// the packing the SSD1306 expects: vertical bands of 8 rows, one byte per
// column per band, least significant bit on top.
//
// A VerticalLSB's Pix can be handed verbatim to the driver's DrawImage.
package image1bit

import (
	"image"
	"image/color"
	"image/draw"
)

// Bit implements a 1 bit color.
type Bit bool

// Possible bit values.
const (
	On  Bit = true
	Off Bit = false
)

// RGBA implements color.Color.
func (b Bit) RGBA() (uint32, uint32, uint32, uint32) {
	if b {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// BitModel converts any color to Bit. Lit means more white than black.
var BitModel = color.ModelFunc(convert)

func convert(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	// Same weights as color.GrayModel.
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit(y >= 0x8000)
}

// VerticalLSB is a 1 bit image with the packing described in the package
// doc: pixel (x, y) is bit y%8 of byte x + Stride*(y/8).
type VerticalLSB struct {
	// Pix holds the image's pixels, one byte per 8 vertically stacked
	// pixels.
	Pix []byte
	// Stride is the Pix distance in bytes between two vertically adjacent
	// bands, which equals the width in pixels.
	Stride int
	// Rect is the image's bounds. Min must be the zero point and the height
	// a multiple of 8; NewVerticalLSB guarantees both.
	Rect image.Rectangle
}

// NewVerticalLSB returns an initialized (all black) VerticalLSB instance.
//
// The rectangle is normalized to start at (0, 0) and its height rounded up
// to a multiple of 8 so every band is complete.
func NewVerticalLSB(r image.Rectangle) *VerticalLSB {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &VerticalLSB{}
	}
	bands := (h + 7) / 8
	return &VerticalLSB{
		Pix:    make([]byte, w*bands),
		Stride: w,
		Rect:   image.Rect(0, 0, w, bands*8),
	}
}

// ColorModel implements image.Image.
func (i *VerticalLSB) ColorModel() color.Model {
	return BitModel
}

// Bounds implements image.Image.
func (i *VerticalLSB) Bounds() image.Rectangle {
	return i.Rect
}

// At implements image.Image.
func (i *VerticalLSB) At(x, y int) color.Color {
	return i.BitAt(x, y)
}

// BitAt is the optimized version of At().
func (i *VerticalLSB) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}).In(i.Rect) {
		return Off
	}
	offset, mask := i.pixOffset(x, y)
	return Bit(i.Pix[offset]&mask != 0)
}

// Set implements draw.Image.
func (i *VerticalLSB) Set(x, y int, c color.Color) {
	i.SetBit(x, y, convert(c).(Bit))
}

// SetBit is the optimized version of Set().
func (i *VerticalLSB) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}).In(i.Rect) {
		return
	}
	offset, mask := i.pixOffset(x, y)
	if b {
		i.Pix[offset] |= mask
	} else {
		i.Pix[offset] &^= mask
	}
}

// DrawHLine draws a horizontal line at row y, from x1 to x2 excluded.
func (i *VerticalLSB) DrawHLine(x1, x2, y int, b Bit) {
	for x := x1; x < x2; x++ {
		i.SetBit(x, y, b)
	}
}

// DrawVLine draws a vertical line at column x, from y1 to y2 excluded.
func (i *VerticalLSB) DrawVLine(y1, y2, x int, b Bit) {
	for y := y1; y < y2; y++ {
		i.SetBit(x, y, b)
	}
}

func (i *VerticalLSB) pixOffset(x, y int) (int, byte) {
	return (y/8)*i.Stride + x, 1 << uint(y&7)
}

var _ draw.Image = &VerticalLSB{}
