// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package font defines the fixed-size bitmap font format consumed by the
// ssd1306 text renderer, ships a builtin 7x10 face, and can build new faces
// from truetype fonts.
//
// A face covers printable ASCII (codes 32 to 126). Each glyph is Height
// consecutive uint16 row values; bit 15 is the leftmost pixel of the row,
// so a face can be at most 16 pixels wide.
package font

import (
	"errors"
	"fmt"
)

const (
	// FirstChar and LastChar bound the covered character range.
	FirstChar = ' '
	LastChar  = '~'

	numChars = LastChar - FirstChar + 1
)

// Font is one fixed-size bitmap face.
type Font struct {
	// Width and Height of every glyph, in pixels.
	Width  uint8
	Height uint8
	// Data holds numChars * Height row values; glyph rows for character c
	// start at (c-FirstChar)*Height. Bit 15 is the leftmost pixel.
	Data []uint16
}

// Glyph returns the row values of one character. c must be printable ASCII;
// the lookup is unchecked, like the renderer's.
func (f Font) Glyph(c byte) []uint16 {
	i := (int(c) - FirstChar) * int(f.Height)
	return f.Data[i : i+int(f.Height)]
}

// Validate checks that the face is self-consistent: a sane glyph size and a
// table covering the full printable ASCII range.
func (f Font) Validate() error {
	if f.Width == 0 || f.Width > 16 || f.Height == 0 {
		return fmt.Errorf("font: invalid %dx%d glyph size", f.Width, f.Height)
	}
	if len(f.Data) != numChars*int(f.Height) {
		return errors.New("font: table does not cover printable ASCII")
	}
	return nil
}

func (f Font) String() string {
	return fmt.Sprintf("font.Font{%dx%d}", f.Width, f.Height)
}
