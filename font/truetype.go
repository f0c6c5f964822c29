// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package font

import (
	"fmt"
	"image"

	"github.com/golang/freetype/truetype"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// FromTTF rasterizes the printable ASCII range of a truetype font into a
// fixed-cell bitmap face of the given cell size, ready for the ssd1306 text
// renderer. width must be at most 16 to fit the row format.
//
// The face is rendered at a point size equal to the cell height and
// thresholded to 1-bit; proportional fonts get cropped to the cell, so
// narrow cells suit narrow fonts.
func FromTTF(ttf []byte, width, height int) (Font, error) {
	if width <= 0 || width > 16 || height <= 0 {
		return Font{}, fmt.Errorf("font: invalid %dx%d cell size", width, height)
	}
	f, err := truetype.Parse(ttf)
	if err != nil {
		return Font{}, err
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    float64(height),
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	defer face.Close()
	ascent := face.Metrics().Ascent.Ceil()
	if ascent > height {
		ascent = height
	}

	data := make([]uint16, 0, numChars*height)
	dst := image.NewGray(image.Rect(0, 0, width, height))
	for c := FirstChar; c <= LastChar; c++ {
		for i := range dst.Pix {
			dst.Pix[i] = 0
		}
		dr := xfont.Drawer{
			Dst:  dst,
			Src:  image.White,
			Face: face,
			Dot:  fixed.P(0, ascent),
		}
		dr.DrawString(string(rune(c)))
		for y := 0; y < height; y++ {
			var row uint16
			for x := 0; x < width; x++ {
				if dst.GrayAt(x, y).Y >= 0x80 {
					row |= 1 << (15 - x)
				}
			}
			data = append(data, row)
		}
	}
	return Font{Width: uint8(width), Height: uint8(height), Data: data}, nil
}
