// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package image1bit

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestBitRGBA(t *testing.T) {
	if r, g, b, a := On.RGBA(); r != 0xFFFF || g != 0xFFFF || b != 0xFFFF || a != 0xFFFF {
		t.Errorf("On.RGBA() = (%x, %x, %x, %x)", r, g, b, a)
	}
	if r, g, b, a := Off.RGBA(); r != 0 || g != 0 || b != 0 || a != 0xFFFF {
		t.Errorf("Off.RGBA() = (%x, %x, %x, %x)", r, g, b, a)
	}
	if On.String() != "On" || Off.String() != "Off" {
		t.Error("unexpected String()")
	}
}

func TestBitModel(t *testing.T) {
	for _, tc := range []struct {
		in   color.Color
		want Bit
	}{
		{On, On},
		{Off, Off},
		{color.White, On},
		{color.Black, Off},
		{color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}, On},
		{color.RGBA{0x40, 0x40, 0x40, 0xFF}, Off},
	} {
		if got := BitModel.Convert(tc.in).(Bit); got != tc.want {
			t.Errorf("Convert(%v) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestNewVerticalLSB(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 128, 64))
	if len(img.Pix) != 1024 {
		t.Fatalf("len(Pix) = %d, want 1024", len(img.Pix))
	}
	if img.Stride != 128 {
		t.Fatalf("Stride = %d, want 128", img.Stride)
	}
	// Heights are rounded up to a full band.
	img = NewVerticalLSB(image.Rect(0, 0, 8, 9))
	if len(img.Pix) != 16 || img.Bounds().Dy() != 16 {
		t.Fatalf("len(Pix) = %d, Dy = %d, want 16, 16", len(img.Pix), img.Bounds().Dy())
	}
}

func TestPacking(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 128, 64))
	img.SetBit(0, 0, On)
	img.SetBit(1, 3, On)
	img.SetBit(0, 8, On)
	img.SetBit(127, 63, On)
	for _, tc := range []struct {
		offset int
		want   byte
	}{
		{0, 0x01},
		{1, 0x08},
		{2, 0x00},
		{128, 0x01},
		{1023, 0x80},
	} {
		if got := img.Pix[tc.offset]; got != tc.want {
			t.Errorf("Pix[%d] = %#02x, want %#02x", tc.offset, got, tc.want)
		}
	}
	if !bool(img.BitAt(0, 0)) || bool(img.BitAt(2, 0)) {
		t.Error("BitAt read back mismatch")
	}
	// Out of bounds is a no-op / Off.
	img.SetBit(128, 0, On)
	img.SetBit(0, 64, On)
	if img.BitAt(128, 0) != Off || img.BitAt(-1, 0) != Off {
		t.Error("out of bounds BitAt should be Off")
	}
}

func TestLines(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 16, 8))
	img.DrawHLine(2, 12, 3, On)
	for x := 0; x < 16; x++ {
		want := Bit(x >= 2 && x < 12)
		if got := img.BitAt(x, 3); got != want {
			t.Errorf("BitAt(%d, 3) = %s, want %s", x, got, want)
		}
	}
	img = NewVerticalLSB(image.Rect(0, 0, 16, 8))
	img.DrawVLine(1, 6, 4, On)
	if img.Pix[4] != 0x3E {
		t.Errorf("Pix[4] = %#02x, want 0x3e", img.Pix[4])
	}
}

func TestDrawSrc(t *testing.T) {
	// VerticalLSB must be usable as a draw.Image destination.
	img := NewVerticalLSB(image.Rect(0, 0, 16, 16))
	draw.Draw(img, image.Rect(0, 0, 16, 8), &image.Uniform{color.White}, image.Point{}, draw.Src)
	for i := 0; i < 16; i++ {
		if img.Pix[i] != 0xFF {
			t.Fatalf("Pix[%d] = %#02x, want 0xff", i, img.Pix[i])
		}
	}
	for i := 16; i < 32; i++ {
		if img.Pix[i] != 0x00 {
			t.Fatalf("Pix[%d] = %#02x, want 0x00", i, img.Pix[i])
		}
	}
}
