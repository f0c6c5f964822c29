// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package oledterm_test

import (
	"bytes"
	"testing"

	"github.com/displayworks/oled/oledterm"
	"github.com/displayworks/oled/ssd1306"
)

func newTerm() (*oledterm.Dev, *bytes.Buffer) {
	var out bytes.Buffer
	return oledterm.New(&oledterm.Opts{Writer: &out}), &out
}

func TestDriverRoundTrip(t *testing.T) {
	term, out := newTerm()
	dev := ssd1306.New(term, &ssd1306.DefaultOpts)
	if err := dev.Init(); err != nil {
		t.Fatal(err)
	}

	dev.DrawPixel(0, 0, ssd1306.White)
	dev.DrawPixel(127, 63, ssd1306.White)
	dev.DrawHLine(10, 20, 5, ssd1306.White)
	if err := dev.Update(); err != nil {
		t.Fatal(err)
	}

	for _, tc := range []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{127, 63, true},
		{1, 0, false},
		{10, 20, true},
		{14, 20, true},
		{15, 20, false},
	} {
		if got := term.Pixel(tc.x, tc.y); got != tc.want {
			t.Errorf("Pixel(%d, %d) = %t, want %t", tc.x, tc.y, got, tc.want)
		}
	}
	if out.Len() == 0 {
		t.Error("nothing was rendered to the terminal")
	}
}

func TestDisplayOffBlanks(t *testing.T) {
	term, _ := newTerm()
	dev := ssd1306.New(term, &ssd1306.DefaultOpts)
	if err := dev.Init(); err != nil {
		t.Fatal(err)
	}
	dev.Fill(ssd1306.White)
	if err := dev.Update(); err != nil {
		t.Fatal(err)
	}
	if !term.Pixel(64, 32) {
		t.Fatal("panel should be fully lit")
	}
	if err := dev.Off(); err != nil {
		t.Fatal(err)
	}
	if term.Pixel(64, 32) {
		t.Error("a sleeping panel shows nothing")
	}
	if err := dev.On(); err != nil {
		t.Fatal(err)
	}
	if !term.Pixel(64, 32) {
		t.Error("RAM is retained across sleep")
	}
}

func TestInvert(t *testing.T) {
	term, _ := newTerm()
	dev := ssd1306.New(term, &ssd1306.DefaultOpts)
	if err := dev.Init(); err != nil {
		t.Fatal(err)
	}
	dev.DrawPixel(3, 3, ssd1306.White)
	if err := dev.Update(); err != nil {
		t.Fatal(err)
	}
	if err := dev.Invert(true); err != nil {
		t.Fatal(err)
	}
	if term.Pixel(3, 3) {
		t.Error("inversion must unlight the drawn pixel")
	}
	if !term.Pixel(4, 4) {
		t.Error("inversion must light the background")
	}
}

func TestPartialWindowWrap(t *testing.T) {
	term, _ := newTerm()
	// Hand-rolled protocol: a 2 column, 2 page window filled with 5 bytes
	// must wrap column-first, then page, then back to the window origin.
	for _, w := range [][]byte{
		{0x00, 0xAF},
		{0x00, 0x21}, {0x00, 10}, {0x00, 11},
		{0x00, 0x22}, {0x00, 1}, {0x00, 2},
		{0x40, 0x01, 0x02, 0x03, 0x04, 0xFF},
	} {
		if err := term.Tx(w, nil); err != nil {
			t.Fatal(err)
		}
	}
	// 0x01 at (10, page 1) -> pixel (10, 8); 0x04 at (11, page 2); the
	// fifth byte wraps back onto the first cell (0xFF at (10, page 1)).
	if !term.Pixel(10, 8) || !term.Pixel(10, 15) {
		t.Error("wrapped write must land on the window origin")
	}
	if !term.Pixel(11, 18) {
		t.Error("fourth byte must land at (11, page 2)")
	}
	if term.Pixel(12, 8) {
		t.Error("writes must stay inside the column window")
	}
}

func TestBadTransactions(t *testing.T) {
	term, _ := newTerm()
	if err := term.Tx([]byte{0x00, 0xAF}, make([]byte, 1)); err == nil {
		t.Error("reads must be rejected")
	}
	if err := term.Tx([]byte{0x40}, nil); err == nil {
		t.Error("empty payloads must be rejected")
	}
	if err := term.Tx([]byte{0x80, 0x00}, nil); err == nil {
		t.Error("unknown control bytes must be rejected")
	}
}
