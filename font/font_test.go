// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package font

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"
)

func TestFont7x10Valid(t *testing.T) {
	if err := Font7x10.Validate(); err != nil {
		t.Fatal(err)
	}
	if Font7x10.Width != 7 || Font7x10.Height != 10 {
		t.Fatalf("unexpected cell size %dx%d", Font7x10.Width, Font7x10.Height)
	}
}

func TestFont7x10Glyph(t *testing.T) {
	// '8' is two stacked boxes; its rows are pinned down to the bit because
	// the driver tests depend on them.
	want := []uint16{0x3800, 0x4400, 0x4400, 0x3800, 0x4400, 0x4400, 0x4400, 0x3800, 0x0000, 0x0000}
	if diff := cmp.Diff(Font7x10.Glyph('8'), want); diff != "" {
		t.Errorf("Glyph('8') difference (-got +want):\n%s", diff)
	}
	var blank [10]uint16
	if diff := cmp.Diff(Font7x10.Glyph(' '), blank[:]); diff != "" {
		t.Errorf("Glyph(' ') difference (-got +want):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		name string
		f    Font
		ok   bool
	}{
		{"builtin", Font7x10, true},
		{"zero", Font{}, false},
		{"too wide", Font{Width: 17, Height: 10, Data: make([]uint16, 95*10)}, false},
		{"short table", Font{Width: 7, Height: 10, Data: make([]uint16, 94*10)}, false},
		{"minimal", Font{Width: 1, Height: 1, Data: make([]uint16, 95)}, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.f.Validate(); (err == nil) != tc.ok {
				t.Errorf("Validate() = %v, want ok=%t", err, tc.ok)
			}
		})
	}
}

func TestFromTTF(t *testing.T) {
	f, err := FromTTF(goregular.TTF, 7, 10)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Validate(); err != nil {
		t.Fatal(err)
	}
	// The digit glyphs must have some lit pixels and none outside the cell
	// width.
	for c := byte('0'); c <= '9'; c++ {
		lit := false
		for _, row := range f.Glyph(c) {
			if row != 0 {
				lit = true
			}
			if row&(1<<9-1) != 0 {
				t.Errorf("glyph %q spills past the 7 pixel cell: %04x", c, row)
			}
		}
		if !lit {
			t.Errorf("glyph %q is blank", c)
		}
	}
}

func TestFromTTFRejectsBadCell(t *testing.T) {
	if _, err := FromTTF(goregular.TTF, 17, 10); err == nil {
		t.Error("expected an error for a 17 pixel wide cell")
	}
	if _, err := FromTTF(goregular.TTF, 7, 0); err == nil {
		t.Error("expected an error for a zero height cell")
	}
}
