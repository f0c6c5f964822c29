// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package font

// Font7x10 is the builtin face: a 5x8 pixel body centered in a 7x10 cell,
// leaving a blank column on each side and two spare rows used by
// descenders.
var Font7x10 = Font{
	Width:  7,
	Height: 10,
	Data: []uint16{
		0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, // space
		0x1000, 0x1000, 0x1000, 0x1000, 0x1000, 0x0000, 0x1000, 0x0000, 0x0000, 0x0000, // !
		0x2800, 0x2800, 0x2800, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, // "
		0x2800, 0x2800, 0x7C00, 0x2800, 0x7C00, 0x2800, 0x2800, 0x0000, 0x0000, 0x0000, // #
		0x1000, 0x3C00, 0x5000, 0x3800, 0x1400, 0x7800, 0x1000, 0x0000, 0x0000, 0x0000, // $
		0x6000, 0x6400, 0x0800, 0x1000, 0x2000, 0x4C00, 0x0C00, 0x0000, 0x0000, 0x0000, // %
		0x3000, 0x4800, 0x5000, 0x2000, 0x5400, 0x4800, 0x3400, 0x0000, 0x0000, 0x0000, // &
		0x1000, 0x1000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, // '
		0x0800, 0x1000, 0x2000, 0x2000, 0x2000, 0x1000, 0x0800, 0x0000, 0x0000, 0x0000, // (
		0x2000, 0x1000, 0x0800, 0x0800, 0x0800, 0x1000, 0x2000, 0x0000, 0x0000, 0x0000, // )
		0x0000, 0x1000, 0x5400, 0x3800, 0x5400, 0x1000, 0x0000, 0x0000, 0x0000, 0x0000, // *
		0x0000, 0x1000, 0x1000, 0x7C00, 0x1000, 0x1000, 0x0000, 0x0000, 0x0000, 0x0000, // +
		0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x1800, 0x1000, 0x2000, 0x0000, // ,
		0x0000, 0x0000, 0x0000, 0x0000, 0x7C00, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, // -
		0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x1800, 0x1800, 0x0000, 0x0000, // .
		0x0400, 0x0800, 0x0800, 0x1000, 0x1000, 0x2000, 0x2000, 0x4000, 0x0000, 0x0000, // /
		0x3800, 0x4400, 0x4C00, 0x5400, 0x6400, 0x4400, 0x4400, 0x3800, 0x0000, 0x0000, // 0
		0x1000, 0x3000, 0x1000, 0x1000, 0x1000, 0x1000, 0x1000, 0x3800, 0x0000, 0x0000, // 1
		0x3800, 0x4400, 0x0400, 0x0800, 0x1000, 0x2000, 0x4000, 0x7C00, 0x0000, 0x0000, // 2
		0x3800, 0x4400, 0x0400, 0x1800, 0x0400, 0x0400, 0x4400, 0x3800, 0x0000, 0x0000, // 3
		0x0800, 0x1800, 0x2800, 0x4800, 0x7C00, 0x0800, 0x0800, 0x0800, 0x0000, 0x0000, // 4
		0x7C00, 0x4000, 0x4000, 0x7800, 0x0400, 0x0400, 0x4400, 0x3800, 0x0000, 0x0000, // 5
		0x1800, 0x2000, 0x4000, 0x7800, 0x4400, 0x4400, 0x4400, 0x3800, 0x0000, 0x0000, // 6
		0x7C00, 0x0400, 0x0800, 0x0800, 0x1000, 0x1000, 0x2000, 0x2000, 0x0000, 0x0000, // 7
		0x3800, 0x4400, 0x4400, 0x3800, 0x4400, 0x4400, 0x4400, 0x3800, 0x0000, 0x0000, // 8
		0x3800, 0x4400, 0x4400, 0x4400, 0x3C00, 0x0400, 0x0800, 0x3000, 0x0000, 0x0000, // 9
		0x0000, 0x0000, 0x1800, 0x1800, 0x0000, 0x0000, 0x1800, 0x1800, 0x0000, 0x0000, // :
		0x0000, 0x0000, 0x1800, 0x1800, 0x0000, 0x1800, 0x1000, 0x2000, 0x0000, 0x0000, // ;
		0x0800, 0x1000, 0x2000, 0x4000, 0x2000, 0x1000, 0x0800, 0x0000, 0x0000, 0x0000, // <
		0x0000, 0x0000, 0x0000, 0x7C00, 0x0000, 0x7C00, 0x0000, 0x0000, 0x0000, 0x0000, // =
		0x2000, 0x1000, 0x0800, 0x0400, 0x0800, 0x1000, 0x2000, 0x0000, 0x0000, 0x0000, // >
		0x3800, 0x4400, 0x0400, 0x0800, 0x1000, 0x0000, 0x1000, 0x0000, 0x0000, 0x0000, // ?
		0x3800, 0x4400, 0x4C00, 0x5400, 0x5C00, 0x4000, 0x3800, 0x0000, 0x0000, 0x0000, // @
		0x3800, 0x4400, 0x4400, 0x7C00, 0x4400, 0x4400, 0x4400, 0x0000, 0x0000, 0x0000, // A
		0x7800, 0x4400, 0x4400, 0x7800, 0x4400, 0x4400, 0x7800, 0x0000, 0x0000, 0x0000, // B
		0x3800, 0x4400, 0x4000, 0x4000, 0x4000, 0x4400, 0x3800, 0x0000, 0x0000, 0x0000, // C
		0x7800, 0x4400, 0x4400, 0x4400, 0x4400, 0x4400, 0x7800, 0x0000, 0x0000, 0x0000, // D
		0x7C00, 0x4000, 0x4000, 0x7800, 0x4000, 0x4000, 0x7C00, 0x0000, 0x0000, 0x0000, // E
		0x7C00, 0x4000, 0x4000, 0x7800, 0x4000, 0x4000, 0x4000, 0x0000, 0x0000, 0x0000, // F
		0x3800, 0x4400, 0x4000, 0x5C00, 0x4400, 0x4400, 0x3C00, 0x0000, 0x0000, 0x0000, // G
		0x4400, 0x4400, 0x4400, 0x7C00, 0x4400, 0x4400, 0x4400, 0x0000, 0x0000, 0x0000, // H
		0x3800, 0x1000, 0x1000, 0x1000, 0x1000, 0x1000, 0x3800, 0x0000, 0x0000, 0x0000, // I
		0x1C00, 0x0800, 0x0800, 0x0800, 0x0800, 0x4800, 0x3000, 0x0000, 0x0000, 0x0000, // J
		0x4400, 0x4800, 0x5000, 0x6000, 0x5000, 0x4800, 0x4400, 0x0000, 0x0000, 0x0000, // K
		0x4000, 0x4000, 0x4000, 0x4000, 0x4000, 0x4000, 0x7C00, 0x0000, 0x0000, 0x0000, // L
		0x4400, 0x6C00, 0x5400, 0x5400, 0x4400, 0x4400, 0x4400, 0x0000, 0x0000, 0x0000, // M
		0x4400, 0x6400, 0x5400, 0x4C00, 0x4400, 0x4400, 0x4400, 0x0000, 0x0000, 0x0000, // N
		0x3800, 0x4400, 0x4400, 0x4400, 0x4400, 0x4400, 0x3800, 0x0000, 0x0000, 0x0000, // O
		0x7800, 0x4400, 0x4400, 0x7800, 0x4000, 0x4000, 0x4000, 0x0000, 0x0000, 0x0000, // P
		0x3800, 0x4400, 0x4400, 0x4400, 0x5400, 0x4800, 0x3400, 0x0000, 0x0000, 0x0000, // Q
		0x7800, 0x4400, 0x4400, 0x7800, 0x5000, 0x4800, 0x4400, 0x0000, 0x0000, 0x0000, // R
		0x3C00, 0x4000, 0x4000, 0x3800, 0x0400, 0x0400, 0x7800, 0x0000, 0x0000, 0x0000, // S
		0x7C00, 0x1000, 0x1000, 0x1000, 0x1000, 0x1000, 0x1000, 0x0000, 0x0000, 0x0000, // T
		0x4400, 0x4400, 0x4400, 0x4400, 0x4400, 0x4400, 0x3800, 0x0000, 0x0000, 0x0000, // U
		0x4400, 0x4400, 0x4400, 0x4400, 0x2800, 0x2800, 0x1000, 0x0000, 0x0000, 0x0000, // V
		0x4400, 0x4400, 0x4400, 0x5400, 0x5400, 0x6C00, 0x4400, 0x0000, 0x0000, 0x0000, // W
		0x4400, 0x4400, 0x2800, 0x1000, 0x2800, 0x4400, 0x4400, 0x0000, 0x0000, 0x0000, // X
		0x4400, 0x4400, 0x2800, 0x1000, 0x1000, 0x1000, 0x1000, 0x0000, 0x0000, 0x0000, // Y
		0x7C00, 0x0400, 0x0800, 0x1000, 0x2000, 0x4000, 0x7C00, 0x0000, 0x0000, 0x0000, // Z
		0x3800, 0x2000, 0x2000, 0x2000, 0x2000, 0x2000, 0x3800, 0x0000, 0x0000, 0x0000, // [
		0x4000, 0x2000, 0x2000, 0x1000, 0x1000, 0x0800, 0x0800, 0x0400, 0x0000, 0x0000, // backslash
		0x3800, 0x0800, 0x0800, 0x0800, 0x0800, 0x0800, 0x3800, 0x0000, 0x0000, 0x0000, // ]
		0x1000, 0x2800, 0x4400, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, // ^
		0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x7C00, 0x0000, // _
		0x2000, 0x1000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, // `
		0x0000, 0x0000, 0x3800, 0x0400, 0x3C00, 0x4400, 0x4400, 0x3C00, 0x0000, 0x0000, // a
		0x4000, 0x4000, 0x4000, 0x7800, 0x4400, 0x4400, 0x4400, 0x7800, 0x0000, 0x0000, // b
		0x0000, 0x0000, 0x3800, 0x4400, 0x4000, 0x4000, 0x4400, 0x3800, 0x0000, 0x0000, // c
		0x0400, 0x0400, 0x0400, 0x3C00, 0x4400, 0x4400, 0x4400, 0x3C00, 0x0000, 0x0000, // d
		0x0000, 0x0000, 0x3800, 0x4400, 0x7C00, 0x4000, 0x4400, 0x3800, 0x0000, 0x0000, // e
		0x1800, 0x2000, 0x2000, 0x7800, 0x2000, 0x2000, 0x2000, 0x2000, 0x0000, 0x0000, // f
		0x0000, 0x0000, 0x3C00, 0x4400, 0x4400, 0x4400, 0x3C00, 0x0400, 0x4400, 0x3800, // g
		0x4000, 0x4000, 0x4000, 0x7800, 0x4400, 0x4400, 0x4400, 0x4400, 0x0000, 0x0000, // h
		0x1000, 0x0000, 0x1000, 0x1000, 0x1000, 0x1000, 0x1000, 0x3800, 0x0000, 0x0000, // i
		0x0800, 0x0000, 0x0800, 0x0800, 0x0800, 0x0800, 0x0800, 0x0800, 0x4800, 0x3000, // j
		0x4000, 0x4000, 0x4800, 0x5000, 0x6000, 0x5000, 0x4800, 0x4400, 0x0000, 0x0000, // k
		0x3000, 0x1000, 0x1000, 0x1000, 0x1000, 0x1000, 0x1000, 0x3800, 0x0000, 0x0000, // l
		0x0000, 0x0000, 0x6800, 0x5400, 0x5400, 0x5400, 0x5400, 0x5400, 0x0000, 0x0000, // m
		0x0000, 0x0000, 0x7800, 0x4400, 0x4400, 0x4400, 0x4400, 0x4400, 0x0000, 0x0000, // n
		0x0000, 0x0000, 0x3800, 0x4400, 0x4400, 0x4400, 0x4400, 0x3800, 0x0000, 0x0000, // o
		0x0000, 0x0000, 0x7800, 0x4400, 0x4400, 0x4400, 0x7800, 0x4000, 0x4000, 0x4000, // p
		0x0000, 0x0000, 0x3C00, 0x4400, 0x4400, 0x4400, 0x3C00, 0x0400, 0x0400, 0x0400, // q
		0x0000, 0x0000, 0x5800, 0x6400, 0x4000, 0x4000, 0x4000, 0x4000, 0x0000, 0x0000, // r
		0x0000, 0x0000, 0x3C00, 0x4000, 0x3800, 0x0400, 0x0400, 0x7800, 0x0000, 0x0000, // s
		0x2000, 0x2000, 0x7800, 0x2000, 0x2000, 0x2000, 0x2400, 0x1800, 0x0000, 0x0000, // t
		0x0000, 0x0000, 0x4400, 0x4400, 0x4400, 0x4400, 0x4C00, 0x3400, 0x0000, 0x0000, // u
		0x0000, 0x0000, 0x4400, 0x4400, 0x4400, 0x2800, 0x2800, 0x1000, 0x0000, 0x0000, // v
		0x0000, 0x0000, 0x4400, 0x4400, 0x5400, 0x5400, 0x5400, 0x2800, 0x0000, 0x0000, // w
		0x0000, 0x0000, 0x4400, 0x2800, 0x1000, 0x1000, 0x2800, 0x4400, 0x0000, 0x0000, // x
		0x0000, 0x0000, 0x4400, 0x4400, 0x4400, 0x4400, 0x3C00, 0x0400, 0x4400, 0x3800, // y
		0x0000, 0x0000, 0x7C00, 0x0800, 0x1000, 0x2000, 0x4000, 0x7C00, 0x0000, 0x0000, // z
		0x0C00, 0x1000, 0x1000, 0x3000, 0x1000, 0x1000, 0x0C00, 0x0000, 0x0000, 0x0000, // {
		0x1000, 0x1000, 0x1000, 0x1000, 0x1000, 0x1000, 0x1000, 0x1000, 0x0000, 0x0000, // |
		0x6000, 0x1000, 0x1000, 0x1800, 0x1000, 0x1000, 0x6000, 0x0000, 0x0000, 0x0000, // }
		0x0000, 0x0000, 0x0000, 0x0000, 0x3400, 0x4800, 0x0000, 0x0000, 0x0000, 0x0000, // ~
	},
}
