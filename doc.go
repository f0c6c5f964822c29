// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package oled is a container for monochrome OLED display support: the
// ssd1306 driver, the font and image formats it consumes, and a terminal
// emulator of the controller for development without hardware.
package oled
