// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ssd1306 controls a monochrome OLED display via a SSD1306
// controller on an I²C bus.
//
// The driver keeps a full frame of pixels in memory. Drawing primitives and
// text rendering only mutate that buffer; Update serializes it to the
// controller in its native page/column addressed format. This makes every
// drawing call cheap and turns Update into the single point of bus traffic,
// which matters on I²C where the bus default speed (often 100kHz) caps the
// refresh rate.
//
// Transport failures are latched into a sticky error readable with
// LastError: a failed command does not abort the running sequence, it
// taints the device until ClearErrors.
//
// The device is not safe for concurrent use. Callers sharing a Dev between
// goroutines must serialize access externally.
//
// # Datasheets
//
// Product page:
//
// http://www.solomon-systech.com/en/product/display-ic/oled-driver-controller/ssd1306/
//
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
package ssd1306
