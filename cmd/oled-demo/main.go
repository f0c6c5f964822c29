// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// oled-demo exercises the ssd1306 driver, either on a real I²C bus or on
// the terminal emulator (-term), cycling through text, waveform and image
// screens.
package main

import (
	"flag"
	"image"
	"image/draw"
	"log"
	"math"
	"time"

	"github.com/fogleman/gg"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/displayworks/oled/font"
	"github.com/displayworks/oled/image1bit"
	"github.com/displayworks/oled/oledterm"
	"github.com/displayworks/oled/ssd1306"
)

func main() {
	term := flag.Bool("term", false, "render to the terminal instead of a real display")
	busName := flag.String("bus", "", "I²C bus to use (empty for the first available)")
	addr := flag.Uint("addr", 0x3C, "I²C address of the display")
	height := flag.Int("height", 64, "display height in pixels")
	seq := flag.Bool("seq", false, "sequential COM pin layout (typical for 128x32 panels)")
	text := flag.String("text", "Hello from Go!", "banner text")
	pause := flag.Duration("pause", 2*time.Second, "time to show each screen")
	flag.Parse()

	var c conn.Conn
	if *term {
		c = oledterm.New(&oledterm.Opts{H: *height})
	} else {
		if _, err := host.Init(); err != nil {
			log.Fatal(err)
		}
		b, err := i2creg.Open(*busName)
		if err != nil {
			log.Fatal(err)
		}
		defer b.Close()
		c = &i2c.Dev{Bus: b, Addr: uint16(*addr)}
	}

	opts := ssd1306.DefaultOpts
	opts.H = *height
	if *seq {
		opts.HW = ssd1306.SeqNoRemap
	}
	dev := ssd1306.New(c, &opts)
	if err := dev.Init(); err != nil {
		log.Fatalf("failed to initialize display: %s", err)
	}

	h := uint8(*height)

	// Driver-native text inside a frame.
	dev.DrawRect(0, 0, ssd1306.Width-1, h-1, ssd1306.White)
	dev.SetCursor(4, 4)
	dev.WriteString(*text)
	dev.SetCursor(4, 15)
	dev.WriteStringInverted(*text)
	show(dev, *pause)

	// The same banner with a face built from a truetype font at runtime.
	if f, err := font.FromTTF(goregular.TTF, 7, 10); err == nil {
		dev.Clear()
		dev.SetFont(f)
		dev.SetCursor(4, 4)
		dev.WriteString(*text)
		dev.SetFont(font.Font7x10)
		show(dev, *pause)
	}

	// A sine wave plotted with the waveform primitive.
	dev.Clear()
	samples := make([]uint8, ssd1306.Width-8)
	for i := range samples {
		angle := float64(i) * 4 * math.Pi / float64(len(samples))
		samples[i] = uint8((1 + math.Sin(angle)) * float64(*height-6) / 2)
	}
	dev.DrawWaveform(4, h-2, samples, ssd1306.White)
	show(dev, *pause)

	// Vector graphics rendered with gg, thresholded through image1bit.
	dc := gg.NewContext(ssd1306.Width, *height)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	dc.SetRGB(1, 1, 1)
	r := float64(*height)/2 - 2
	dc.DrawCircle(64, float64(*height)/2, r)
	dc.DrawCircle(64, float64(*height)/2, r/2)
	dc.Stroke()
	img := image1bit.NewVerticalLSB(image.Rect(0, 0, ssd1306.Width, *height))
	draw.Draw(img, img.Bounds(), dc.Image(), image.Point{}, draw.Src)
	dev.DrawImage(img.Pix)
	show(dev, *pause)

	// Text drawn with a standard face through the image pipeline.
	img = image1bit.NewVerticalLSB(image.Rect(0, 0, ssd1306.Width, *height))
	dr := xfont.Drawer{
		Dst:  img,
		Src:  &image.Uniform{image1bit.On},
		Face: basicfont.Face7x13,
		Dot:  fixed.P(2, *height-3),
	}
	dr.DrawString("basicfont 7x13")
	dev.DrawImage(img.Pix)
	show(dev, *pause)

	if err := dev.Halt(); err != nil {
		log.Fatal(err)
	}
}

func show(d *ssd1306.Dev, pause time.Duration) {
	if err := d.Update(); err != nil {
		log.Fatal(err)
	}
	time.Sleep(pause)
}
