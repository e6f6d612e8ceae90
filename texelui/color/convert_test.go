// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package color

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func channelStep(t *testing.T) int {
	if testing.Short() {
		return 7
	}
	return 1
}

func TestHSVRoundTripAllChannels(t *testing.T) {
	step := channelStep(t)
	for r := 0; r < 256; r += step {
		for g := 0; g < 256; g += step {
			for b := 0; b < 256; b += step {
				h, s, v := RGBToHSV(uint8(r), uint8(g), uint8(b))
				rr, gg, bb := HSVToRGB(h, s, v)
				if absInt(int(rr)-r) > 1 || absInt(int(gg)-g) > 1 || absInt(int(bb)-b) > 1 {
					t.Fatalf("hsv round trip (%d,%d,%d) -> (%.3f,%.3f,%.3f) -> (%d,%d,%d)",
						r, g, b, h, s, v, rr, gg, bb)
				}
			}
		}
	}
}

func TestHSLRoundTripAllChannels(t *testing.T) {
	step := channelStep(t)
	for r := 0; r < 256; r += step {
		for g := 0; g < 256; g += step {
			for b := 0; b < 256; b += step {
				h, s, l := RGBToHSL(uint8(r), uint8(g), uint8(b))
				rr, gg, bb := HSLToRGB(h, s, l)
				if absInt(int(rr)-r) > 1 || absInt(int(gg)-g) > 1 || absInt(int(bb)-b) > 1 {
					t.Fatalf("hsl round trip (%d,%d,%d) -> (%.3f,%.3f,%.3f) -> (%d,%d,%d)",
						r, g, b, h, s, l, rr, gg, bb)
				}
			}
		}
	}
}

func TestRGBToHSVKnownValues(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		h, s, v float64
	}{
		{"black", 0, 0, 0, 0, 0, 0},
		{"white", 255, 255, 255, 0, 0, 100},
		{"red", 255, 0, 0, 0, 100, 100},
		{"green", 0, 255, 0, 120, 100, 100},
		{"blue", 0, 0, 255, 240, 100, 100},
		{"magenta", 255, 0, 255, 300, 100, 100},
		{"gray", 128, 128, 128, 0, 0, 50.19607843137255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, v := RGBToHSV(tt.r, tt.g, tt.b)
			if !near(h, tt.h) || !near(s, tt.s) || !near(v, tt.v) {
				t.Errorf("RGBToHSV(%d,%d,%d) = (%v,%v,%v), want (%v,%v,%v)",
					tt.r, tt.g, tt.b, h, s, v, tt.h, tt.s, tt.v)
			}
		})
	}
}

func TestHSVToRGBWrapsHue(t *testing.T) {
	tests := []struct {
		name    string
		h       float64
		r, g, b uint8
	}{
		{"negative wraps to blue", -120, 0, 0, 255},
		{"over 360 wraps to green", 480, 0, 255, 0},
		{"exactly 360 is red", 360, 255, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := HSVToRGB(tt.h, 100, 100)
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("HSVToRGB(%v,100,100) = (%d,%d,%d), want (%d,%d,%d)", tt.h, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestHSVToRGBClampsSaturationAndValue(t *testing.T) {
	r, g, b := HSVToRGB(0, 150, -20)
	if r != 0 || g != 0 || b != 0 {
		t.Fatalf("expected black for v<0, got (%d,%d,%d)", r, g, b)
	}
	r, g, b = HSVToRGB(0, -5, 200)
	if r != 255 || g != 255 || b != 255 {
		t.Fatalf("expected white for s<0 v>100, got (%d,%d,%d)", r, g, b)
	}
}

// go-colorful is an independent implementation; both must agree on the
// continuous hue/saturation values.
func TestConversionsAgreeWithColorful(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 51 {
				ref := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}

				h, s, v := RGBToHSV(uint8(r), uint8(g), uint8(b))
				rh, rs, rv := ref.Hsv()
				if s > 0 && !nearHue(h, rh) || !near(s, rs*100) || !near(v, rv*100) {
					t.Fatalf("hsv (%d,%d,%d): got (%v,%v,%v), colorful (%v,%v,%v)", r, g, b, h, s, v, rh, rs*100, rv*100)
				}

				h, s, l := RGBToHSL(uint8(r), uint8(g), uint8(b))
				rh, rs, rl := ref.Hsl()
				if s > 0 && !nearHue(h, rh) || !near(s, rs*100) || !near(l, rl*100) {
					t.Fatalf("hsl (%d,%d,%d): got (%v,%v,%v), colorful (%v,%v,%v)", r, g, b, h, s, l, rh, rs*100, rl*100)
				}
			}
		}
	}
}

func TestOKLCHRoundTrip(t *testing.T) {
	for _, c := range []Color{RGB(255, 0, 0), RGB(18, 52, 86), RGB(200, 200, 200), RGB(0, 0, 0)} {
		r0, g0, b0 := c.RGB8()
		l, ch, h := RGBToOKLCH(r0, g0, b0)
		r, g, b := OKLCHToRGB(l, ch, h)
		if absInt(int(r)-int(r0)) > 1 || absInt(int(g)-int(g0)) > 1 || absInt(int(b)-int(b0)) > 1 {
			t.Errorf("oklch round trip %v -> (%.3f,%.3f,%.1f) -> (%d,%d,%d)", c, l, ch, h, r, g, b)
		}
	}
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func nearHue(a, b float64) bool {
	d := math.Abs(a - b)
	return d < 1e-6 || math.Abs(d-360) < 1e-6
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
