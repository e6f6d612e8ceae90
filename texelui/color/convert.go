// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/color/convert.go
// Summary: Component conversion between RGB, HSV, HSL and OKLCH.

package color

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBToHSV converts 8-bit channels to hue [0,360), saturation and value [0,100].
func RGBToHSV(r, g, b uint8) (h, s, v float64) {
	rp, gp, bp := float64(r)/255, float64(g)/255, float64(b)/255
	cmax := math.Max(rp, math.Max(gp, bp))
	cmin := math.Min(rp, math.Min(gp, bp))
	d := cmax - cmin

	h = hueOf(rp, gp, bp, cmax, d)
	if cmax != 0 {
		s = d / cmax
	}
	return h, s * 100, cmax * 100
}

// HSVToRGB converts hue (degrees, wrapped), saturation and value [0,100]
// to rounded 8-bit channels.
func HSVToRGB(h, s, v float64) (r, g, b uint8) {
	h = wrapHue(h)
	s = clamp(s, 0, 100) / 100
	v = clamp(v, 0, 100) / 100

	c := v * s
	m := v - c
	return chromaToRGB(h, c, m)
}

// RGBToHSL converts 8-bit channels to hue [0,360), saturation and lightness [0,100].
func RGBToHSL(r, g, b uint8) (h, s, l float64) {
	rp, gp, bp := float64(r)/255, float64(g)/255, float64(b)/255
	cmax := math.Max(rp, math.Max(gp, bp))
	cmin := math.Min(rp, math.Min(gp, bp))
	d := cmax - cmin

	h = hueOf(rp, gp, bp, cmax, d)
	l = (cmax + cmin) / 2
	if den := 1 - math.Abs(2*l-1); d != 0 && den > 0 {
		s = math.Min(d/den, 1)
	}
	return h, s * 100, l * 100
}

// HSLToRGB converts hue (degrees, wrapped), saturation and lightness [0,100]
// to rounded 8-bit channels.
func HSLToRGB(h, s, l float64) (r, g, b uint8) {
	h = wrapHue(h)
	s = clamp(s, 0, 100) / 100
	l = clamp(l, 0, 100) / 100

	c := (1 - math.Abs(2*l-1)) * s
	m := l - c/2
	return chromaToRGB(h, c, m)
}

// OKLCHToRGB converts OKLCH (L 0-1, C 0-0.4, H degrees) to 8-bit channels,
// clamping colors outside the sRGB gamut.
func OKLCHToRGB(l, c, h float64) (r, g, b uint8) {
	return colorful.OkLch(l, c, wrapHue(h)).Clamped().RGB255()
}

// RGBToOKLCH converts 8-bit channels to OKLCH.
func RGBToOKLCH(r, g, b uint8) (l, c, h float64) {
	col := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	return col.OkLch()
}

// hueOf returns the hue in degrees; gray (d == 0) has hue 0.
func hueOf(rp, gp, bp, cmax, d float64) float64 {
	if d == 0 {
		return 0
	}
	var h float64
	switch cmax {
	case rp:
		h = math.Mod((gp-bp)/d, 6)
	case gp:
		h = (bp-rp)/d + 2
	default:
		h = (rp-gp)/d + 4
	}
	return wrapHue(h * 60)
}

// chromaToRGB maps hue, chroma and the lightness offset m to channels.
func chromaToRGB(h, c, m float64) (uint8, uint8, uint8) {
	hp := h / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r, g, b float64
	switch int(hp) {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return toByte((r + m) * 255), toByte((g + m) * 255), toByte((b + m) * 255)
}

func wrapHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func toByte(v float64) uint8 {
	return uint8(math.Round(clamp(v, 0, 255)))
}
