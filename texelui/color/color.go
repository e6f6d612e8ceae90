// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/color/color.go
// Summary: Immutable RGBA color value with on-demand component views.

// Package color holds the color model used by texelui inputs: component
// conversion, the immutable Color value, and the notation parser/formatter
// that keeps a value in the textual form the user supplied.
package color

import (
	imgcolor "image/color"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// Space names a component view of a Color.
type Space int

const (
	SpaceRGB Space = iota
	SpaceHSL
	SpaceHSV
)

func (s Space) String() string {
	switch s {
	case SpaceHSL:
		return "hsl"
	case SpaceHSV:
		return "hsv"
	default:
		return "rgb"
	}
}

// Color is an RGBA color. Channels are stored as 8-bit red, green, blue and
// a [0,1] alpha; every constructor clamps, so a Color is always in range.
// Edits return a new Color. The zero value is transparent black.
type Color struct {
	r, g, b uint8
	a       float64
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{r: r, g: g, b: b, a: 1}
}

// RGBA returns a color with the given alpha, clamped to [0,1].
func RGBA(r, g, b uint8, a float64) Color {
	return Color{r: r, g: g, b: b, a: clamp(a, 0, 1)}
}

// NewColor builds a color from three components in space plus alpha.
// Components outside their range are clamped; hue wraps.
func NewColor(comps [4]float64, space Space) Color {
	var r, g, b uint8
	switch space {
	case SpaceHSL:
		r, g, b = HSLToRGB(comps[0], comps[1], comps[2])
	case SpaceHSV:
		r, g, b = HSVToRGB(comps[0], comps[1], comps[2])
	default:
		r, g, b = toByte(comps[0]), toByte(comps[1]), toByte(comps[2])
	}
	return Color{r: r, g: g, b: b, a: clamp(comps[3], 0, 1)}
}

// Components returns the three channels of space followed by alpha.
// Nothing is cached; every call derives from the RGBA channels.
func (c Color) Components(space Space) [4]float64 {
	switch space {
	case SpaceHSL:
		h, s, l := RGBToHSL(c.r, c.g, c.b)
		return [4]float64{h, s, l, c.a}
	case SpaceHSV:
		h, s, v := RGBToHSV(c.r, c.g, c.b)
		return [4]float64{h, s, v, c.a}
	default:
		return [4]float64{float64(c.r), float64(c.g), float64(c.b), c.a}
	}
}

// ComponentsOf returns components by name: "rgb", "hsl", "hsv" yield three
// values, and the "rgba", "hsla", "hsva" forms append alpha.
func (c Color) ComponentsOf(name string) ([]float64, error) {
	name = strings.ToLower(name)
	withAlpha := strings.HasSuffix(name, "a")
	base := strings.TrimSuffix(name, "a")

	var space Space
	switch base {
	case "rgb":
		space = SpaceRGB
	case "hsl":
		space = SpaceHSL
	case "hsv":
		space = SpaceHSV
	default:
		return nil, errors.Errorf("color: unknown component space %q", name)
	}
	comps := c.Components(space)
	if withAlpha {
		return comps[:], nil
	}
	return comps[:3], nil
}

// RGB8 returns the 8-bit red, green and blue channels.
func (c Color) RGB8() (r, g, b uint8) { return c.r, c.g, c.b }

// Alpha returns the alpha channel in [0,1].
func (c Color) Alpha() float64 { return c.a }

// WithAlpha returns a copy with a different alpha.
func (c Color) WithAlpha(a float64) Color {
	c.a = clamp(a, 0, 1)
	return c
}

// WithComponents returns a color built from new components in space,
// keeping the current alpha.
func (c Color) WithComponents(space Space, c0, c1, c2 float64) Color {
	return NewColor([4]float64{c0, c1, c2, c.a}, space)
}

// Equal reports whether two colors have identical channels.
func (c Color) Equal(o Color) bool { return c == o }

// ToTcell converts to a tcell true color. Alpha is dropped.
func (c Color) ToTcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.r), int32(c.g), int32(c.b))
}

// FromTcell converts a tcell color. Default/invalid colors return false.
func FromTcell(tc tcell.Color) (Color, bool) {
	if tc == tcell.ColorDefault || !tc.Valid() {
		return Color{}, false
	}
	r, g, b := tc.RGB()
	if r < 0 || g < 0 || b < 0 {
		return Color{}, false
	}
	return RGB(uint8(r), uint8(g), uint8(b)), true
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA returns the non-premultiplied 8-bit form.
func (c Color) NRGBA() imgcolor.NRGBA {
	return imgcolor.NRGBA{R: c.r, G: c.g, B: c.b, A: alphaByte(c.a)}
}

// ToPacked returns 0xRRGGBB, or 0xRRGGBBAA when alpha is requested.
func (c Color) ToPacked(alpha bool) uint32 {
	rgb := uint32(c.r)<<16 | uint32(c.g)<<8 | uint32(c.b)
	if !alpha {
		return rgb
	}
	return rgb<<8 | uint32(alphaByte(c.a))
}

// ToObject returns {r, g, b} or {r, g, b, a} as a host-friendly map.
func (c Color) ToObject(alpha bool) map[string]any {
	obj := map[string]any{
		"r": float64(c.r),
		"g": float64(c.g),
		"b": float64(c.b),
	}
	if alpha {
		obj["a"] = c.a
	}
	return obj
}

// Blend composites c over bg using c's alpha. Used for swatch previews.
func (c Color) Blend(bg Color) Color {
	mix := func(fg, back uint8) uint8 {
		return toByte(float64(fg)*c.a + float64(back)*(1-c.a))
	}
	return RGB(mix(c.r, bg.r), mix(c.g, bg.g), mix(c.b, bg.b))
}

func alphaByte(a float64) uint8 {
	return uint8(math.Round(clamp(a, 0, 1) * 255))
}
