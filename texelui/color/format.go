// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/color/format.go
// Summary: Formatter writing a Color back in a given notation.

package color

import (
	"fmt"
	"math"
	"strconv"
)

// Format renders c as text in notation n. Integer notations are shown as
// hex and object notations as rgb()/rgba(), so the result always parses
// back with ParseString.
func Format(c Color, n Notation) string {
	switch n.textNotation() {
	case NotationHexAlpha:
		return fmt.Sprintf("#%02x%02x%02x%02x", c.r, c.g, c.b, alphaByte(c.a))
	case NotationRGB:
		return fmt.Sprintf("rgb(%d, %d, %d)", c.r, c.g, c.b)
	case NotationRGBA:
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.r, c.g, c.b, formatAlpha(c.a))
	case NotationHSL:
		h, s, l := hslText(c)
		return fmt.Sprintf("hsl(%s, %s%%, %s%%)", h, s, l)
	case NotationHSLA:
		h, s, l := hslText(c)
		return fmt.Sprintf("hsla(%s, %s%%, %s%%, %s)", h, s, l, formatAlpha(c.a))
	default:
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	}
}

// FormatValue renders c as the host value for n: a string for textual
// notations, an int for packed notations and a map for object notations.
func FormatValue(c Color, n Notation) any {
	switch n {
	case NotationIntRGB:
		return int(c.ToPacked(false))
	case NotationIntRGBA:
		return int(c.ToPacked(true))
	case NotationObjectRGB:
		return c.ToObject(false)
	case NotationObjectRGBA:
		return c.ToObject(true)
	}
	return Format(c, n)
}

// String formats the color as #rrggbbaa.
func (c Color) String() string {
	return Format(c, NotationHexAlpha)
}

func formatAlpha(a float64) string {
	return strconv.FormatFloat(clamp(a, 0, 1), 'f', 2, 64)
}

// hslText prints hsl components with the fewest decimals that still
// decode to the same 8-bit channels; whole numbers cover almost every color.
func hslText(c Color) (h, s, l string) {
	hf, sf, lf := RGBToHSL(c.r, c.g, c.b)
	for _, prec := range []int{0, 1, 2, 4} {
		scale := math.Pow(10, float64(prec))
		hr := wrapHue(math.Round(hf*scale) / scale)
		sr := math.Round(sf*scale) / scale
		lr := math.Round(lf*scale) / scale
		r, g, b := HSLToRGB(hr, sr, lr)
		if r == c.r && g == c.g && b == c.b || prec == 4 {
			return strconv.FormatFloat(hr, 'f', prec, 64),
				strconv.FormatFloat(sr, 'f', prec, 64),
				strconv.FormatFloat(lr, 'f', prec, 64)
		}
	}
	return "0", "0", "0"
}
