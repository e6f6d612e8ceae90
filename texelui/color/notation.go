// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/color/notation.go
// Summary: Notation tags and input modes for color values.

package color

import "strings"

// Notation identifies the grammar a color was read from and is written back in.
type Notation int

const (
	NotationUnknown    Notation = iota
	NotationHex                 // #rrggbb
	NotationHexAlpha            // #rrggbbaa
	NotationRGB                 // rgb(r, g, b)
	NotationRGBA                // rgba(r, g, b, a)
	NotationHSL                 // hsl(h, s%, l%)
	NotationHSLA                // hsla(h, s%, l%, a)
	NotationIntRGB              // 0xRRGGBB number
	NotationIntRGBA             // 0xRRGGBBAA number
	NotationObjectRGB           // {r, g, b}
	NotationObjectRGBA          // {r, g, b, a}
)

var notationNames = map[Notation]string{
	NotationHex:        "hex.rgb",
	NotationHexAlpha:   "hex.rgba",
	NotationRGB:        "rgb",
	NotationRGBA:       "rgba",
	NotationHSL:        "hsl",
	NotationHSLA:       "hsla",
	NotationIntRGB:     "int.rgb",
	NotationIntRGBA:    "int.rgba",
	NotationObjectRGB:  "object.rgb",
	NotationObjectRGBA: "object.rgba",
}

func (n Notation) String() string {
	if name, ok := notationNames[n]; ok {
		return name
	}
	return "unknown"
}

// ParseNotation looks a notation up by name. "hex" is accepted for hex.rgb.
func ParseNotation(name string) (Notation, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "hex" {
		return NotationHex, true
	}
	for n, s := range notationNames {
		if s == name {
			return n, true
		}
	}
	return NotationUnknown, false
}

// HasAlpha reports whether the notation carries an alpha channel.
func (n Notation) HasAlpha() bool {
	switch n {
	case NotationHexAlpha, NotationRGBA, NotationHSLA, NotationIntRGBA, NotationObjectRGBA:
		return true
	}
	return false
}

// IsText reports whether the host value for this notation is a string.
func (n Notation) IsText() bool {
	switch n {
	case NotationHex, NotationHexAlpha, NotationRGB, NotationRGBA, NotationHSL, NotationHSLA:
		return true
	}
	return false
}

// textNotation is the grammar used to show a non-text notation in a text field.
func (n Notation) textNotation() Notation {
	switch n {
	case NotationIntRGB:
		return NotationHex
	case NotationIntRGBA:
		return NotationHexAlpha
	case NotationObjectRGB:
		return NotationRGB
	case NotationObjectRGBA:
		return NotationRGBA
	case NotationUnknown:
		return NotationHex
	}
	return n
}

// InputMode selects how ambiguous host values (bare integers) are read.
type InputMode int

const (
	InputAuto      InputMode = iota // width decides: 24 bits rgb, 32 bits rgba
	InputColor                      // "color": packed rgb
	InputColorRGB                   // "color.rgb"
	InputColorRGBA                  // "color.rgba"
)

// ParseInputMode maps an input parameter name to a mode.
func ParseInputMode(name string) (InputMode, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return InputAuto, true
	case "color":
		return InputColor, true
	case "color.rgb":
		return InputColorRGB, true
	case "color.rgba":
		return InputColorRGBA, true
	}
	return InputAuto, false
}

// IsColor reports whether the mode explicitly requests a color input.
func (m InputMode) IsColor() bool { return m != InputAuto }

func (m InputMode) String() string {
	switch m {
	case InputColor:
		return "color"
	case InputColorRGB:
		return "color.rgb"
	case InputColorRGBA:
		return "color.rgba"
	}
	return ""
}
