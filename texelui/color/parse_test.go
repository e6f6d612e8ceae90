// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package color

import (
	"errors"
	imgcolor "image/color"
	"testing"
)

func TestParseString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     Color
		notation Notation
	}{
		{"hex3", "#123", RGB(0x11, 0x22, 0x33), NotationHex},
		{"hex3 uppercase", "#ABC", RGB(0xaa, 0xbb, 0xcc), NotationHex},
		{"hex4", "#1234", RGBA(0x11, 0x22, 0x33, float64(0x44)/255), NotationHexAlpha},
		{"hex6", "#00ff00", RGB(0, 255, 0), NotationHex},
		{"hex8", "#12345678", RGBA(0x12, 0x34, 0x56, float64(0x78)/255), NotationHexAlpha},
		{"hex with spaces", "  #445566 ", RGB(0x44, 0x55, 0x66), NotationHex},
		{"rgb compact", "rgb(0,128,255)", RGB(0, 128, 255), NotationRGB},
		{"rgb spaced", "rgb( 255 , 255 , 0 )", RGB(255, 255, 0), NotationRGB},
		{"rgba", "rgba(12,34,56,0.7)", RGBA(12, 34, 56, 0.7), NotationRGBA},
		{"rgba leading dot", "RGBA(1, 2, 3, .5)", RGBA(1, 2, 3, 0.5), NotationRGBA},
		{"hsl", "hsl(210, 50%, 40%)", RGB(51, 102, 153), NotationHSL},
		{"hsl without percent", "hsl(0,100,50)", RGB(255, 0, 0), NotationHSL},
		{"hsla with deg", "hsla(120deg, 100%, 25%, 0.5)", RGBA(0, 128, 0, 0.5), NotationHSLA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseString(tt.input)
			if err != nil {
				t.Fatalf("ParseString(%q) error: %v", tt.input, err)
			}
			if got.Color != tt.want {
				t.Errorf("ParseString(%q).Color = %v, want %v", tt.input, got.Color, tt.want)
			}
			if got.Notation != tt.notation {
				t.Errorf("ParseString(%q).Notation = %v, want %v", tt.input, got.Notation, tt.notation)
			}
		})
	}
}

func TestParseStringFailures(t *testing.T) {
	inputs := []string{
		"",
		"foo",
		"#12",
		"#12345",
		"#ggg",
		"112233",
		"rgb(256, 0, 0)",
		"rgb(1, 2)",
		"rgb(1, 2, 3, 0.5)",
		"rgba(1, 2, 3)",
		"rgba(1, 2, 3, 1.5)",
		"hsl(0, 120%, 50%)",
		"hsla(0, 50%, 50%)",
		"rgb(0,128,255) trailing",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := ParseString(in)
			if err == nil {
				t.Fatalf("ParseString(%q) succeeded, want failure", in)
			}
			if !errors.Is(err, ErrParse) {
				t.Fatalf("ParseString(%q) error %v does not match ErrParse", in, err)
			}
		})
	}
}

func TestParseIntegers(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		mode     InputMode
		want     Color
		notation Notation
		wantErr  bool
	}{
		{"color mode", 0x112233, InputColor, RGB(0x11, 0x22, 0x33), NotationIntRGB, false},
		{"color.rgb mode", 0x112233, InputColorRGB, RGB(0x11, 0x22, 0x33), NotationIntRGB, false},
		{"color.rgba mode", 0x11223344, InputColorRGBA, RGBA(0x11, 0x22, 0x33, float64(0x44)/255), NotationIntRGBA, false},
		{"color.rgba small value", 0xff, InputColorRGBA, RGBA(0, 0, 0, 1), NotationIntRGBA, false},
		{"auto picks rgb", uint32(0xffffff), InputAuto, RGB(255, 255, 255), NotationIntRGB, false},
		{"auto picks rgba", int64(0x112233ff), InputAuto, RGBA(0x11, 0x22, 0x33, 1), NotationIntRGBA, false},
		{"integral float", float64(0x00ff00), InputColor, RGB(0, 255, 0), NotationIntRGB, false},
		{"rgb overflow", 0x11223344, InputColor, Color{}, NotationUnknown, true},
		{"rgba overflow", int64(0x1122334455), InputColorRGBA, Color{}, NotationUnknown, true},
		{"negative", -1, InputColor, Color{}, NotationUnknown, true},
		{"fractional", 1.5, InputColor, Color{}, NotationUnknown, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input, tt.mode)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got.Color != tt.want || got.Notation != tt.notation {
				t.Errorf("Parse(%v) = %v/%v, want %v/%v", tt.input, got.Color, got.Notation, tt.want, tt.notation)
			}
		})
	}
}

func TestParseObjects(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		want     Color
		notation Notation
		wantErr  bool
	}{
		{"rgb object", map[string]any{"r": 0, "g": 127, "b": 255}, RGB(0, 127, 255), NotationObjectRGB, false},
		{"rgba object", map[string]any{"r": 0, "g": 127, "b": 255, "a": 0.5}, RGBA(0, 127, 255, 0.5), NotationObjectRGBA, false},
		{"float map", map[string]float64{"r": 1, "g": 2, "b": 3}, RGB(1, 2, 3), NotationObjectRGB, false},
		{"int map", map[string]int{"r": 1, "g": 2, "b": 3}, RGB(1, 2, 3), NotationObjectRGB, false},
		{"image color", imgcolor.NRGBA{R: 10, G: 20, B: 30, A: 255}, RGBA(10, 20, 30, 1), NotationObjectRGBA, false},
		{"missing channel", map[string]any{"r": 0, "g": 1}, Color{}, NotationUnknown, true},
		{"out of range", map[string]any{"r": 300, "g": 1, "b": 2}, Color{}, NotationUnknown, true},
		{"alpha out of range", map[string]any{"r": 0, "g": 1, "b": 2, "a": 2}, Color{}, NotationUnknown, true},
		{"extra key", map[string]any{"r": 0, "g": 1, "b": 2, "x": 3}, Color{}, NotationUnknown, true},
		{"non numeric", map[string]any{"r": "0", "g": 1, "b": 2}, Color{}, NotationUnknown, true},
		{"unsupported type", true, Color{}, NotationUnknown, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input, InputAuto)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrParse) {
					t.Fatalf("expected ErrParse, got %v", err)
				}
				return
			}
			if got.Color != tt.want || got.Notation != tt.notation {
				t.Errorf("Parse(%v) = %v/%v, want %v/%v", tt.input, got.Color, got.Notation, tt.want, tt.notation)
			}
		})
	}
}

func TestParseNotationAndInputMode(t *testing.T) {
	for n, name := range notationNames {
		got, ok := ParseNotation(name)
		if !ok || got != n {
			t.Errorf("ParseNotation(%q) = %v, %v", name, got, ok)
		}
	}
	if n, ok := ParseNotation("hex"); !ok || n != NotationHex {
		t.Errorf("ParseNotation(hex) = %v, %v", n, ok)
	}
	if _, ok := ParseNotation("cmyk"); ok {
		t.Errorf("ParseNotation(cmyk) should fail")
	}

	for _, name := range []string{"color", "color.rgb", "color.rgba"} {
		m, ok := ParseInputMode(name)
		if !ok || !m.IsColor() || m.String() != name {
			t.Errorf("ParseInputMode(%q) = %v, %v", name, m, ok)
		}
	}
	if m, ok := ParseInputMode(""); !ok || m.IsColor() {
		t.Errorf("empty input mode should be auto")
	}
	if _, ok := ParseInputMode("colour"); ok {
		t.Errorf("unknown input mode accepted")
	}
}
