// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/color/parse.go
// Summary: Parser for hex, rgb(), rgba(), hsl(), hsla(), packed integer and object colors.

package color

import (
	imgcolor "image/color"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrParse is returned when an input matches no known color notation.
var ErrParse = errors.New("color: unrecognized notation")

// Parsed is a color together with the notation it was read from.
type Parsed struct {
	Color    Color
	Notation Notation
}

const num = `(\d+(?:\.\d*)?|\.\d+)`

var (
	hexPattern  = regexp.MustCompile(`^#([0-9a-f]{3}|[0-9a-f]{4}|[0-9a-f]{6}|[0-9a-f]{8})$`)
	rgbPattern  = regexp.MustCompile(`^rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)
	rgbaPattern = regexp.MustCompile(`^rgba\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*` + num + `\s*\)$`)
	hslPattern  = regexp.MustCompile(`^hsl\(\s*(-?` + num + `)(?:deg)?\s*,\s*` + num + `%?\s*,\s*` + num + `%?\s*\)$`)
	hslaPattern = regexp.MustCompile(`^hsla\(\s*(-?` + num + `)(?:deg)?\s*,\s*` + num + `%?\s*,\s*` + num + `%?\s*,\s*` + num + `\s*\)$`)
)

// stringGrammar is tried in order by ParseString; the first full match wins.
type stringGrammar struct {
	notation Notation
	decode   func(s string) (Color, bool)
}

var stringGrammars = []stringGrammar{
	{NotationHex, decodeHex},
	{NotationRGB, decodeRGB},
	{NotationRGBA, decodeRGBA},
	{NotationHSL, decodeHSL},
	{NotationHSLA, decodeHSLA},
}

// Parse decodes a string, packed integer or {r,g,b[,a]} object. mode only
// affects integers: InputColorRGBA reads 0xRRGGBBAA, the other color modes
// read 0xRRGGBB, and InputAuto picks by bit width.
func Parse(input any, mode InputMode) (Parsed, error) {
	switch v := input.(type) {
	case string:
		return ParseString(v)
	case Color:
		return Parsed{Color: v, Notation: NotationObjectRGBA}, nil
	case map[string]any:
		return parseObject(v, input)
	case map[string]float64:
		obj := make(map[string]any, len(v))
		for k, f := range v {
			obj[k] = f
		}
		return parseObject(obj, input)
	case map[string]int:
		obj := make(map[string]any, len(v))
		for k, i := range v {
			obj[k] = i
		}
		return parseObject(obj, input)
	case imgcolor.Color:
		n := imgcolor.NRGBAModel.Convert(v).(imgcolor.NRGBA)
		return Parsed{Color: RGBA(n.R, n.G, n.B, float64(n.A)/255), Notation: NotationObjectRGBA}, nil
	}

	if n, ok := integerOf(input); ok {
		return parseInteger(n, mode, input)
	}
	return Parsed{}, parseFailure(input)
}

// ParseString decodes a textual color. Surrounding space and letter case
// are ignored.
func ParseString(s string) (Parsed, error) {
	text := strings.ToLower(strings.TrimSpace(s))
	for _, g := range stringGrammars {
		if c, ok := g.decode(text); ok {
			n := g.notation
			if n == NotationHex && (len(text) == 5 || len(text) == 9) {
				n = NotationHexAlpha
			}
			return Parsed{Color: c, Notation: n}, nil
		}
	}
	return Parsed{}, parseFailure(s)
}

func parseFailure(input any) error {
	if s, ok := input.(string); ok {
		return errors.Wrapf(ErrParse, "%q", s)
	}
	return errors.Wrapf(ErrParse, "%v (%T)", input, input)
}

func decodeHex(s string) (Color, bool) {
	m := hexPattern.FindStringSubmatch(s)
	if m == nil {
		return Color{}, false
	}
	digits := m[1]
	if len(digits) <= 4 {
		var sb strings.Builder
		for _, ch := range digits {
			sb.WriteRune(ch)
			sb.WriteRune(ch)
		}
		digits = sb.String()
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, false
	}
	if len(digits) == 8 {
		return unpackRGBA(uint32(v)), true
	}
	return unpackRGB(uint32(v)), true
}

func decodeRGB(s string) (Color, bool) {
	m := rgbPattern.FindStringSubmatch(s)
	if m == nil {
		return Color{}, false
	}
	r, g, b, ok := channels(m[1], m[2], m[3])
	if !ok {
		return Color{}, false
	}
	return RGB(r, g, b), true
}

func decodeRGBA(s string) (Color, bool) {
	m := rgbaPattern.FindStringSubmatch(s)
	if m == nil {
		return Color{}, false
	}
	r, g, b, ok := channels(m[1], m[2], m[3])
	if !ok {
		return Color{}, false
	}
	a, ok := unitFloat(m[4])
	if !ok {
		return Color{}, false
	}
	return RGBA(r, g, b, a), true
}

func decodeHSL(s string) (Color, bool) {
	m := hslPattern.FindStringSubmatch(s)
	if m == nil {
		return Color{}, false
	}
	h, sat, l, ok := hslComponents(m[1], m[3], m[4])
	if !ok {
		return Color{}, false
	}
	return NewColor([4]float64{h, sat, l, 1}, SpaceHSL), true
}

func decodeHSLA(s string) (Color, bool) {
	m := hslaPattern.FindStringSubmatch(s)
	if m == nil {
		return Color{}, false
	}
	h, sat, l, ok := hslComponents(m[1], m[3], m[4])
	if !ok {
		return Color{}, false
	}
	a, ok := unitFloat(m[5])
	if !ok {
		return Color{}, false
	}
	return NewColor([4]float64{h, sat, l, a}, SpaceHSL), true
}

func channels(rs, gs, bs string) (r, g, b uint8, ok bool) {
	var out [3]uint8
	for i, s := range []string{rs, gs, bs} {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 || v > 255 {
			return 0, 0, 0, false
		}
		out[i] = uint8(v)
	}
	return out[0], out[1], out[2], true
}

func hslComponents(hs, ss, ls string) (h, s, l float64, ok bool) {
	var err error
	if h, err = strconv.ParseFloat(hs, 64); err != nil {
		return 0, 0, 0, false
	}
	if s, err = strconv.ParseFloat(ss, 64); err != nil || s > 100 {
		return 0, 0, 0, false
	}
	if l, err = strconv.ParseFloat(ls, 64); err != nil || l > 100 {
		return 0, 0, 0, false
	}
	return h, s, l, true
}

func unitFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || v > 1 {
		return 0, false
	}
	return v, true
}

func parseInteger(n int64, mode InputMode, input any) (Parsed, error) {
	if n < 0 {
		return Parsed{}, parseFailure(input)
	}
	alpha := false
	switch mode {
	case InputColorRGBA:
		alpha = true
	case InputColor, InputColorRGB:
	default:
		alpha = n > 0xffffff
	}

	if alpha {
		if n > math.MaxUint32 {
			return Parsed{}, parseFailure(input)
		}
		return Parsed{Color: unpackRGBA(uint32(n)), Notation: NotationIntRGBA}, nil
	}
	if n > 0xffffff {
		return Parsed{}, parseFailure(input)
	}
	return Parsed{Color: unpackRGB(uint32(n)), Notation: NotationIntRGB}, nil
}

func parseObject(obj map[string]any, input any) (Parsed, error) {
	var comps [4]float64
	for i, key := range []string{"r", "g", "b"} {
		v, ok := floatOf(obj[key])
		if !ok || v < 0 || v > 255 {
			return Parsed{}, parseFailure(input)
		}
		comps[i] = v
	}

	raw, hasAlpha := obj["a"]
	expected := 3
	comps[3] = 1
	if hasAlpha {
		a, ok := floatOf(raw)
		if !ok || a < 0 || a > 1 {
			return Parsed{}, parseFailure(input)
		}
		comps[3] = a
		expected = 4
	}
	if len(obj) != expected {
		return Parsed{}, parseFailure(input)
	}

	n := NotationObjectRGB
	if hasAlpha {
		n = NotationObjectRGBA
	}
	return Parsed{Color: NewColor(comps, SpaceRGB), Notation: n}, nil
}

func unpackRGB(v uint32) Color {
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v))
}

func unpackRGBA(v uint32) Color {
	return RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), float64(uint8(v))/255)
}

// integerOf accepts every Go integer kind and integral floats.
func integerOf(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return uintOf(uint64(n))
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return uintOf(n)
	case float32:
		return integralFloat(float64(n))
	case float64:
		return integralFloat(n)
	}
	return 0, false
}

func uintOf(n uint64) (int64, bool) {
	if n > math.MaxInt64 {
		return 0, false
	}
	return int64(n), true
}

func integralFloat(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return 0, false
	}
	return int64(f), true
}

func floatOf(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n)
	case float32:
		return float64(n), !math.IsNaN(float64(n))
	}
	if i, ok := integerOf(v); ok {
		return float64(i), true
	}
	return 0, false
}
