// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/pane/controller.go
// Summary: Controller selection and codecs for host values.

package pane

import (
	imgcolor "image/color"
	"math"
	"strconv"

	"github.com/pkg/errors"

	"github.com/framegrace/texelpane/config"
	"github.com/framegrace/texelpane/texelui/color"
	"github.com/framegrace/texelpane/texelui/value"
	"github.com/framegrace/texelpane/texelui/widgets"
)

// ErrUnsupported is returned for host values no controller can edit.
var ErrUnsupported = errors.New("pane: unsupported value")

// bind picks a controller for initial and builds the binding.
func (p *Pane) bind(key, label string, target value.Target[any], initial any, params InputParams) (*Binding, error) {
	input := params.Input
	if input == "" {
		input = config.System().GetString(config.PaneSection, config.KeyDefaultInput, "")
	}
	mode, ok := color.ParseInputMode(input)
	if !ok {
		return nil, errors.Errorf("pane: %s: unknown input %q", key, input)
	}

	b := &Binding{Key: key, Label: label}
	switch v := initial.(type) {
	case bool:
		if mode.IsColor() {
			return nil, errors.Wrapf(ErrUnsupported, "%s: bool as %s", key, mode)
		}
		p.bindBool(b, target, v)
		return b, nil
	case string:
		if !mode.IsColor() {
			if _, err := color.ParseString(v); err != nil {
				p.bindText(b, target, v)
				return b, nil
			}
		}
	}

	if _, isNumber := numberOf(initial); isNumber && !mode.IsColor() {
		p.bindNumber(b, target, initial, params.Step)
		return b, nil
	}

	parsed, err := color.Parse(initial, mode)
	if err != nil {
		if mode.IsColor() {
			return nil, errors.Wrapf(err, "pane: %s", key)
		}
		return nil, errors.Wrapf(ErrUnsupported, "%s: %T", key, initial)
	}
	p.bindColor(b, target, initial, parsed, mode, params)
	return b, nil
}

func (p *Pane) bindColor(b *Binding, target value.Target[any], initial any, parsed color.Parsed, mode color.InputMode, params InputParams) {
	notation := parsed.Notation
	encode := func(c color.Color) any { return color.FormatValue(c, notation) }
	switch host := initial.(type) {
	case color.Color:
		encode = func(c color.Color) any { return c }
	case imgcolor.Color:
		encode = func(c color.Color) any { return c.NRGBA() }
	case map[string]any:
		encode = func(c color.Color) any { return objectLike(host, c.ToObject(notation.HasAlpha())) }
	case map[string]float64:
		encode = func(c color.Color) any {
			out := make(map[string]float64, 4)
			for k, v := range c.ToObject(notation.HasAlpha()) {
				out[k] = v.(float64)
			}
			return out
		}
	case map[string]int:
		encode = func(c color.Color) any {
			out := make(map[string]int, 4)
			for k, v := range c.ToObject(notation.HasAlpha()) {
				out[k] = int(math.Round(v.(float64)))
			}
			return out
		}
	}

	codec := value.Codec[color.Color]{
		Parse: func(s string) (color.Color, error) {
			pc, err := color.ParseString(s)
			return pc.Color, err
		},
		Format: func(c color.Color) string { return color.Format(c, notation) },
	}
	if _, ints := initial.(map[string]int); ints && notation.HasAlpha() {
		codec.Constrain = func(c color.Color) color.Color { return c.WithAlpha(math.Round(c.Alpha())) }
	}
	adapter := value.Adapter[color.Color]{
		Inner: target,
		Decode: func(a any) (color.Color, error) {
			pc, err := color.Parse(a, mode)
			return pc.Color, err
		},
		Encode: encode,
	}
	val := value.New(parsed.Color, value.Target[color.Color](adapter), codec)

	b.Kind = KindColor
	b.Notation = notation
	b.val = val
	b.color = val
	res := config.System().GetInt(config.PaneSection, config.KeyPaletteResolution, config.DefaultPaletteResolution)
	if params.View == ViewPicker {
		b.view = widgets.NewColorPicker(0, 0, val, widgets.ColorPickerConfig{
			EnableHSV:   true,
			EnableOKLCH: true,
			EnableTheme: true,
			Label:       b.Label,
			Resolution:  res,
		})
		return
	}
	cs := widgets.NewColorSwatchText(0, 0, 1, val, res)
	cs.SetExpanded(params.Expanded)
	b.view = cs
}

func (p *Pane) bindNumber(b *Binding, target value.Target[any], initial any, step float64) {
	f, _ := numberOf(initial)
	integral := isInteger(initial)
	if step <= 0 {
		if integral {
			step = 1
		} else {
			step = config.System().GetFloat(config.PaneSection, config.KeyStep, widgets.DefaultStep)
		}
	}

	adapter := value.Adapter[float64]{
		Inner: target,
		Decode: func(a any) (float64, error) {
			n, ok := numberOf(a)
			if !ok {
				return 0, errors.Wrapf(ErrUnsupported, "%v (%T) is not a number", a, a)
			}
			return n, nil
		},
		Encode: encodeNumberLike(initial),
	}
	codec := value.FloatCodec()
	if lo, hi, ok := integerRange(initial); ok {
		codec.Constrain = func(n float64) float64 { return math.Min(math.Max(math.Round(n), lo), hi) }
	}
	val := value.New(f, value.Target[float64](adapter), codec)
	nt := widgets.NewNumberText(0, 0, 1, val, step)
	nt.ShiftMultiplier = config.System().GetFloat(config.PaneSection, config.KeyShiftMultiplier, widgets.DefaultShiftMultiplier)

	b.Kind = KindNumber
	b.val = val
	b.view = nt
}

func (p *Pane) bindBool(b *Binding, target value.Target[any], initial bool) {
	adapter := value.Adapter[bool]{
		Inner: target,
		Decode: func(a any) (bool, error) {
			v, ok := a.(bool)
			if !ok {
				return false, errors.Wrapf(ErrUnsupported, "%v (%T) is not a bool", a, a)
			}
			return v, nil
		},
		Encode: func(v bool) any { return v },
	}
	val := value.New(initial, value.Target[bool](adapter), value.BoolCodec())
	b.Kind = KindBool
	b.val = val
	b.view = widgets.NewCheckbox(0, 0, "", val)
}

func (p *Pane) bindText(b *Binding, target value.Target[any], initial string) {
	adapter := value.Adapter[string]{
		Inner: target,
		Decode: func(a any) (string, error) {
			s, ok := a.(string)
			if !ok {
				return "", errors.Wrapf(ErrUnsupported, "%v (%T) is not a string", a, a)
			}
			return s, nil
		},
		Encode: func(s string) any { return s },
	}
	val := value.New(initial, value.Target[string](adapter), value.StringCodec())
	b.Kind = KindText
	b.val = val
	b.view = widgets.NewTextInput(0, 0, 1, val)
}

// objectLike converts the r, g and b channels of obj to the numeric kinds
// host used for them. Alpha stays a float64.
func objectLike(host, obj map[string]any) map[string]any {
	for _, k := range []string{"r", "g", "b"} {
		if isInteger(host[k]) {
			obj[k] = encodeNumberLike(host[k])(obj[k].(float64))
		}
	}
	return obj
}

// numberOf accepts Go integer and float kinds.
func numberOf(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n)
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

func isInteger(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	}
	return false
}

// integerRange returns the values an integer kind can hold exactly as
// float64. The 64-bit upper bounds stop at the largest float64 below 2^63
// and 2^64.
func integerRange(v any) (lo, hi float64, ok bool) {
	switch v.(type) {
	case int:
		lo, hi = signedRange(strconv.IntSize)
	case int8:
		lo, hi = signedRange(8)
	case int16:
		lo, hi = signedRange(16)
	case int32:
		lo, hi = signedRange(32)
	case int64:
		lo, hi = signedRange(64)
	case uint:
		lo, hi = unsignedRange(strconv.IntSize)
	case uint8:
		lo, hi = unsignedRange(8)
	case uint16:
		lo, hi = unsignedRange(16)
	case uint32:
		lo, hi = unsignedRange(32)
	case uint64:
		lo, hi = unsignedRange(64)
	default:
		return 0, 0, false
	}
	return lo, hi, true
}

func signedRange(bits int) (float64, float64) {
	lo := -math.Ldexp(1, bits-1)
	if bits > 53 {
		return lo, math.Nextafter(-lo, 0)
	}
	return lo, -lo - 1
}

func unsignedRange(bits int) (float64, float64) {
	top := math.Ldexp(1, bits)
	if bits > 53 {
		return 0, math.Nextafter(top, 0)
	}
	return 0, top - 1
}

// encodeNumberLike writes numbers back in the host's original kind,
// rounding and clamping integers into the kind's range.
func encodeNumberLike(initial any) func(float64) any {
	lo, hi, integral := integerRange(initial)
	fit := func(f float64) float64 { return math.Min(math.Max(math.Round(f), lo), hi) }
	if !integral {
		if _, ok := initial.(float32); ok {
			return func(f float64) any { return float32(f) }
		}
		return func(f float64) any { return f }
	}
	switch initial.(type) {
	case int:
		return func(f float64) any { return int(fit(f)) }
	case int8:
		return func(f float64) any { return int8(fit(f)) }
	case int16:
		return func(f float64) any { return int16(fit(f)) }
	case int32:
		return func(f float64) any { return int32(fit(f)) }
	case int64:
		return func(f float64) any { return int64(fit(f)) }
	case uint:
		return func(f float64) any { return uint(fit(f)) }
	case uint8:
		return func(f float64) any { return uint8(fit(f)) }
	case uint16:
		return func(f float64) any { return uint16(fit(f)) }
	case uint32:
		return func(f float64) any { return uint32(fit(f)) }
	}
	return func(f float64) any { return uint64(fit(f)) }
}
