// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/numbertext.go
// Summary: Numeric text field with step increments.

package widgets

import (
	"math"
	"strconv"
	"strings"

	"github.com/framegrace/texelpane/texelui/value"
)

// Defaults for NumberText stepping.
const (
	DefaultStep            = 0.1
	DefaultShiftMultiplier = 10
)

// NumberText is a text field bound to a number. Increment is provided for
// hosts that map keys or wheel events to stepping; no keys are bound here.
type NumberText struct {
	*TextInput

	Step            float64
	ShiftMultiplier float64

	value *value.Value[float64]
}

// NewNumberText creates a number field. step <= 0 uses DefaultStep.
func NewNumberText(x, y, w int, val *value.Value[float64], step float64) *NumberText {
	if step <= 0 {
		step = DefaultStep
	}
	return &NumberText{
		TextInput:       NewTextInput(x, y, w, val),
		Step:            step,
		ShiftMultiplier: DefaultShiftMultiplier,
		value:           val,
	}
}

// Increment moves the value by dir steps; shift multiplies the step by
// ShiftMultiplier. The result is rounded to the step's decimal places so
// repeated steps do not accumulate float noise.
func (nt *NumberText) Increment(dir int, shift bool) error {
	if err := nt.Check(); err != nil {
		return err
	}
	step := nt.Step
	if shift {
		step *= nt.ShiftMultiplier
	}
	next := roundTo(nt.value.RawValue()+float64(dir)*step, decimals(nt.Step))
	return nt.value.SetRawValue(next)
}

func decimals(step float64) int {
	s := strconv.FormatFloat(step, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
