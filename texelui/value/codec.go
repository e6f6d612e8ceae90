// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/value/codec.go
// Summary: Codecs for the primitive input types.

package value

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// StringCodec passes text through unchanged.
func StringCodec() Codec[string] {
	return Codec[string]{
		Parse:  func(s string) (string, error) { return s, nil },
		Format: func(s string) string { return s },
	}
}

// BoolCodec accepts the spellings strconv.ParseBool does.
func BoolCodec() Codec[bool] {
	return Codec[bool]{
		Parse: func(s string) (bool, error) {
			b, err := strconv.ParseBool(strings.TrimSpace(s))
			return b, errors.Wrapf(err, "not a boolean: %q", s)
		},
		Format: strconv.FormatBool,
	}
}

// FloatCodec parses finite decimal numbers and prints the shortest text
// that reads back to the same value.
func FloatCodec() Codec[float64] {
	return Codec[float64]{
		Parse: func(s string) (float64, error) {
			f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return 0, errors.Wrapf(err, "not a number: %q", s)
			}
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return 0, errors.Errorf("not a finite number: %q", s)
			}
			return f, nil
		},
		Format: func(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) },
	}
}
