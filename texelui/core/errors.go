// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/errors.go
// Summary: Errors shared by texelui views and values.

package core

import "github.com/pkg/errors"

// ErrAlreadyDisposed signals use of a view or value after its owner released it.
// It marks a usage-order bug rather than a recoverable condition.
var ErrAlreadyDisposed = errors.New("texelui: already disposed")
