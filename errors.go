// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package bitsim

import (
	"github.com/pkg/errors"
)

// Errors reported by shape construction and bit addressing. Index and slice
// misuse panics with one of these wrapped in context; use errors.Cause to
// recover the sentinel.
var (
	// ErrInvalidWidth is reported for bit widths outside [0, 64].
	ErrInvalidWidth = errors.New("invalid bit width")
	// ErrOutOfBounds is reported for bit indices outside [0, bits).
	ErrOutOfBounds = errors.New("bit index out of range")
	// ErrInvalidRange is reported for slices where low > high.
	ErrInvalidRange = errors.New("invalid slice range")
)
