// SPDX-License-Identifier: MIT

package strassen

import (
	"errors"

	"github.com/katalvlaran/strassen/checked"
)

var (
	// ErrInvalidDimension indicates that n is not a positive power of two or
	// exceeds the configured maximum dimension.
	ErrInvalidDimension = errors.New("strassen: invalid dimension")

	// ErrOverflow is matched by every arithmetic failure returned by this
	// package. It is the checked.ErrOverflow sentinel.
	ErrOverflow = checked.ErrOverflow
)
