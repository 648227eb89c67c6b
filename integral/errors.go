// SPDX-License-Identifier: MIT

package integral

import "errors"

var (
	// ErrUnknownCacheCode is returned when an integral is requested for a code
	// this Manager never issued. It signals a caller bug, not a runtime condition.
	ErrUnknownCacheCode = errors.New("integral: unknown cache code")

	// ErrLengthMismatch is returned when the parameter values passed to
	// Evaluate do not line up with the cached volumes.
	ErrLengthMismatch = errors.New("integral: length mismatch")
)
