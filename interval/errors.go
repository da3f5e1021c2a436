// SPDX-License-Identifier: MIT

package interval

import "errors"

var (
	// ErrNoSymbol indicates the interval has no chord-symbol fragment.
	ErrNoSymbol = errors.New("interval: no symbol for interval")

	// ErrUnknownInterval indicates a name that is not part of the vocabulary.
	ErrUnknownInterval = errors.New("interval: unknown interval")
)
