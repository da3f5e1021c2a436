// SPDX-License-Identifier: MIT

package chord

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvchord/interval"
)

// ErrInvalidInterval indicates the token is outside the set accepted by the
// handler (or by every stage, when returned from Classify).
// Usage: if errors.Is(err, ErrInvalidInterval) { /* token belongs to another stage */ }.
var ErrInvalidInterval = errors.New("chord: invalid interval")

// ErrInvalidInversion indicates a token valid for the handler that the
// recorded state forbids: an augmented fifth over a minor third.
var ErrInvalidInversion = errors.New("chord: invalid inversion")

// ErrInvalidStage indicates Apply was called with a Stage outside the
// declared set.
var ErrInvalidStage = errors.New("chord: invalid stage")

// ErrStageOrder indicates Classify received a token belonging to a stage
// that precedes the stage of an earlier token.
var ErrStageOrder = errors.New("chord: stage out of order")

// Method names used as error context.
const (
	MethodHandleThird = "HandleThird"
	MethodHandleFifth = "HandleFifth"
	MethodHandleSixth = "HandleSixth"
	MethodApply       = "Apply"
	MethodClassify    = "Classify"
)

// chordErrorf wraps sentinel with "<method>(<interval>)" context so callers
// keep errors.Is semantics.
func chordErrorf(method string, iv interval.Interval, sentinel error) error {
	return fmt.Errorf("%s(%s): %w", method, iv, sentinel)
}
