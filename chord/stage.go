// SPDX-License-Identifier: MIT

package chord

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvchord/interval"
)

// Stage names the handler a token is routed to. Stages are ordered:
// tokens must reach a Chord third-stage first, then fifth, then sixth.
type Stage uint8

const (
	// StageThird routes to HandleThird.
	StageThird Stage = iota
	// StageFifth routes to HandleFifth.
	StageFifth
	// StageSixth routes to HandleSixth.
	StageSixth
)

var stageNames = [...]string{
	StageThird: "third",
	StageFifth: "fifth",
	StageSixth: "sixth",
}

// String returns the lower-case stage name, e.g. "fifth".
func (s Stage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return "Stage(" + strconv.Itoa(int(s)) + ")"
}

// MarshalText implements encoding.TextMarshaler.
func (s Stage) MarshalText() ([]byte, error) {
	if int(s) >= len(stageNames) {
		return nil, fmt.Errorf("marshal %s: %w", s, ErrInvalidStage)
	}
	return []byte(stageNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Stage) UnmarshalText(text []byte) error {
	for i, n := range stageNames {
		if n == string(text) {
			*s = Stage(i)
			return nil
		}
	}
	return fmt.Errorf("stage %q: %w", text, ErrInvalidStage)
}

// StageOf reports which stage accepts iv. ok is false for tokens no
// handler accepts (Unison, Dim7, the sevenths and every compound interval).
func StageOf(iv interval.Interval) (stage Stage, ok bool) {
	switch iv {
	case interval.Min2, interval.Maj2, interval.Min3, interval.Maj3, interval.Perf4:
		return StageThird, true
	case interval.Aug4, interval.Dim5, interval.Perf5, interval.Aug5, interval.Min6:
		return StageFifth, true
	case interval.Maj6:
		return StageSixth, true
	default:
		return 0, false
	}
}

// Apply routes iv to the handler for stage. An unknown stage returns
// ErrInvalidStage; handler errors are returned as is.
func (c *Chord) Apply(stage Stage, iv interval.Interval) error {
	switch stage {
	case StageThird:
		return c.HandleThird(iv)
	case StageFifth:
		return c.HandleFifth(iv)
	case StageSixth:
		return c.HandleSixth(iv)
	default:
		return fmt.Errorf("%s(%s, %s): %w", MethodApply, stage, iv, ErrInvalidStage)
	}
}

// Classify builds a Chord from intervals, routing each token with StageOf.
//
// Tokens must arrive in non-decreasing stage order. Within a stage any order
// is accepted and handled as the individual handlers define.
//
// On failure Classify returns the chord as built up to the failing token
// together with an error naming the token's position:
//   - ErrInvalidInterval: no stage accepts the token.
//   - ErrStageOrder: the token belongs to an earlier stage than its predecessor.
//   - ErrInvalidInversion: from HandleFifth.
func Classify(intervals ...interval.Interval) (*Chord, error) {
	c := New()
	current := StageThird
	for i, iv := range intervals {
		stage, ok := StageOf(iv)
		if !ok {
			return c, fmt.Errorf("%s: token %d: %w", MethodClassify, i,
				chordErrorf(MethodApply, iv, ErrInvalidInterval))
		}
		if stage < current {
			return c, fmt.Errorf("%s: token %d (%s) after %s stage: %w",
				MethodClassify, i, iv, current, ErrStageOrder)
		}
		if err := c.Apply(stage, iv); err != nil {
			return c, fmt.Errorf("%s: token %d: %w", MethodClassify, i, err)
		}
		current = stage
	}

	return c, nil
}
