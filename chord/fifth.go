// SPDX-License-Identifier: MIT

package chord

import (
	"github.com/katalvlaran/lvchord/interval"
	"github.com/katalvlaran/lvchord/quality"
)

// HandleFifth consumes a token that affects the fifth and reconciles the
// triad with the third already recorded.
//
// Aug4, Dim5:
//   - no third: held in sus.
//   - minor third: fifth = Diminished, triad = Diminished.
//   - major third: appended to add; no triad is derived.
//
// Perf5 always sets fifth = Perfect, then:
//   - minor third: triad = Minor. A diminished triad is upgraded and Dim5
//     is demoted into add.
//   - major third: triad = Major.
//   - no third: the triad is left alone.
//
// Aug5, Min6:
//   - fifth already set: Min6 is appended to add.
//   - minor third: ErrInvalidInversion, c unchanged.
//   - otherwise fifth = Augmented, and triad = Augmented over a major third.
//
// The last structural fifth wins: Dim5 over a minor third replaces a
// recorded Perfect fifth and Minor triad, and Perf5 replaces an Augmented
// fifth. Neither replaced reading is kept in add.
//
// Any other token returns ErrInvalidInterval and leaves c unchanged.
func (c *Chord) HandleFifth(iv interval.Interval) error {
	switch iv {
	case interval.Aug4, interval.Dim5:
		switch c.third {
		case quality.MinorThird:
			c.fifth = quality.DiminishedFifth
			c.triad = quality.DiminishedTriad
		case quality.MajorThird:
			c.add = append(c.add, iv)
		default:
			c.sus = append(c.sus, iv)
		}

	case interval.Perf5:
		c.fifth = quality.PerfectFifth
		switch c.third {
		case quality.MinorThird:
			if c.triad == quality.DiminishedTriad {
				c.add = append(c.add, interval.Dim5)
			}
			c.triad = quality.MinorTriad
		case quality.MajorThird:
			c.triad = quality.MajorTriad
		default:
			// power chord: fifth only
		}

	case interval.Aug5, interval.Min6:
		if c.fifth.IsSet() {
			c.add = append(c.add, interval.Min6)
			return nil
		}
		switch c.third {
		case quality.MinorThird:
			return chordErrorf(MethodHandleFifth, iv, ErrInvalidInversion)
		case quality.MajorThird:
			c.triad = quality.AugmentedTriad
		default:
		}
		c.fifth = quality.AugmentedFifth

	default:
		return chordErrorf(MethodHandleFifth, iv, ErrInvalidInterval)
	}

	return nil
}
