// SPDX-License-Identifier: MIT

package chord

import (
	"github.com/katalvlaran/lvchord/interval"
	"github.com/katalvlaran/lvchord/quality"
)

// HandleThird consumes a token that defines the third or may suspend it.
//
//   - Min3: third = Minor; pending sus moves into add.
//   - Maj3: a previously recorded minor third is demoted into add as Min3;
//     third = Major; pending sus moves into add.
//   - Min2, Maj2, Perf4: held in sus while no third is known, otherwise
//     appended to add.
//
// Any other token returns ErrInvalidInterval and leaves c unchanged.
func (c *Chord) HandleThird(iv interval.Interval) error {
	switch iv {
	case interval.Min3:
		c.third = quality.MinorThird
		c.resolveSus()
	case interval.Maj3:
		if c.third == quality.MinorThird {
			c.add = append(c.add, interval.Min3)
		}
		c.third = quality.MajorThird
		c.resolveSus()
	case interval.Min2, interval.Maj2, interval.Perf4:
		if c.third.IsSet() {
			c.add = append(c.add, iv)
		} else {
			c.sus = append(c.sus, iv)
		}
	default:
		return chordErrorf(MethodHandleThird, iv, ErrInvalidInterval)
	}

	return nil
}
