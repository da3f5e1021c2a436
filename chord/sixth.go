// SPDX-License-Identifier: MIT

package chord

import (
	"github.com/katalvlaran/lvchord/interval"
	"github.com/katalvlaran/lvchord/quality"
)

// HandleSixth consumes a major sixth. Over a diminished triad the sixth is
// read as the diminished seventh of a fully diminished chord: seventh =
// Diminished and lead = Dim7. Otherwise Maj6 is appended to add.
//
// Any token other than Maj6 returns ErrInvalidInterval and leaves c unchanged.
func (c *Chord) HandleSixth(iv interval.Interval) error {
	if iv != interval.Maj6 {
		return chordErrorf(MethodHandleSixth, iv, ErrInvalidInterval)
	}

	if c.triad == quality.DiminishedTriad {
		c.seventh = quality.DiminishedSeventh
		c.lead = interval.Dim7
	} else {
		c.add = append(c.add, interval.Maj6)
	}

	return nil
}
