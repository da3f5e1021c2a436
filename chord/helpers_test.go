// SPDX-License-Identifier: MIT

package chord_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvchord/chord"
	"github.com/katalvlaran/lvchord/interval"
)

// step is one handler call.
type step struct {
	Stage    chord.Stage       `yaml:"stage"`
	Interval interval.Interval `yaml:"interval"`
}

func third(iv interval.Interval) step { return step{chord.StageThird, iv} }
func fifth(iv interval.Interval) step { return step{chord.StageFifth, iv} }
func sixth(iv interval.Interval) step { return step{chord.StageSixth, iv} }

// ivs keeps expected sequences short in tables.
func ivs(list ...interval.Interval) []interval.Interval { return list }

// mustApply runs steps on a fresh chord and fails the test on any error.
func mustApply(t *testing.T, steps ...step) *chord.Chord {
	t.Helper()
	c := chord.New()
	for i, s := range steps {
		require.NoError(t, c.Apply(s.Stage, s.Interval), "step %d: %s(%s)", i, s.Stage, s.Interval)
	}
	return c
}
