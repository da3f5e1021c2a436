// SPDX-License-Identifier: MIT

package chord_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvchord/chord"
	"github.com/katalvlaran/lvchord/interval"
	"github.com/katalvlaran/lvchord/quality"
)

// TestHandleThird_InvalidInterval ensures every token outside
// {Min2, Maj2, Min3, Maj3, Perf4} is rejected without touching the chord.
func TestHandleThird_InvalidInterval(t *testing.T) {
	accepted := map[interval.Interval]bool{
		interval.Min2: true, interval.Maj2: true, interval.Min3: true,
		interval.Maj3: true, interval.Perf4: true,
	}
	for _, iv := range append(interval.All(), interval.None) {
		if accepted[iv] {
			continue
		}
		t.Run(iv.String(), func(t *testing.T) {
			c := mustApply(t, third(interval.Maj2))
			before := c.Snapshot()

			err := c.HandleThird(iv)
			require.ErrorIs(t, err, chord.ErrInvalidInterval)
			assert.Contains(t, err.Error(), chord.MethodHandleThird)
			assert.Equal(t, before, c.Snapshot(), "failed call must not mutate")
		})
	}
}

// TestHandleThird covers every accepted token alone and in the orders that
// exercise suspension, resolution and demotion.
func TestHandleThird(t *testing.T) {
	cases := []struct {
		name  string
		steps []step
		want  chord.State
	}{
		{"Min2", []step{third(interval.Min2)}, chord.State{Sus: ivs(interval.Min2)}},
		{"Maj2", []step{third(interval.Maj2)}, chord.State{Sus: ivs(interval.Maj2)}},
		{"Perf4", []step{third(interval.Perf4)}, chord.State{Sus: ivs(interval.Perf4)}},
		{"Min3", []step{third(interval.Min3)}, chord.State{Third: quality.MinorThird}},
		{"Maj3", []step{third(interval.Maj3)}, chord.State{Third: quality.MajorThird}},
		{
			"MultipleSus",
			[]step{third(interval.Min2), third(interval.Maj2), third(interval.Perf4)},
			chord.State{Sus: ivs(interval.Min2, interval.Maj2, interval.Perf4)},
		},
		{
			"SusMin3",
			[]step{third(interval.Maj2), third(interval.Min3)},
			chord.State{Third: quality.MinorThird, Add: ivs(interval.Maj2)},
		},
		{
			"SusMaj3",
			[]step{third(interval.Maj2), third(interval.Maj3)},
			chord.State{Third: quality.MajorThird, Add: ivs(interval.Maj2)},
		},
		{
			"SusMin3Add",
			[]step{third(interval.Maj2), third(interval.Min3), third(interval.Perf4)},
			chord.State{Third: quality.MinorThird, Add: ivs(interval.Maj2, interval.Perf4)},
		},
		{
			"SusMaj3Add",
			[]step{third(interval.Maj2), third(interval.Maj3), third(interval.Perf4)},
			chord.State{Third: quality.MajorThird, Add: ivs(interval.Maj2, interval.Perf4)},
		},
		{
			"Min3Maj3",
			[]step{third(interval.Min3), third(interval.Maj3)},
			chord.State{Third: quality.MajorThird, Add: ivs(interval.Min3)},
		},
		{
			"SusMin3Maj3",
			[]step{third(interval.Maj2), third(interval.Min3), third(interval.Maj3)},
			chord.State{Third: quality.MajorThird, Add: ivs(interval.Maj2, interval.Min3)},
		},
		{
			"SusMin3Maj3Add",
			[]step{third(interval.Maj2), third(interval.Min3), third(interval.Maj3), third(interval.Perf4)},
			chord.State{Third: quality.MajorThird, Add: ivs(interval.Maj2, interval.Min3, interval.Perf4)},
		},
		{
			"OrderedSusResolve",
			[]step{third(interval.Perf4), third(interval.Min2), third(interval.Maj3)},
			chord.State{Third: quality.MajorThird, Add: ivs(interval.Perf4, interval.Min2)},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := mustApply(t, tc.steps...)
			assert.Equal(t, tc.want, c.Snapshot())
		})
	}
}

// TestHandleThird_SusEmptyOnceThirdSet checks that suspensions never
// accumulate after a third is known.
func TestHandleThird_SusEmptyOnceThirdSet(t *testing.T) {
	c := mustApply(t, third(interval.Min2), third(interval.Min3))
	for _, iv := range ivs(interval.Maj2, interval.Perf4, interval.Min2) {
		require.NoError(t, c.HandleThird(iv))
		assert.Empty(t, c.Sus())
	}
	assert.Equal(t, ivs(interval.Min2, interval.Maj2, interval.Perf4, interval.Min2), c.Add())
}
