// SPDX-License-Identifier: MIT

// Package chord classifies a stream of interval tokens, relative to a root,
// into a structured chord description.
//
// What:
//
//   - Chord is a mutable accumulator owned by one caller. It records the
//     third, fifth and seventh qualities, the derived triad, pending
//     suspensions (sus), added/altered tones (add) and an implied leading
//     tone (lead).
//   - Three handlers each consume one interval and transition the state:
//     HandleThird (Min2, Maj2, Min3, Maj3, Perf4), HandleFifth (Aug4, Dim5,
//     Perf5, Aug5, Min6) and HandleSixth (Maj6).
//   - Classify drives the handlers over a whole token list, routing each
//     token to its stage and enforcing third → fifth → sixth order.
//
// State machine:
//
//	The chord only grows, with two narrow rewrites:
//	  • Min3 then Maj3: the minor third is demoted into add.
//	  • Diminished triad then Perf5: the triad becomes Minor and Dim5 is
//	    demoted into add.
//	Suspensions collected before a third is known move into add, in
//	arrival order, the moment a third lands.
//
// Errors:
//
//   - ErrInvalidInterval: the token is not accepted by the handler (or by
//     any stage, for Classify).
//   - ErrInvalidInversion: an augmented fifth over a minor third.
//   - ErrInvalidStage: Apply was given an unknown Stage.
//   - ErrStageOrder: Classify saw a token for an earlier stage.
//
// A failing handler never mutates the chord.
//
// Example:
//
//	c := chord.New()
//	_ = c.HandleThird(interval.Min3)
//	_ = c.HandleFifth(interval.Dim5)
//	_ = c.HandleSixth(interval.Maj6) // fully diminished seventh
//	s := c.Snapshot()                // s.Seventh == quality.DiminishedSeventh, s.Lead == interval.Dim7
//
// Concurrency:
//
//	A Chord is not safe for concurrent mutation. Independent chords share
//	nothing and can be classified in parallel.
package chord
