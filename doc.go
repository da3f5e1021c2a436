// SPDX-License-Identifier: MIT

// Package lvchord classifies streams of musical interval tokens into
// structured chord descriptions.
//
// What is lvchord?
//
//	A small, zero-I/O library that turns intervals measured from a root
//	into the pieces a chord-symbol renderer needs:
//		• third and fifth qualities, and the triad they imply
//		• suspensions still waiting for a third
//		• added and altered tones, in arrival order
//		• a diminished seventh and its implied leading tone
//
// Everything is organized under three subpackages:
//
//	interval/ — the token alphabet (Unison … DoubleOct) + partial symbol mapping
//	quality/  — Third, Fifth, Seventh and Triad enumerations
//	chord/    — the Chord accumulator, its three stage handlers and Classify
//
// Quick example:
//
//	c, err := chord.Classify(interval.Min3, interval.Dim5, interval.Maj6)
//	// c.Triad() == quality.DiminishedTriad
//	// c.Seventh() == quality.DiminishedSeventh
//
//	go get github.com/katalvlaran/lvchord/chord
package lvchord
