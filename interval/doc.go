// SPDX-License-Identifier: MIT

// Package interval defines the token alphabet fed to the chord classifiers:
// a closed set of named distances from a chord root, unison through the
// double octave.
//
// What:
//
//   - Interval is a uint8 enumeration. Its zero value, None, is not a member
//     of the vocabulary and marks "no interval" in optional slots.
//   - Semitones reports the distance from the root; enharmonic spellings
//     (Aug4/Dim5, Aug5/Min6, Maj6/Dim7, ...) share a distance but stay
//     distinct tokens.
//   - Symbol is the partial interval→text mapping used by chord-symbol
//     renderers. Tokens that are implied by a chord's quality (Maj3, Perf5)
//     or have no conventional fragment (Unison, Octave, ...) have no symbol.
//
// Errors:
//
//   - ErrNoSymbol: the interval has no chord-symbol fragment.
//   - ErrUnknownInterval: text does not name a vocabulary member.
//
// Usage:
//
//	iv, err := interval.Parse("Min6")
//	sym, err := iv.Symbol() // "b6"
package interval
