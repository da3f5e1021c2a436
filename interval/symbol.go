// SPDX-License-Identifier: MIT

package interval

import "fmt"

// Symbol returns the chord-symbol fragment for iv, e.g. Min2 → "b2",
// Maj6 → "6", Dim7 → "bb7".
//
// The mapping is partial. Intervals implied by the chord quality (Maj3,
// Perf5) and those without a conventional fragment (Unison, Octave,
// Min10, Maj10, Perf12, Min14, Maj14, DoubleOct) return an error wrapping
// ErrNoSymbol; Symbol never guesses.
func (iv Interval) Symbol() (string, error) {
	if !iv.IsValid() || table[iv].symbol == "" {
		return "", fmt.Errorf("cannot write %s: %w", iv, ErrNoSymbol)
	}
	return table[iv].symbol, nil
}

// Parse returns the Interval named by s. Names are case-sensitive and match
// String, e.g. "Maj6". Unknown names return an error wrapping
// ErrUnknownInterval.
func Parse(s string) (Interval, error) {
	iv, ok := byName[s]
	if !ok {
		return None, fmt.Errorf("%q: %w", s, ErrUnknownInterval)
	}
	return iv, nil
}

// MarshalText implements encoding.TextMarshaler.
func (iv Interval) MarshalText() ([]byte, error) {
	if !iv.IsValid() {
		return nil, fmt.Errorf("marshal %s: %w", iv, ErrUnknownInterval)
	}
	return []byte(table[iv].name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (iv *Interval) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*iv = parsed
	return nil
}
