// SPDX-License-Identifier: MIT

package quality

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUnknownQuality indicates text that does not name a member of the quality set.
var ErrUnknownQuality = errors.New("quality: unknown quality")

// Third is the quality of a chord's third.
type Third uint8

const (
	NoThird Third = iota
	MinorThird
	MajorThird
)

// Fifth is the quality of a chord's fifth.
type Fifth uint8

const (
	NoFifth Fifth = iota
	DiminishedFifth
	PerfectFifth
	AugmentedFifth
)

// Seventh is the quality of a chord's seventh. Only the diminished seventh
// is produced by classification today.
type Seventh uint8

const (
	NoSeventh Seventh = iota
	DiminishedSeventh
)

// Triad is the three-note skeleton derived from a third and a fifth.
type Triad uint8

const (
	NoTriad Triad = iota
	MinorTriad
	MajorTriad
	DiminishedTriad
	AugmentedTriad
)

var (
	thirdNames   = []string{"", "Minor", "Major"}
	fifthNames   = []string{"", "Diminished", "Perfect", "Augmented"}
	seventhNames = []string{"", "Diminished"}
	triadNames   = []string{"", "Minor", "Major", "Diminished", "Augmented"}
)

// IsSet reports whether t holds a quality.
func (t Third) IsSet() bool { return t != NoThird }

// IsSet reports whether f holds a quality.
func (f Fifth) IsSet() bool { return f != NoFifth }

// IsSet reports whether s holds a quality.
func (s Seventh) IsSet() bool { return s != NoSeventh }

// IsSet reports whether t holds a classification.
func (t Triad) IsSet() bool { return t != NoTriad }

// String returns "Minor", "Major" or "None".
func (t Third) String() string { return name("Third", thirdNames, uint8(t)) }

// String returns "Diminished", "Perfect", "Augmented" or "None".
func (f Fifth) String() string { return name("Fifth", fifthNames, uint8(f)) }

// String returns "Diminished" or "None".
func (s Seventh) String() string { return name("Seventh", seventhNames, uint8(s)) }

// String returns the triad name or "None".
func (t Triad) String() string { return name("Triad", triadNames, uint8(t)) }

// MarshalText implements encoding.TextMarshaler. Unset values encode as "".
func (t Third) MarshalText() ([]byte, error) { return marshal(thirdNames, uint8(t), t) }

// MarshalText implements encoding.TextMarshaler. Unset values encode as "".
func (f Fifth) MarshalText() ([]byte, error) { return marshal(fifthNames, uint8(f), f) }

// MarshalText implements encoding.TextMarshaler. Unset values encode as "".
func (s Seventh) MarshalText() ([]byte, error) { return marshal(seventhNames, uint8(s), s) }

// MarshalText implements encoding.TextMarshaler. Unset values encode as "".
func (t Triad) MarshalText() ([]byte, error) { return marshal(triadNames, uint8(t), t) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Third) UnmarshalText(text []byte) error {
	v, err := unmarshal(thirdNames, "third", text)
	if err != nil {
		return err
	}
	*t = Third(v)
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Fifth) UnmarshalText(text []byte) error {
	v, err := unmarshal(fifthNames, "fifth", text)
	if err != nil {
		return err
	}
	*f = Fifth(v)
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Seventh) UnmarshalText(text []byte) error {
	v, err := unmarshal(seventhNames, "seventh", text)
	if err != nil {
		return err
	}
	*s = Seventh(v)
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Triad) UnmarshalText(text []byte) error {
	v, err := unmarshal(triadNames, "triad", text)
	if err != nil {
		return err
	}
	*t = Triad(v)
	return nil
}

// name renders v from names; the unset member renders as "None".
func name(kind string, names []string, v uint8) string {
	switch {
	case v == 0:
		return "None"
	case int(v) < len(names):
		return names[v]
	default:
		return kind + "(" + strconv.Itoa(int(v)) + ")"
	}
}

func marshal(names []string, v uint8, q fmt.Stringer) ([]byte, error) {
	if int(v) >= len(names) {
		return nil, fmt.Errorf("marshal %s: %w", q, ErrUnknownQuality)
	}
	return []byte(names[v]), nil
}

// unmarshal looks text up in names. Empty text decodes to the unset member.
func unmarshal(names []string, kind string, text []byte) (uint8, error) {
	s := string(text)
	for i, n := range names {
		if n == s {
			return uint8(i), nil
		}
	}
	return 0, fmt.Errorf("%s %q: %w", kind, s, ErrUnknownQuality)
}
