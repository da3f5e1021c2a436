// SPDX-License-Identifier: MIT

package interval

import "strconv"

// Interval is a named distance from a chord root.
type Interval uint8

const (
	// None is the zero value: no interval.
	None Interval = iota

	Unison
	Min2
	Maj2
	Min3
	Maj3
	Perf4
	Aug4
	Dim5
	Perf5
	Aug5
	Min6
	Maj6
	Dim7
	Min7
	Maj7
	Octave
	Min9
	Maj9
	Min10
	Maj10
	Perf11
	Aug11
	Dim12
	Perf12
	Min13
	Maj13
	Min14
	Maj14
	DoubleOct

	// count is one past the last member; keep it last.
	count
)

// info describes one vocabulary member.
type info struct {
	name      string
	semitones int
	symbol    string // "" when the interval has no chord-symbol fragment
}

// table is indexed by Interval. Entry 0 (None) is intentionally blank.
var table = [count]info{
	Unison:    {"Unison", 0, ""},
	Min2:      {"Min2", 1, "b2"},
	Maj2:      {"Maj2", 2, "2"},
	Min3:      {"Min3", 3, "#2"}, // only ever written as an addition
	Maj3:      {"Maj3", 4, ""},
	Perf4:     {"Perf4", 5, "4"},
	Aug4:      {"Aug4", 6, "#4"},
	Dim5:      {"Dim5", 6, "b5"},
	Perf5:     {"Perf5", 7, ""},
	Aug5:      {"Aug5", 8, "b6"},
	Min6:      {"Min6", 8, "b6"},
	Maj6:      {"Maj6", 9, "6"},
	Dim7:      {"Dim7", 9, "bb7"},
	Min7:      {"Min7", 10, "b7"},
	Maj7:      {"Maj7", 11, "7"},
	Octave:    {"Octave", 12, ""},
	Min9:      {"Min9", 13, "b9"},
	Maj9:      {"Maj9", 14, "9"},
	Min10:     {"Min10", 15, ""},
	Maj10:     {"Maj10", 16, ""},
	Perf11:    {"Perf11", 17, "11"},
	Aug11:     {"Aug11", 18, "#11"},
	Dim12:     {"Dim12", 18, "#11"},
	Perf12:    {"Perf12", 19, ""},
	Min13:     {"Min13", 20, "b13"},
	Maj13:     {"Maj13", 21, "13"},
	Min14:     {"Min14", 22, ""},
	Maj14:     {"Maj14", 23, ""},
	DoubleOct: {"DoubleOct", 24, ""},
}

// byName is the reverse of table, built once at init.
var byName = func() map[string]Interval {
	m := make(map[string]Interval, count-1)
	for iv := Unison; iv < count; iv++ {
		m[table[iv].name] = iv
	}
	return m
}()

// IsValid reports whether iv is a member of the vocabulary.
func (iv Interval) IsValid() bool {
	return iv > None && iv < count
}

// String returns the token name, e.g. "Min3".
func (iv Interval) String() string {
	if iv == None {
		return "None"
	}
	if !iv.IsValid() {
		return "Interval(" + strconv.Itoa(int(iv)) + ")"
	}
	return table[iv].name
}

// Semitones returns the distance from the root in semitones,
// or -1 if iv is not a vocabulary member.
func (iv Interval) Semitones() int {
	if !iv.IsValid() {
		return -1
	}
	return table[iv].semitones
}

// All returns every vocabulary member in ascending declaration order.
func All() []Interval {
	out := make([]Interval, 0, count-1)
	for iv := Unison; iv < count; iv++ {
		out = append(out, iv)
	}
	return out
}
