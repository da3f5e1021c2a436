// SPDX-License-Identifier: MIT

package chord

import (
	"slices"

	"github.com/katalvlaran/lvchord/interval"
	"github.com/katalvlaran/lvchord/quality"
)

// Chord accumulates classification results for one chord.
//
// The zero value is not used; construct with New. A Chord is mutated in
// place by HandleThird, HandleFifth and HandleSixth (or Classify) and then
// read through its accessors or Snapshot.
type Chord struct {
	third   quality.Third
	fifth   quality.Fifth
	seventh quality.Seventh

	// Reserved; no handler sets them yet.
	ninth    bool
	eleventh bool

	triad quality.Triad

	sus  []interval.Interval // held while no third is known
	add  []interval.Interval // append-only
	lead interval.Interval   // interval.None until set
}

// State is a read-only copy of a Chord, the output handed to renderers.
// Empty sequences are nil and unset slots hold their zero value.
type State struct {
	Third    quality.Third       `yaml:"third,omitempty"`
	Fifth    quality.Fifth       `yaml:"fifth,omitempty"`
	Seventh  quality.Seventh     `yaml:"seventh,omitempty"`
	Ninth    bool                `yaml:"ninth,omitempty"`
	Eleventh bool                `yaml:"eleventh,omitempty"`
	Triad    quality.Triad       `yaml:"triad,omitempty"`
	Sus      []interval.Interval `yaml:"sus,omitempty"`
	Add      []interval.Interval `yaml:"add,omitempty"`
	Lead     interval.Interval   `yaml:"lead,omitempty"`
}

// New returns an empty Chord: every quality unset, no sus, no add, no lead.
func New() *Chord {
	return &Chord{}
}

// Third returns the recorded third quality.
func (c *Chord) Third() quality.Third { return c.third }

// Fifth returns the recorded fifth quality.
func (c *Chord) Fifth() quality.Fifth { return c.fifth }

// Seventh returns the recorded seventh quality.
func (c *Chord) Seventh() quality.Seventh { return c.seventh }

// Triad returns the triad derived from the third and fifth.
func (c *Chord) Triad() quality.Triad { return c.triad }

// Ninth reports the reserved ninth flag.
func (c *Chord) Ninth() bool { return c.ninth }

// Eleventh reports the reserved eleventh flag.
func (c *Chord) Eleventh() bool { return c.eleventh }

// Lead returns the implied leading-tone interval and whether one is set.
func (c *Chord) Lead() (interval.Interval, bool) {
	return c.lead, c.lead != interval.None
}

// Sus returns a copy of the pending suspensions in arrival order.
func (c *Chord) Sus() []interval.Interval { return slices.Clone(c.sus) }

// Add returns a copy of the added tones in arrival order.
func (c *Chord) Add() []interval.Interval { return slices.Clone(c.add) }

// Snapshot returns a copy of every field. Later mutation of c does not
// affect the returned State.
func (c *Chord) Snapshot() State {
	return State{
		Third:    c.third,
		Fifth:    c.fifth,
		Seventh:  c.seventh,
		Ninth:    c.ninth,
		Eleventh: c.eleventh,
		Triad:    c.triad,
		Sus:      slices.Clone(c.sus),
		Add:      slices.Clone(c.add),
		Lead:     c.lead,
	}
}

// resolveSus moves every pending suspension into add, keeping order.
// Called whenever a third is established.
func (c *Chord) resolveSus() {
	if len(c.sus) == 0 {
		return
	}
	c.add = append(c.add, c.sus...)
	c.sus = nil
}
