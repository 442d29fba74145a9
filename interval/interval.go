package interval

import (
	"strings"

	"github.com/jsphweid/livechord/pitch"
	"github.com/jsphweid/livechord/util"
)

// Interval is a named distance of 0 to 14 semitones.
type Interval int

const (
	Unknown Interval = -1
)

const (
	Unison Interval = iota
	MinorSecond
	MajorSecond
	MinorThird
	MajorThird
	PerfectFourth
	Tritone
	PerfectFifth
	MinorSixth
	MajorSixth
	MinorSeventh
	MajorSeventh
	Octave
	MinorNinth
	MajorNinth
)

var labels = [...]string{"P1", "m2", "M2", "m3", "M3", "P4", "TT", "P5", "m6", "M6", "m7", "M7", "P8", "m9", "M9"}

// FromSemitones maps 0-14 directly onto the table. Wider spans are not folded
// back into the octave; they are Unknown.
func FromSemitones(distance int) Interval {
	if distance < 0 || distance >= len(labels) {
		return Unknown
	}
	return Interval(distance)
}

func Parse(label string) Interval {
	for i, l := range labels {
		if l == label {
			return Interval(i)
		}
	}
	return Unknown
}

func (i Interval) Semitones() int {
	return int(i)
}

func (i Interval) IsKnown() bool {
	return i >= Unison && int(i) < len(labels)
}

func (i Interval) String() string {
	if !i.IsKnown() {
		return "Unknown"
	}
	return labels[i]
}

func Between(a, b pitch.Pitch) Interval {
	return FromSemitones(util.Abs(b.Index() - a.Index()))
}

// Signature is the ordered list of intervals from the lowest held note to
// every other held note.
type Signature []Interval

// SignatureOf expects notes sorted ascending by index. Each interval is
// measured from notes[0], not from the neighbouring note.
func SignatureOf(notes []pitch.Pitch) Signature {
	if len(notes) < 2 {
		return Signature{}
	}
	root := notes[0]
	sig := make(Signature, 0, len(notes)-1)
	for _, n := range notes[1:] {
		sig = append(sig, Between(root, n))
	}
	return sig
}

// Resolved drops Unknown entries.
func (s Signature) Resolved() Signature {
	res := util.Filter(s, Interval.IsKnown)
	if res == nil {
		return Signature{}
	}
	return res
}

func (s Signature) Equal(other Signature) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

func (s Signature) Labels() []string {
	return util.Map(s, Interval.String)
}

func (s Signature) String() string {
	return strings.Join(s.Labels(), " + ")
}
