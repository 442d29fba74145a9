package pitch

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/pkg/errors"
)

const (
	MinOctave = 1
	MaxOctave = 8

	// C1 through C8
	NumPitches = 85
	MaxIndex   = NumPitches - 1

	// MIDI key of C1, so that key 60 is C4
	midiOffset = 24
)

var classNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var (
	ErrInvalidFormat     = errors.New("invalid pitch name")
	ErrUnknownPitchClass = errors.New("unknown pitch class")
	ErrOctaveOutOfRange  = errors.New("octave out of range")
	ErrIndexOutOfRange   = errors.New("pitch index out of range")
)

// Pitch is a pitch class plus an octave between C1 and C8. The zero value is
// not a valid pitch; use Parse, FromIndex or FromMIDI.
type Pitch struct {
	class  uint8
	octave uint8
}

func Parse(name string) (Pitch, error) {
	pos := 0
	for pos < len(name) && !unicode.IsDigit(rune(name[pos])) {
		pos++
	}
	if pos == len(name) {
		return Pitch{}, errors.Wrapf(ErrInvalidFormat, "%q has no octave", name)
	}

	prefix, digits := name[:pos], name[pos:]
	for _, r := range digits {
		if !unicode.IsDigit(r) {
			return Pitch{}, errors.Wrapf(ErrInvalidFormat, "%q has a malformed octave", name)
		}
	}

	class := -1
	for i, c := range classNames {
		if c == prefix {
			class = i
			break
		}
	}
	if class == -1 {
		return Pitch{}, errors.Wrapf(ErrUnknownPitchClass, "%q", prefix)
	}

	octave, err := strconv.Atoi(digits)
	if err != nil {
		return Pitch{}, errors.Wrapf(ErrOctaveOutOfRange, "%q", name)
	}
	index := (octave-MinOctave)*12 + class
	if index < 0 || index > MaxIndex {
		return Pitch{}, errors.Wrapf(ErrOctaveOutOfRange, "%q is outside C1-C8", name)
	}
	return FromIndex(index), nil
}

// MustParse is like Parse but panics on malformed names.
func MustParse(name string) Pitch {
	p, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return p
}

// FromIndex panics when index is outside [0, MaxIndex]. Callers that cannot
// validate up front should use FromIndexChecked.
func FromIndex(index int) Pitch {
	if index < 0 || index > MaxIndex {
		panic(fmt.Sprintf("pitch: index %d out of range", index))
	}
	return Pitch{class: uint8(index % 12), octave: uint8(index/12 + MinOctave)}
}

func FromIndexChecked(index int) (Pitch, error) {
	if index < 0 || index > MaxIndex {
		return Pitch{}, errors.Wrapf(ErrIndexOutOfRange, "index %d", index)
	}
	return FromIndex(index), nil
}

// FromMIDI maps a MIDI key number to a pitch. Only keys 24 (C1) through 108
// (C8) are representable.
func FromMIDI(key int) (Pitch, error) {
	p, err := FromIndexChecked(key - midiOffset)
	if err != nil {
		return Pitch{}, errors.Wrapf(ErrIndexOutOfRange, "midi key %d", key)
	}
	return p, nil
}

func (p Pitch) Index() int {
	return (int(p.octave)-MinOctave)*12 + int(p.class)
}

func (p Pitch) MIDI() int {
	return p.Index() + midiOffset
}

func (p Pitch) Class() string {
	return classNames[p.class]
}

func (p Pitch) Octave() int {
	return int(p.octave)
}

func (p Pitch) IsValid() bool {
	return p.octave >= MinOctave && p.Index() <= MaxIndex
}

func (p Pitch) String() string {
	if !p.IsValid() {
		return "?"
	}
	return p.Class() + strconv.Itoa(p.Octave())
}
