package pitch

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestIndexRoundTrip(t *testing.T) {
	assert := assert.New(t)
	for i := 0; i <= MaxIndex; i++ {
		p := FromIndex(i)
		assert.Equal(i, p.Index())
		assert.Equal(p, FromIndex(p.Index()))

		parsed, err := Parse(p.String())
		assert.NoError(err)
		assert.Equal(p, parsed)
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		name   string
		index  int
		octave int
		class  string
	}{
		{"C1", 0, 1, "C"},
		{"C#1", 1, 1, "C#"},
		{"B1", 11, 1, "B"},
		{"C4", 36, 4, "C"},
		{"A#4", 45, 4, "A#"},
		{"C8", 84, 8, "C"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert := assert.New(t)
			p, err := Parse(c.name)
			assert.NoError(err)
			assert.Equal(c.index, p.Index())
			assert.Equal(c.octave, p.Octave())
			assert.Equal(c.class, p.Class())
			assert.Equal(c.name, p.String())
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"", ErrInvalidFormat},
		{"C", ErrInvalidFormat},
		{"C#", ErrInvalidFormat},
		{"C4x", ErrInvalidFormat},
		{"H4", ErrUnknownPitchClass},
		{"Db4", ErrUnknownPitchClass},
		{"c4", ErrUnknownPitchClass},
		{"4", ErrUnknownPitchClass},
		{"C0", ErrOctaveOutOfRange},
		{"B0", ErrOctaveOutOfRange},
		{"C#8", ErrOctaveOutOfRange},
		{"C9", ErrOctaveOutOfRange},
		{"C99999999999999999999", ErrOctaveOutOfRange},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse(c.name)
			assert.True(t, errors.Is(err, c.err), "got %v", err)
		})
	}
}

func TestFromIndexPanicsOutOfRange(t *testing.T) {
	assert := assert.New(t)
	assert.Panics(func() { FromIndex(-1) })
	assert.Panics(func() { FromIndex(NumPitches) })

	_, err := FromIndexChecked(NumPitches)
	assert.True(errors.Is(err, ErrIndexOutOfRange))
}

func TestFromMIDI(t *testing.T) {
	assert := assert.New(t)

	p, err := FromMIDI(60)
	assert.NoError(err)
	assert.Equal("C4", p.String())
	assert.Equal(60, p.MIDI())

	p, err = FromMIDI(24)
	assert.NoError(err)
	assert.Equal("C1", p.String())

	p, err = FromMIDI(108)
	assert.NoError(err)
	assert.Equal("C8", p.String())

	for _, key := range []int{-1, 0, 23, 109, 127, 128} {
		_, err := FromMIDI(key)
		assert.True(errors.Is(err, ErrIndexOutOfRange), "key %d", key)
	}
}

func TestZeroValueIsInvalid(t *testing.T) {
	assert := assert.New(t)
	assert.False(Pitch{}.IsValid())
	assert.Equal("?", Pitch{}.String())
	assert.True(MustParse("E4").IsValid())
}
