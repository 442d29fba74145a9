package interval

import (
	"testing"

	"github.com/jsphweid/livechord/pitch"
	"github.com/stretchr/testify/assert"
)

func notes(names ...string) []pitch.Pitch {
	var res []pitch.Pitch
	for _, n := range names {
		res = append(res, pitch.MustParse(n))
	}
	return res
}

func TestFromSemitones(t *testing.T) {
	assert := assert.New(t)
	expected := []string{"P1", "m2", "M2", "m3", "M3", "P4", "TT", "P5", "m6", "M6", "m7", "M7", "P8", "m9", "M9"}
	for d, label := range expected {
		i := FromSemitones(d)
		assert.Equal(label, i.String())
		assert.Equal(d, i.Semitones())
		assert.Equal(i, Parse(label))
	}

	assert.Equal(Unknown, FromSemitones(15))
	assert.Equal(Unknown, FromSemitones(24))
	assert.Equal(Unknown, FromSemitones(-1))
	assert.Equal(Unknown, Parse("M10"))
	assert.Equal("Unknown", Unknown.String())
}

func TestBetween(t *testing.T) {
	cases := []struct {
		a, b     string
		expected Interval
	}{
		{"C4", "C4", Unison},
		{"C4", "E4", MajorThird},
		{"C4", "G4", PerfectFifth},
		{"C4", "C5", Octave},
		{"C4", "C#5", MinorNinth},
		{"C4", "D5", MajorNinth},
		{"C4", "D#5", Unknown},
		{"C1", "C8", Unknown},
	}

	for _, c := range cases {
		t.Run(c.a+"-"+c.b, func(t *testing.T) {
			assert := assert.New(t)
			a, b := pitch.MustParse(c.a), pitch.MustParse(c.b)
			assert.Equal(c.expected, Between(a, b))
			assert.Equal(Between(a, b), Between(b, a))
		})
	}
}

func TestBetweenIsSymmetricForAllPairs(t *testing.T) {
	for i := 0; i <= pitch.MaxIndex; i += 5 {
		for j := 0; j <= pitch.MaxIndex; j += 3 {
			a, b := pitch.FromIndex(i), pitch.FromIndex(j)
			if Between(a, b) != Between(b, a) {
				t.Errorf("%v-%v not symmetric", a, b)
			}
		}
	}
}

func TestSignatureOfIsRelativeToLowestNote(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Signature{}, SignatureOf(nil))
	assert.Equal(Signature{}, SignatureOf(notes("C4")))
	assert.Equal(Signature{MajorThird, PerfectFifth}, SignatureOf(notes("C4", "E4", "G4")))
	assert.Equal(Signature{MajorThird, PerfectFifth, MinorSeventh}, SignatureOf(notes("C4", "E4", "G4", "A#4")))
	// adjacent intervals would be m3 m3, root-relative is m3 TT
	assert.Equal(Signature{MinorThird, Tritone}, SignatureOf(notes("C4", "D#4", "F#4")))
	assert.Equal(Signature{MajorThird, Unknown}, SignatureOf(notes("C4", "E4", "G5")))
}

func TestSignatureHelpers(t *testing.T) {
	assert := assert.New(t)
	sig := Signature{MajorThird, Unknown, PerfectFifth}

	assert.Equal([]string{"M3", "Unknown", "P5"}, sig.Labels())
	assert.Equal("M3 + Unknown + P5", sig.String())
	assert.Equal(Signature{MajorThird, PerfectFifth}, sig.Resolved())
	assert.Equal(Signature{}, Signature{Unknown}.Resolved())
	assert.True(sig.Resolved().Equal(Signature{MajorThird, PerfectFifth}))
	assert.False(sig.Equal(Signature{MajorThird, PerfectFifth}))
}
