package chord

import (
	"strings"

	"github.com/jsphweid/livechord/interval"
	"github.com/pkg/errors"
)

type Shape struct {
	Intervals interval.Signature
	Quality   string
}

// lookup order matters: the first matching shape wins
var DefaultShapes = []Shape{
	// triads
	{interval.Signature{interval.MajorThird, interval.PerfectFifth}, "Major"},
	{interval.Signature{interval.MinorThird, interval.PerfectFifth}, "Minor"},
	{interval.Signature{interval.MajorThird, interval.Tritone}, "Augmented"},
	{interval.Signature{interval.MinorThird, interval.Tritone}, "Diminished"},

	// sevenths
	{interval.Signature{interval.MajorThird, interval.PerfectFifth, interval.MinorSeventh}, "Dominant 7th"},
	{interval.Signature{interval.MajorThird, interval.PerfectFifth, interval.MajorSeventh}, "Major 7th"},
	{interval.Signature{interval.MinorThird, interval.PerfectFifth, interval.MinorSeventh}, "Minor 7th"},
	{interval.Signature{interval.MinorThird, interval.PerfectFifth, interval.MajorSeventh}, "Minor Major 7th"},
	{interval.Signature{interval.MajorThird, interval.Tritone, interval.MinorSeventh}, "Augmented 7th"},
	{interval.Signature{interval.MinorThird, interval.Tritone, interval.MinorSeventh}, "Half-Diminished 7th"},
	{interval.Signature{interval.MinorThird, interval.Tritone, interval.MajorSeventh}, "Diminished 7th"},

	// ninths
	{interval.Signature{interval.MajorThird, interval.PerfectFifth, interval.MinorSeventh, interval.MajorNinth}, "Dominant 9th"},
	{interval.Signature{interval.MajorThird, interval.PerfectFifth, interval.MajorSeventh, interval.MajorNinth}, "Major 9th"},
	{interval.Signature{interval.MinorThird, interval.PerfectFifth, interval.MinorSeventh, interval.MajorNinth}, "Minor 9th"},
	{interval.Signature{interval.MinorThird, interval.PerfectFifth, interval.MajorSeventh, interval.MajorNinth}, "Minor Major 9th"},
	{interval.Signature{interval.MajorThird, interval.PerfectFifth, interval.MinorSeventh, interval.MinorNinth}, "Dominant 7b9"},
	{interval.Signature{interval.MajorThird, interval.PerfectFifth, interval.MajorSeventh, interval.MinorNinth}, "Dominant 7#9"},
	{interval.Signature{interval.MajorThird, interval.Tritone, interval.MinorSeventh, interval.MajorNinth}, "Augmented 9th"},
	{interval.Signature{interval.MinorThird, interval.Tritone, interval.MinorSeventh, interval.MajorNinth}, "Half-Diminished 9th"},
	{interval.Signature{interval.MinorThird, interval.Tritone, interval.MajorSeventh, interval.MajorNinth}, "Diminished 9th"},
}

func CreateShapeKey(sig interval.Signature) string {
	return strings.Join(sig.Labels(), "-")
}

func validateShapes(shapes []Shape) error {
	seen := make(map[string]string)
	for _, s := range shapes {
		if len(s.Intervals) == 0 {
			return errors.Errorf("shape %q has no intervals", s.Quality)
		}
		for _, i := range s.Intervals {
			if !i.IsKnown() {
				return errors.Errorf("shape %q contains an unknown interval", s.Quality)
			}
		}
		key := CreateShapeKey(s.Intervals)
		if other, ok := seen[key]; ok {
			return errors.Errorf("shapes %q and %q share intervals %v", other, s.Quality, key)
		}
		seen[key] = s.Quality
	}
	return nil
}
