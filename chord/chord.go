package chord

import (
	"sort"

	"github.com/jsphweid/livechord/interval"
	"github.com/jsphweid/livechord/pitch"
)

const (
	Unknown          = "Unknown"
	UnclassifiedName = "Unclassified"
)

// Result is the classification of a set of held notes. Fewer than two notes
// leave it Unclassified; otherwise Root is the lowest note and Quality is
// either a shape name or Unknown.
type Result struct {
	Root       pitch.Pitch
	Quality    string
	Signature  interval.Signature
	Classified bool
}

var Unclassified = Result{Signature: interval.Signature{}}

func (r Result) String() string {
	if !r.Classified {
		return UnclassifiedName
	}
	return r.Root.Class() + " " + r.Quality
}

func (r Result) IsKnown() bool {
	return r.Classified && r.Quality != Unknown
}

type Analyzer struct {
	shapes []Shape
}

// NewAnalyzer panics if two shapes share the same interval sequence.
func NewAnalyzer(shapes []Shape) *Analyzer {
	if err := validateShapes(shapes); err != nil {
		panic("chord: invalid shape table: " + err.Error())
	}
	return &Analyzer{shapes: append([]Shape(nil), shapes...)}
}

var DefaultAnalyzer = NewAnalyzer(DefaultShapes)

func Classify(notes []pitch.Pitch) Result {
	return DefaultAnalyzer.Classify(notes)
}

func (a *Analyzer) Shapes() []Shape {
	return append([]Shape(nil), a.shapes...)
}

// Classify does not modify notes. Unknown intervals (spans wider than a
// ninth) are dropped before the lookup, so a chord with one of them can still
// match a shorter shape.
func (a *Analyzer) Classify(notes []pitch.Pitch) Result {
	if len(notes) < 2 {
		return Unclassified
	}

	sorted := append([]pitch.Pitch(nil), notes...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Index() < sorted[j].Index()
	})

	sig := interval.SignatureOf(sorted)
	return Result{
		Root:       sorted[0],
		Quality:    a.lookup(sig.Resolved()),
		Signature:  sig,
		Classified: true,
	}
}

func (a *Analyzer) lookup(sig interval.Signature) string {
	for _, s := range a.shapes {
		if s.Intervals.Equal(sig) {
			return s.Quality
		}
	}
	return Unknown
}
