package model

import (
	"testing"

	"github.com/jsphweid/livechord/chord"
	"github.com/jsphweid/livechord/pitch"
	"github.com/stretchr/testify/assert"
)

func TestNewChordResponse(t *testing.T) {
	notes := []pitch.Pitch{pitch.MustParse("C4"), pitch.MustParse("E4"), pitch.MustParse("G4")}
	resp := NewChordResponse(notes, chord.Classify(notes))

	assert.Equal(t, ChordResponse{
		Chord:      "C Major",
		Root:       "C4",
		Quality:    "Major",
		Classified: true,
		Intervals:  []string{"M3", "P5"},
		Notes:      []string{"C4", "E4", "G4"},
	}, resp)
}

func TestNewChordResponseUnclassified(t *testing.T) {
	resp := NewChordResponse([]pitch.Pitch{}, chord.Unclassified)

	assert.Equal(t, ChordResponse{
		Chord:     "Unclassified",
		Intervals: []string{},
		Notes:     []string{},
	}, resp)
}

func TestNewShapeResponses(t *testing.T) {
	resp := NewShapeResponses(chord.DefaultShapes[:2])
	assert.Equal(t, []ShapeResponse{
		{Quality: "Major", Intervals: []string{"M3", "P5"}},
		{Quality: "Minor", Intervals: []string{"m3", "P5"}},
	}, resp)
}
