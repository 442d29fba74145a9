package model

import (
	"github.com/jsphweid/livechord/chord"
	"github.com/jsphweid/livechord/pitch"
	"github.com/jsphweid/livechord/util"
)

func NewChordResponse(notes []pitch.Pitch, res chord.Result) ChordResponse {
	resp := ChordResponse{
		Chord:      res.String(),
		Classified: res.Classified,
		Intervals:  res.Signature.Labels(),
		Notes:      util.Map(notes, pitch.Pitch.String),
	}
	if res.Classified {
		resp.Root = res.Root.String()
		resp.Quality = res.Quality
	}
	return resp
}

func NewShapeResponses(shapes []chord.Shape) []ShapeResponse {
	return util.Map(shapes, func(s chord.Shape) ShapeResponse {
		return ShapeResponse{Quality: s.Quality, Intervals: s.Intervals.Labels()}
	})
}
