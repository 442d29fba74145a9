package chord

import (
	"fmt"
	"sort"
	"time"

	"github.com/jsphweid/livechord/notes"
	"github.com/jsphweid/livechord/pitch"
	"github.com/sirupsen/logrus"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Change is a point in a file where the classification changes.
type Change struct {
	Offset time.Duration
	Result Result
}

type reducedEvent struct {
	offset    int64 // microseconds
	isNoteOff bool
	key       uint8
}

func Replay(s *smf.SMF) ([]Change, error) {
	return DefaultAnalyzer.Replay(s)
}

// Replay merges the note events of every track and plays them through a note
// set, classifying after each distinct timestamp.
func (a *Analyzer) Replay(s *smf.SMF) (changes []Change, err error) {
	// smf can panic on malformed tracks
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("replay failed: %v", r)
		}
	}()

	var events []reducedEvent
	for _, track := range s.Tracks {
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			msg := midi.Message(event.Message)
			var channel, key, velocity uint8
			switch {
			case msg.GetNoteOn(&channel, &key, &velocity):
				events = append(events, reducedEvent{
					offset:    s.TimeAt(absTicks),
					isNoteOff: velocity == 0,
					key:       key,
				})
			case msg.GetNoteOff(&channel, &key, &velocity):
				events = append(events, reducedEvent{
					offset:    s.TimeAt(absTicks),
					isNoteOff: true,
					key:       key,
				})
			}
		}
	}

	// prioritize smaller offset values then note off
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].offset != events[j].offset {
			return events[i].offset < events[j].offset
		}
		return events[i].isNoteOff && !events[j].isNoteOff
	})

	held := notes.NewSet()
	last := Unclassified
	for i, evt := range events {
		if p, perr := pitch.FromMIDI(int(evt.key)); perr != nil {
			logrus.Debugf("replay: dropping key %d: %v", evt.key, perr)
		} else if evt.isNoteOff {
			held.Remove(p)
		} else {
			held.Add(p)
		}

		if i+1 < len(events) && events[i+1].offset == evt.offset {
			continue
		}
		res := a.Classify(held.Snapshot())
		if res.String() == last.String() {
			continue
		}
		changes = append(changes, Change{
			Offset: time.Duration(evt.offset) * time.Microsecond,
			Result: res,
		})
		last = res
	}
	return changes, nil
}
