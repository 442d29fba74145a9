package session

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/bep/debounce"
	"github.com/google/uuid"
	"github.com/jsphweid/livechord/chord"
	"github.com/jsphweid/livechord/interval"
	"github.com/jsphweid/livechord/notes"
	"github.com/jsphweid/livechord/pitch"
	"github.com/sirupsen/logrus"
)

const maxDataByte = 127

// State is everything derived from one snapshot of the held notes.
type State struct {
	Notes   []pitch.Pitch
	Chord   chord.Result
	Version uint64
}

// Session owns the held notes of one input connection. OnNoteOn and OnNoteOff
// may be called from the driver goroutine while the query methods are used
// from anywhere else.
type Session struct {
	ID uuid.UUID

	notes    *notes.Set
	analyzer *chord.Analyzer
	log      *logrus.Entry
	onChange atomic.Value // func()
}

func New(analyzer *chord.Analyzer) *Session {
	if analyzer == nil {
		analyzer = chord.DefaultAnalyzer
	}
	id := uuid.New()
	s := &Session{
		ID:       id,
		notes:    notes.NewSet(),
		analyzer: analyzer,
		log:      logrus.WithField("session", id.String()),
	}
	s.onChange.Store(func() {})
	return s
}

// OnNoteOn treats velocity 0 as a release. Keys outside C1-C8 are dropped.
func (s *Session) OnNoteOn(key, velocity int) {
	if velocity < 0 || velocity > maxDataByte {
		s.log.Debugf("dropping note on %d with velocity %d", key, velocity)
		return
	}
	if velocity == 0 {
		s.OnNoteOff(key)
		return
	}

	p, ok := s.decode(key)
	if !ok {
		return
	}
	if !s.notes.Add(p) {
		s.log.Warnf("note double pressed: %s", p)
		return
	}
	s.log.Debugf("note on: %s", p)
	s.changed()
}

func (s *Session) OnNoteOff(key int) {
	p, ok := s.decode(key)
	if !ok {
		return
	}
	if !s.notes.Remove(p) {
		s.log.Debugf("note off for unpressed note: %s", p)
		return
	}
	s.log.Debugf("note off: %s", p)
	s.changed()
}

func (s *Session) decode(key int) (pitch.Pitch, bool) {
	if key < 0 || key > maxDataByte {
		s.log.Debugf("dropping invalid key %d", key)
		return pitch.Pitch{}, false
	}
	p, err := pitch.FromMIDI(key)
	if err != nil {
		s.log.Debugf("dropping key: %v", err)
		return pitch.Pitch{}, false
	}
	return p, true
}

func (s *Session) changed() {
	s.onChange.Load().(func())()
}

func (s *Session) State() State {
	held, version := s.notes.SnapshotVersion()
	return State{
		Notes:   held,
		Chord:   s.analyzer.Classify(held),
		Version: version,
	}
}

func (s *Session) CurrentChord() chord.Result {
	return s.analyzer.Classify(s.notes.Snapshot())
}

func (s *Session) CurrentSignature() interval.Signature {
	return interval.SignatureOf(s.notes.Snapshot())
}

func (s *Session) Notes() []pitch.Pitch {
	return s.notes.Snapshot()
}

func (s *Session) Analyzer() *chord.Analyzer {
	return s.analyzer
}

// ReleaseAll releases every held note.
func (s *Session) ReleaseAll() {
	s.notes.Clear()
	s.changed()
}

// Close ends the session. The held notes are cleared and it can be reused.
func (s *Session) Close() {
	s.ReleaseAll()
	s.log.Info("session closed")
}

// Poll reports the state every interval until ctx is done. changed tells
// whether any note event happened since the previous report.
func (s *Session) Poll(ctx context.Context, every time.Duration, report func(st State, changed bool)) error {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	var last uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			st := s.State()
			report(st, st.Version != last)
			last = st.Version
		}
	}
}

// Watch reports the state once a burst of note events has been quiet for
// wait. The returned func stops watching.
func (s *Session) Watch(wait time.Duration, report func(State)) (stop func()) {
	debounced := debounce.New(wait)
	var stopped atomic.Bool
	s.onChange.Store(func() {
		debounced(func() {
			if !stopped.Load() {
				report(s.State())
			}
		})
	})
	return func() {
		stopped.Store(true)
		s.onChange.Store(func() {})
	}
}
