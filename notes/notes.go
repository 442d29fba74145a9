package notes

import (
	"sort"
	"sync"

	"github.com/jsphweid/livechord/pitch"
	"golang.org/x/exp/maps"
)

// Set holds the pitches currently pressed. It is safe for one goroutine to
// mutate it while others take snapshots; every lock is held only for a map
// write or a copy.
type Set struct {
	mu      sync.RWMutex
	held    map[pitch.Pitch]struct{}
	version uint64
}

func NewSet() *Set {
	return &Set{held: make(map[pitch.Pitch]struct{})}
}

// Add reports whether p was newly pressed.
func (s *Set) Add(p pitch.Pitch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.held[p]; ok {
		return false
	}
	s.held[p] = struct{}{}
	s.version++
	return true
}

// Remove reports whether p was held.
func (s *Set) Remove(p pitch.Pitch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.held[p]; !ok {
		return false
	}
	delete(s.held, p)
	s.version++
	return true
}

func (s *Set) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.held) == 0 {
		return
	}
	s.held = make(map[pitch.Pitch]struct{})
	s.version++
}

func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.held)
}

// Version increases on every change to the set.
func (s *Set) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func (s *Set) Snapshot() []pitch.Pitch {
	notes, _ := s.SnapshotVersion()
	return notes
}

// SnapshotVersion returns the held pitches in ascending order together with
// the version they were read at.
func (s *Set) SnapshotVersion() ([]pitch.Pitch, uint64) {
	s.mu.RLock()
	notes := maps.Keys(s.held)
	version := s.version
	s.mu.RUnlock()

	sort.Slice(notes, func(i, j int) bool {
		return notes[i].Index() < notes[j].Index()
	})
	return notes, version
}
