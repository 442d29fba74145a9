package midi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

type event struct {
	on       bool
	key, vel int
}

type recorder struct {
	events []event
}

func (r *recorder) OnNoteOn(key, velocity int) {
	r.events = append(r.events, event{on: true, key: key, vel: velocity})
}

func (r *recorder) OnNoteOff(key int) {
	r.events = append(r.events, event{key: key})
}

func TestDispatch(t *testing.T) {
	assert := assert.New(t)
	r := &recorder{}

	assert.True(Dispatch(gomidi.NoteOn(0, 60, 100), r))
	assert.True(Dispatch(gomidi.NoteOff(3, 60), r))
	assert.False(Dispatch(gomidi.ControlChange(0, 64, 127), r))
	assert.False(Dispatch(gomidi.ProgramChange(0, 1), r))

	assert.Equal([]event{{on: true, key: 60, vel: 100}, {key: 60}}, r.events)
}

func TestDispatchZeroVelocityNoteOn(t *testing.T) {
	r := &recorder{}
	assert.True(t, Dispatch(gomidi.NoteOn(0, 64, 0), r))
	assert.Len(t, r.events, 1)
	assert.Equal(t, 64, r.events[0].key)
	assert.Equal(t, 0, r.events[0].vel)
}

func TestIsExcluded(t *testing.T) {
	assert := assert.New(t)
	assert.True(isExcluded("Midi Through:Midi Through Port-0 14:0"))
	assert.False(isExcluded("Launchkey MK3 49:Launchkey MK3 49 MIDI 1 20:0"))
}

func TestReadMidiFile(t *testing.T) {
	s := smf.New()
	var tr smf.Track
	tr.Add(0, gomidi.NoteOn(0, 60, 100))
	tr.Add(480, gomidi.NoteOff(0, 60))
	tr.Close(0)
	assert.NoError(t, s.Add(tr))

	path := filepath.Join(t.TempDir(), "one-note.mid")
	f, err := os.Create(path)
	assert.NoError(t, err)
	_, err = s.WriteTo(f)
	assert.NoError(t, err)
	assert.NoError(t, f.Close())

	read, err := ReadMidiFile(path)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(read.Tracks, 1)
}

func TestReadMidiFileErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := ReadMidiFile(filepath.Join(t.TempDir(), "missing.mid"))
	assert.Error(err)

	path := filepath.Join(t.TempDir(), "garbage.mid")
	assert.NoError(os.WriteFile(path, []byte("not a midi file"), 0644))
	_, err = ReadMidiFile(path)
	assert.Error(err)
}
