package midi

import (
	"strconv"

	"github.com/jsphweid/livechord/util"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// Handler receives decoded note events. Keys and velocities are raw MIDI
// values in [0,127].
type Handler interface {
	OnNoteOn(key, velocity int)
	OnNoteOff(key int)
}

// ports that are never useful as a keyboard
var excludedPatterns = []string{"Midi Through", "Through Port", "Dummy"}

var ErrNoInputs = errors.New("no MIDI inputs available")

func Ports() []string {
	var names []string
	for _, in := range gomidi.GetInPorts() {
		names = append(names, in.String())
	}
	return names
}

// FindPort selects an input by 1-based number as printed by Ports, or by a
// case insensitive name fragment. An empty selector picks the first input
// that is not a virtual through port.
func FindPort(selector string) (drivers.In, error) {
	ins := gomidi.GetInPorts()
	if len(ins) == 0 {
		return nil, ErrNoInputs
	}

	if selector == "" {
		for _, in := range ins {
			if !isExcluded(in.String()) {
				return in, nil
			}
		}
		return nil, ErrNoInputs
	}

	if num, err := strconv.Atoi(selector); err == nil {
		if num < 1 || num > len(ins) {
			return nil, errors.Errorf("no MIDI input number %d (have %d)", num, len(ins))
		}
		return ins[num-1], nil
	}

	for _, in := range ins {
		if util.ContainsFold(in.String(), selector) {
			return in, nil
		}
	}
	return nil, errors.Errorf("no MIDI input matching %q", selector)
}

func isExcluded(name string) bool {
	for _, pat := range excludedPatterns {
		if util.ContainsFold(name, pat) {
			return true
		}
	}
	return false
}

// Dispatch decodes a single message and reports whether it was a note event.
// A note on with velocity 0 is passed through as is; the handler decides.
func Dispatch(msg gomidi.Message, h Handler) bool {
	var ch, key, vel uint8
	switch {
	case msg.GetNoteOn(&ch, &key, &vel):
		h.OnNoteOn(int(key), int(vel))
	case msg.GetNoteOff(&ch, &key, &vel):
		h.OnNoteOff(int(key))
	default:
		return false
	}
	return true
}

// Listen opens in and forwards its note events to h until stop is called.
// onError is called from the driver goroutine when the device goes away.
func Listen(in drivers.In, h Handler, onError func(error)) (stop func(), err error) {
	if err := in.Open(); err != nil {
		return nil, errors.Wrapf(err, "open %q", in.String())
	}

	name := in.String()
	stopFn, err := gomidi.ListenTo(in, func(msg gomidi.Message, _ int32) {
		if !Dispatch(msg, h) {
			logrus.Debugf("midi: unhandled message %s", msg.String())
		}
	}, gomidi.HandleError(func(listenErr error) {
		logrus.Warnf("midi: listener error on %s: %v", name, listenErr)
		if onError != nil {
			onError(listenErr)
		}
	}))
	if err != nil {
		_ = in.Close()
		return nil, errors.Wrapf(err, "listen %q", name)
	}

	logrus.Infof("midi: listening to %s", name)
	return func() {
		stopFn()
		_ = in.Close()
		logrus.Infof("midi: closed %s", name)
	}, nil
}

func Close() {
	gomidi.CloseDriver()
}
