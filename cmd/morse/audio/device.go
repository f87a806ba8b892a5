package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/gigurra/morse/cmd/morse/codec"
)

var ErrUnknownDevice = errors.New("unknown audio device")

const (
	DeviceSpeaker = "speaker"
	DeviceSystem  = "system"
	DeviceBell    = "bell"
)

func Devices() []string {
	return []string{DeviceSpeaker, DeviceSystem, DeviceBell}
}

// New returns the emitter registered under name. out receives bell
// characters and fallback notices.
func New(name string, out io.Writer) (codec.ToneEmitter, error) {
	switch name {
	case DeviceSpeaker:
		return newSpeakerDevice(out)
	case DeviceSystem:
		return NewSystem(), nil
	case DeviceBell:
		return NewBell(out), nil
	default:
		return nil, fmt.Errorf("%w %q (want one of %v)", ErrUnknownDevice, name, Devices())
	}
}
