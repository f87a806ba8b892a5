//go:build !((linux && cgo) || windows || darwin)

package audio

import (
	"fmt"
	"io"

	"github.com/gigurra/morse/cmd/morse/codec"
)

// AudioAvailable indicates whether speaker playback is supported in this build.
// Audio requires CGO for native sound libraries.
const AudioAvailable = false

func newSpeakerDevice(out io.Writer) (codec.ToneEmitter, error) {
	fmt.Fprintln(out, "(Audio requires CGO on Linux. Using terminal bell...)")
	return NewBell(out), nil
}
