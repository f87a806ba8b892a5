//go:build (linux && cgo) || windows || darwin

package audio

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/gigurra/morse/cmd/morse/codec"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// AudioAvailable indicates whether speaker playback is supported in this build.
const AudioAvailable = true

var (
	speakerOnce sync.Once
	speakerErr  error
)

// Speaker plays synthesized sine tones through the default output device.
type Speaker struct {
	sampleRate beep.SampleRate
}

func NewSpeaker() (*Speaker, error) {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(SampleRate, SampleRate.N(time.Second/10))
	})
	if speakerErr != nil {
		return nil, speakerErr
	}
	return &Speaker{sampleRate: SampleRate}, nil
}

// EmitTone blocks until the tone has been played or ctx is done.
func (s *Speaker) EmitTone(ctx context.Context, frequency int, duration time.Duration) error {
	done := make(chan struct{})
	tone := newTone(s.sampleRate, frequency, s.sampleRate.N(duration))
	speaker.Play(beep.Seq(tone, beep.Callback(func() {
		close(done)
	})))

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		speaker.Clear()
		return ctx.Err()
	}
}

func newSpeakerDevice(_ io.Writer) (codec.ToneEmitter, error) {
	return NewSpeaker()
}
