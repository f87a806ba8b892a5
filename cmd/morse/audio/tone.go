package audio

import (
	"math"

	"github.com/gopxl/beep/v2"
)

const (
	SampleRate = beep.SampleRate(44100)
	volume     = 0.5
)

// toneStreamer generates a sine wave with a short fade in and out to avoid
// clicks at the pulse edges.
type toneStreamer struct {
	sampleRate beep.SampleRate
	samples    int
	position   int
	frequency  float64
}

func newTone(sampleRate beep.SampleRate, frequency int, samples int) *toneStreamer {
	return &toneStreamer{
		sampleRate: sampleRate,
		samples:    samples,
		frequency:  float64(frequency),
	}
}

func (t *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if t.position >= t.samples {
		return 0, false
	}
	fadeLen := max(t.samples/20, 10) // 5%
	for i := range samples {
		if t.position >= t.samples {
			return i, true
		}

		phase := 2 * math.Pi * t.frequency * float64(t.position) / float64(t.sampleRate)
		value := math.Sin(phase)

		envelope := 1.0
		if t.position < fadeLen {
			envelope = float64(t.position) / float64(fadeLen)
		} else if t.position > t.samples-fadeLen {
			envelope = float64(t.samples-t.position) / float64(fadeLen)
		}

		value *= envelope * volume
		samples[i][0] = value
		samples[i][1] = value
		t.position++
	}
	return len(samples), true
}

func (t *toneStreamer) Err() error {
	return nil
}
