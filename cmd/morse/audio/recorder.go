package audio

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
)

type segment struct {
	frequency int // 0 for silence
	samples   int
}

// Recorder captures tones and silences so they can be written as a WAV file
// instead of being played.
type Recorder struct {
	format   beep.Format
	segments []segment
	samples  int
}

func NewRecorder() *Recorder {
	return &Recorder{
		format: beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2},
	}
}

func (r *Recorder) EmitTone(ctx context.Context, frequency int, duration time.Duration) error {
	return r.add(ctx, frequency, duration)
}

func (r *Recorder) Pause(ctx context.Context, duration time.Duration) error {
	return r.add(ctx, 0, duration)
}

func (r *Recorder) add(ctx context.Context, frequency int, duration time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n := r.format.SampleRate.N(duration)
	if n <= 0 {
		return nil
	}
	r.segments = append(r.segments, segment{frequency: frequency, samples: n})
	r.samples += n
	return nil
}

// Len is the number of recorded samples per channel.
func (r *Recorder) Len() int { return r.samples }

func (r *Recorder) Duration() time.Duration {
	return r.format.SampleRate.D(r.samples)
}

func (r *Recorder) Format() beep.Format { return r.format }

func (r *Recorder) streamer() beep.Streamer {
	streamers := make([]beep.Streamer, 0, len(r.segments))
	for _, s := range r.segments {
		if s.frequency == 0 {
			streamers = append(streamers, beep.Silence(s.samples))
		} else {
			streamers = append(streamers, newTone(r.format.SampleRate, s.frequency, s.samples))
		}
	}
	return beep.Seq(streamers...)
}

// Encode writes the recording as WAV. It can be called more than once.
func (r *Recorder) Encode(w io.WriteSeeker) error {
	if r.samples == 0 {
		return fmt.Errorf("nothing recorded")
	}
	return wav.Encode(w, r.streamer(), r.format)
}

func (r *Recorder) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
