package codec

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Signals wrapped around a transmission when requested.
const (
	StartSignal = '=' // BT
	EndSignal   = '+' // AR
)

// ToneEmitter sounds a tone and blocks until it has finished.
type ToneEmitter interface {
	EmitTone(ctx context.Context, frequency int, duration time.Duration) error
}

// Pauser is implemented by emitters that want silences handed to them
// instead of the player waiting in real time.
type Pauser interface {
	Pause(ctx context.Context, duration time.Duration) error
}

type PlayOptions struct {
	Repeat   int  // times the text is sent, separated by a word gap
	Leading  bool // send StartSignal first
	Trailing bool // send EndSignal last
}

func DefaultPlayOptions() PlayOptions {
	return PlayOptions{Repeat: 1}
}

type EventKind int

const (
	Silence EventKind = iota
	Tone
)

func (k EventKind) String() string {
	if k == Tone {
		return "tone"
	}
	return "silence"
}

// Event is one step of playback. Frequency is zero for silences.
type Event struct {
	Kind      EventKind
	Frequency int
	Duration  time.Duration
}

type Schedule []Event

// Duration is the total playback time.
func (s Schedule) Duration() time.Duration {
	var total time.Duration
	for _, e := range s {
		total += e.Duration
	}
	return total
}

// Tones returns only the tone events.
func (s Schedule) Tones() Schedule {
	var tones Schedule
	for _, e := range s {
		if e.Kind == Tone {
			tones = append(tones, e)
		}
	}
	return tones
}

// PlaybackText is the text actually keyed for m under opts.
func PlaybackText(m *Message, opts PlayOptions) (string, error) {
	if opts.Repeat < 1 {
		return "", fmt.Errorf("%w: %d", ErrInvalidRepeat, opts.Repeat)
	}
	parts := make([]string, opts.Repeat)
	for i := range parts {
		parts[i] = m.text
	}
	text := strings.Join(parts, " ")
	if opts.Leading {
		text = string(StartSignal) + " " + text
	}
	if opts.Trailing {
		text += " " + string(EndSignal)
	}
	return text, nil
}

// BuildSchedule lays out every tone and gap needed to play m.
func BuildSchedule(m *Message, opts PlayOptions) (Schedule, error) {
	text, err := PlaybackText(m, opts)
	if err != nil {
		return nil, err
	}

	unit := m.Unit()
	wordGap := unit * 7
	charGap := unit * 3
	pulseGap := unit

	var s Schedule
	silence := func(d time.Duration) { s = append(s, Event{Kind: Silence, Duration: d}) }

	for i, c := range []rune(text) {
		if c == ' ' {
			silence(wordGap)
			continue
		}
		if i != 0 {
			silence(charGap)
		}
		pattern, err := CharToPattern(c)
		if err != nil {
			return nil, err
		}
		for j, pulse := range pattern.Pulses() {
			if j != 0 {
				silence(pulseGap)
			}
			d := unit
			if pulse == Long {
				d = unit * 3
			}
			s = append(s, Event{Kind: Tone, Frequency: m.opts.Frequency, Duration: d})
		}
	}
	return s, nil
}

// Player drives a ToneEmitter through a schedule.
type Player struct {
	emitter ToneEmitter
	log     *slog.Logger
}

func NewPlayer(emitter ToneEmitter, log *slog.Logger) *Player {
	if log == nil {
		log = slog.Default()
	}
	return &Player{emitter: emitter, log: log}
}

// Play blocks until m has been played or ctx is done.
func (p *Player) Play(ctx context.Context, m *Message, opts PlayOptions) error {
	s, err := BuildSchedule(m, opts)
	if err != nil {
		return err
	}
	p.log.Debug("playing morse", "text", m.text, "frequency", m.opts.Frequency,
		"unit", m.Unit(), "events", len(s), "duration", s.Duration())
	if err := p.Run(ctx, s); err != nil {
		return err
	}
	p.log.Debug("done playing morse", "text", m.text)
	return nil
}

// Run plays a prepared schedule.
func (p *Player) Run(ctx context.Context, s Schedule) error {
	pauser, _ := p.emitter.(Pauser)
	for i, e := range s {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch e.Kind {
		case Tone:
			if err := p.emitter.EmitTone(ctx, e.Frequency, e.Duration); err != nil {
				return fmt.Errorf("tone %d of %d: %w", i+1, len(s), err)
			}
		case Silence:
			if pauser != nil {
				if err := pauser.Pause(ctx, e.Duration); err != nil {
					return fmt.Errorf("pause %d of %d: %w", i+1, len(s), err)
				}
				continue
			}
			if err := Sleep(ctx, e.Duration); err != nil {
				return err
			}
		}
	}
	return nil
}

// Play is a shorthand for NewPlayer(emitter, nil).Play(ctx, m, opts).
func (m *Message) Play(ctx context.Context, emitter ToneEmitter, opts PlayOptions) error {
	return NewPlayer(emitter, nil).Play(ctx, m, opts)
}

// Sleep waits for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
