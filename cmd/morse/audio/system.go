package audio

import (
	"context"
	"time"

	"github.com/gen2brain/beeep"
)

var beeepBeep = beeep.Beep

// System uses the operating system's beep facility.
type System struct{}

func NewSystem() *System {
	return &System{}
}

func (System) EmitTone(ctx context.Context, frequency int, duration time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return beeepBeep(float64(frequency), int(duration.Milliseconds()))
}
