package audio

import (
	"context"
	"io"
	"time"

	"github.com/gigurra/morse/cmd/morse/codec"
)

// Bell rings the terminal bell for every tone. The frequency is ignored.
type Bell struct {
	out io.Writer
}

func NewBell(out io.Writer) *Bell {
	return &Bell{out: out}
}

func (b *Bell) EmitTone(ctx context.Context, _ int, duration time.Duration) error {
	if _, err := io.WriteString(b.out, "\a"); err != nil {
		return err
	}
	return codec.Sleep(ctx, duration)
}
