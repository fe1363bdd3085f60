package sealing

import (
	"context"
	"time"

	"github.com/goodnatureofminers/evm-node/internal/model"
)

// Interval emits a command on a fixed wall-clock period, creating empty blocks
// when the pool has nothing ready. Ticks that fire while the consumer is busy are
// dropped by the ticker.
type Interval struct {
	ticker *time.Ticker
}

func NewInterval(period time.Duration) *Interval {
	return &Interval{ticker: time.NewTicker(period)}
}

func (t *Interval) Next(ctx context.Context) (model.SealCommand, error) {
	select {
	case <-ctx.Done():
		return model.SealCommand{}, ctx.Err()
	case <-t.ticker.C:
		return model.NewBlockCommand(true), nil
	}
}

// Stop releases the ticker.
func (t *Interval) Stop() {
	t.ticker.Stop()
}
