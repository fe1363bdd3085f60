// Package sealing implements the development sealing policies that decide when a
// new block attempt is made.
package sealing

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/evm-node/internal/chain"
	"github.com/goodnatureofminers/evm-node/internal/model"
)

var (
	// ErrStreamClosed is returned by Next once the trigger's source has ended.
	ErrStreamClosed = errors.New("seal command stream closed")
	// ErrQueueFull is returned by Manual.Submit when the command queue is at capacity.
	ErrQueueFull = errors.New("seal command queue full")
)

// Trigger is a lazy, potentially infinite sequence of seal commands. Next blocks
// until a command is available, ctx is done or the source ends.
type Trigger interface {
	Next(ctx context.Context) (model.SealCommand, error)
}

// New builds the trigger for the configured sealing policy. The pool is only
// consulted by instant sealing.
func New(ctx context.Context, cfg model.Sealing, pool chain.TxPool, queueCapacity int) (Trigger, error) {
	switch cfg.Kind {
	case model.SealingInstant:
		if pool == nil {
			return nil, errors.New("instant sealing requires a transaction pool")
		}
		return NewInstant(ctx, pool), nil
	case model.SealingManual:
		return NewManual(queueCapacity), nil
	case model.SealingInterval:
		if cfg.Interval <= 0 {
			return nil, fmt.Errorf("invalid sealing interval %s", cfg.Interval)
		}
		return NewInterval(cfg.Interval), nil
	default:
		return nil, fmt.Errorf("unknown sealing mode %q", cfg.Kind)
	}
}
