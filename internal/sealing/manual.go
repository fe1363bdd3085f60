package sealing

import (
	"context"
	"sync"

	"github.com/goodnatureofminers/evm-node/internal/model"
)

// DefaultQueueCapacity bounds the manual seal command queue.
const DefaultQueueCapacity = 1000

// Manual serves commands submitted by an operator through a bounded queue.
type Manual struct {
	commands  chan model.SealCommand
	closed    chan struct{}
	closeOnce sync.Once
}

func NewManual(capacity int) *Manual {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &Manual{
		commands: make(chan model.SealCommand, capacity),
		closed:   make(chan struct{}),
	}
}

// Submit queues cmd without blocking. It returns ErrQueueFull when the queue is
// at capacity.
func (m *Manual) Submit(cmd model.SealCommand) error {
	select {
	case <-m.closed:
		return ErrStreamClosed
	default:
	}

	select {
	case m.commands <- cmd:
		return nil
	default:
		return ErrQueueFull
	}
}

// Len returns the number of queued commands.
func (m *Manual) Len() int {
	return len(m.commands)
}

// Close ends the stream. Commands already queued are still served.
func (m *Manual) Close() {
	m.closeOnce.Do(func() {
		close(m.closed)
	})
}

func (m *Manual) Next(ctx context.Context) (model.SealCommand, error) {
	select {
	case <-ctx.Done():
		return model.SealCommand{}, ctx.Err()
	case cmd := <-m.commands:
		return cmd, nil
	case <-m.closed:
		select {
		case cmd := <-m.commands:
			return cmd, nil
		default:
		}
		return model.SealCommand{}, ErrStreamClosed
	}
}
