package sealing

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/evm-node/internal/chain"
	"github.com/goodnatureofminers/evm-node/internal/model"
)

// Instant emits a command for every transaction the pool validates. Signals that
// arrive while a command is pending are merged into it, so a burst during one
// authorship attempt results in at most one more attempt.
type Instant struct {
	signal chan struct{}
	done   chan struct{}
}

// NewInstant subscribes to the pool's import notifications until ctx is done.
func NewInstant(ctx context.Context, pool chain.TxPool) *Instant {
	return newInstant(pool.ImportNotifications(ctx))
}

func newInstant(notifications <-chan common.Hash) *Instant {
	t := &Instant{
		signal: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	go t.listen(notifications)
	return t
}

func (t *Instant) listen(notifications <-chan common.Hash) {
	defer close(t.done)
	for range notifications {
		select {
		case t.signal <- struct{}{}:
		default:
		}
	}
}

func (t *Instant) Next(ctx context.Context) (model.SealCommand, error) {
	select {
	case <-ctx.Done():
		return model.SealCommand{}, ctx.Err()
	case <-t.signal:
		return model.NewBlockCommand(false), nil
	case <-t.done:
		select {
		case <-t.signal:
			return model.NewBlockCommand(false), nil
		default:
		}
		return model.SealCommand{}, ErrStreamClosed
	}
}
