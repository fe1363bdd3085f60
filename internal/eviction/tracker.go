package eviction

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// PendingTracker records every transaction the pool validates into the pending
// cache, stamped with the best block height at the time.
type PendingTracker struct {
	pending *PendingTransactions
	pool    TransactionSource
	chain   BestBlockSource
	logger  *zap.Logger
}

func NewPendingTracker(pending *PendingTransactions, pool TransactionSource, chain BestBlockSource, logger *zap.Logger) (*PendingTracker, error) {
	if pending == nil {
		return nil, errors.New("pending transactions cache is required")
	}
	if pool == nil {
		return nil, errors.New("transaction source is required")
	}
	if chain == nil {
		return nil, errors.New("best block source is required")
	}
	return &PendingTracker{
		pending: pending,
		pool:    pool,
		chain:   chain,
		logger:  logger.Named("pending_tracker"),
	}, nil
}

func (t *PendingTracker) Run(ctx context.Context) error {
	notifications := t.pool.ImportNotifications(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case hash, ok := <-notifications:
			if !ok {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return fmt.Errorf("pending tracker: %w", ErrStreamClosed)
			}
			tx, err := t.pool.Transaction(ctx, hash)
			if err != nil {
				// Already included or dropped by the pool.
				t.logger.Debug("skip transaction", zap.Stringer("hash", hash), zap.Error(err))
				continue
			}
			best, err := t.chain.BestBlock(ctx)
			if err != nil {
				t.logger.Warn("best block unavailable", zap.Error(err))
				continue
			}
			t.pending.Add(tx, best.Number)
		}
	}
}
