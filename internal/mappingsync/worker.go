// Package mappingsync keeps the EVM block hash to chain block hash index in step
// with the chain.
package mappingsync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goodnatureofminers/evm-node/internal/model"
	"github.com/goodnatureofminers/evm-node/pkg/batcher"
	"github.com/goodnatureofminers/evm-node/pkg/workerpool"
	"go.uber.org/zap"
)

const (
	// DefaultPollInterval is the fallback sync cadence when no block is imported.
	DefaultPollInterval = 6 * time.Second

	fetchWorkerCount     = 4
	maxBlocksPerChunk    = 256
	mappingFlushSize     = 64
	mappingFlushInterval = time.Second
	mappingFlushRPS      = 20

	triggerImport = "import"
	triggerTimer  = "timer"
)

// ErrStreamClosed is returned by Run when import notifications end while the
// worker is still expected to run.
var ErrStreamClosed = errors.New("import notification stream closed")

type Worker struct {
	logger       *zap.Logger
	chain        Chain
	store        Store
	metrics      Metrics
	pollInterval time.Duration
	writer       *batcher.Batcher[model.BlockMapping]

	loaded bool
	synced bool
	cursor uint64
}

func NewWorker(chain Chain, store Store, metrics Metrics, pollInterval time.Duration, logger *zap.Logger) (*Worker, error) {
	if chain == nil {
		return nil, errors.New("chain is required")
	}
	if store == nil {
		return nil, errors.New("mapping store is required")
	}
	if metrics == nil {
		return nil, errors.New("mapping sync metrics is required")
	}
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}

	w := &Worker{
		logger:       logger.Named("mapping_sync"),
		chain:        chain,
		store:        store,
		metrics:      metrics,
		pollInterval: pollInterval,
	}
	w.writer = batcher.New[model.BlockMapping](batcher.Config{
		Size:             mappingFlushSize,
		Interval:         mappingFlushInterval,
		FlushesPerSecond: mappingFlushRPS,
	}, store.InsertMappings, w.logger.Named("writer"))
	return w, nil
}

// Run syncs on every import notification and at least once per poll interval.
// A failed pass is retried on the next wake-up.
func (w *Worker) Run(ctx context.Context) error {
	notifications := w.chain.ImportNotifications(ctx)
	w.writer.Start(ctx)
	defer w.writer.Stop()

	trigger := triggerTimer
	for {
		started := time.Now()
		mapped, err := w.pass(ctx)
		w.metrics.ObservePass(trigger, err, mapped, started)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			w.logger.Warn("mapping sync pass failed", zap.Error(err), zap.Duration("retry_in", w.pollInterval))
		}

		trigger, err = w.wait(ctx, notifications)
		if err != nil {
			return err
		}
	}
}

func (w *Worker) wait(ctx context.Context, notifications <-chan model.BlockID) (string, error) {
	timer := time.NewTimer(w.pollInterval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case _, ok := <-notifications:
		if !ok {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			return "", ErrStreamClosed
		}
		return triggerImport, nil
	case <-timer.C:
		return triggerTimer, nil
	}
}

// pass maps every block above the cursor up to the current best block. The
// cursor only moves past blocks whose mappings were written.
func (w *Worker) pass(ctx context.Context) (int, error) {
	if !w.loaded {
		number, ok, err := w.store.MaxMappedNumber(ctx)
		if err != nil {
			return 0, fmt.Errorf("load mapping cursor: %w", err)
		}
		w.cursor, w.synced, w.loaded = number, ok, true
	}

	best, err := w.chain.BestBlock(ctx)
	if err != nil {
		return 0, fmt.Errorf("best block: %w", err)
	}

	mapped := 0
	for {
		from := w.cursor + 1
		if !w.synced {
			from = 0
		}
		if from > best.Number {
			return mapped, nil
		}
		to := best.Number
		if to-from >= maxBlocksPerChunk {
			to = from + maxBlocksPerChunk - 1
		}

		if err := w.syncRange(ctx, from, to); err != nil {
			return mapped, err
		}
		mapped += int(to - from + 1)
		w.cursor, w.synced = to, true
		w.metrics.ObserveSyncedHeight(to)
		w.logger.Debug("mapped blocks", zap.Uint64("from", from), zap.Uint64("to", to))
	}
}

func (w *Worker) syncRange(ctx context.Context, from, to uint64) error {
	heights := make([]uint64, 0, to-from+1)
	for n := from; n <= to; n++ {
		heights = append(heights, n)
	}

	blocks, err := workerpool.Map(ctx, fetchWorkerCount, heights, func(ctx context.Context, n uint64) (*types.Block, error) {
		block, err := w.chain.BlockByNumber(ctx, n)
		if err != nil {
			return nil, fmt.Errorf("fetch block %d: %w", n, err)
		}
		return block, nil
	})
	if err != nil {
		return err
	}

	for _, block := range blocks {
		if err := w.writer.Add(ctx, Mapping(block)); err != nil {
			return fmt.Errorf("queue mapping: %w", err)
		}
	}
	if err := w.writer.Flush(ctx); err != nil {
		return fmt.Errorf("write mappings: %w", err)
	}
	return nil
}
