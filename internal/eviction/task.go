package eviction

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

const (
	// DefaultFilterRetainBlocks is how long an installed filter outlives its creation block.
	DefaultFilterRetainBlocks = 100
	// DefaultTxRetainBlocks is how long a pending transaction stays cached.
	DefaultTxRetainBlocks = 5
)

// ErrStreamClosed is returned when the import notification stream ends while the
// task is still expected to run.
var ErrStreamClosed = errors.New("import notification stream closed")

// Task runs an eviction pass over one registry for every imported block.
type Task[K comparable, V any] struct {
	name      string
	registry  *Registry[K, V]
	threshold uint64
	notifier  ImportNotifier
	metrics   Metrics
	logger    *zap.Logger
}

func NewTask[K comparable, V any](
	name string,
	registry *Registry[K, V],
	threshold uint64,
	notifier ImportNotifier,
	metrics Metrics,
	logger *zap.Logger,
) (*Task[K, V], error) {
	if registry == nil {
		return nil, fmt.Errorf("%s: registry is required", name)
	}
	if notifier == nil {
		return nil, fmt.Errorf("%s: import notifier is required", name)
	}
	if metrics == nil {
		return nil, fmt.Errorf("%s: eviction metrics is required", name)
	}
	return &Task[K, V]{
		name:      name,
		registry:  registry,
		threshold: threshold,
		notifier:  notifier,
		metrics:   metrics,
		logger:    logger.Named(name),
	}, nil
}

func (t *Task[K, V]) Name() string {
	return t.name
}

// Run evicts on every import notification until ctx is done. A closed stream
// with a live ctx is reported as ErrStreamClosed.
func (t *Task[K, V]) Run(ctx context.Context) error {
	notifications := t.notifier.ImportNotifications(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case block, ok := <-notifications:
			if !ok {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return fmt.Errorf("%s: %w", t.name, ErrStreamClosed)
			}
			t.Pass(block.Number)
		}
	}
}

// Pass evicts everything expired at height and returns how many entries went.
func (t *Task[K, V]) Pass(height uint64) int {
	evicted := len(t.registry.Evict(height, t.threshold))
	size := t.registry.Len()
	t.metrics.ObserveEviction(t.name, evicted, size)
	if evicted > 0 {
		t.logger.Debug("evicted entries",
			zap.Uint64("height", height),
			zap.Int("evicted", evicted),
			zap.Int("remaining", size),
		)
	}
	return evicted
}
