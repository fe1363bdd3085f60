// Package batcher provides a generic buffered batch writer with rate limited flushes.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned by Add and Flush once the batcher has stopped.
var ErrStopped = errors.New("batcher stopped")

// Config bounds a batch by size and age. FlushesPerSecond caps how often the
// write callback runs.
type Config struct {
	Size             int
	Interval         time.Duration
	FlushesPerSecond int
}

// Batcher buffers items and writes them by size, by interval or on request.
// A failed background write is remembered and reported by the next Flush call,
// so callers that checkpoint on Flush never skip over lost items.
type Batcher[T any] struct {
	cfg     Config
	write   func(context.Context, []T) error
	limiter ratelimit.Limiter
	logger  *zap.Logger

	items    chan T
	requests chan chan error

	wg       sync.WaitGroup
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// New constructs a Batcher writing through write.
func New[T any](cfg Config, write func(context.Context, []T) error, logger *zap.Logger) *Batcher[T] {
	if cfg.Size <= 0 {
		cfg.Size = 1
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Second
	}
	if cfg.FlushesPerSecond <= 0 {
		cfg.FlushesPerSecond = 1
	}
	return &Batcher[T]{
		cfg:      cfg,
		write:    write,
		limiter:  ratelimit.New(cfg.FlushesPerSecond),
		logger:   logger,
		items:    make(chan T, cfg.Size*2),
		requests: make(chan chan error),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start begins the background loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop writes what is buffered and stops the loop. It is safe to call twice.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() {
		close(b.stop)
	})
	b.wg.Wait()
}

// Add queues an item, respecting context cancellation.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return ErrStopped
	case <-b.done:
		return ErrStopped
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.done:
		return ErrStopped
	case b.items <- item:
		return nil
	}
}

// Flush writes every item added before the call and returns the first write
// error seen since the previous Flush.
func (b *Batcher[T]) Flush(ctx context.Context) error {
	reply := make(chan error, 1)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.done:
		return ErrStopped
	case b.requests <- reply:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-reply:
		return err
	}
}

// pending is the loop-owned buffer.
type pending[T any] struct {
	b      *Batcher[T]
	buf    []T
	failed error
}

func (p *pending[T]) push(ctx context.Context, item T) {
	p.buf = append(p.buf, item)
	if len(p.buf) >= p.b.cfg.Size {
		p.write(ctx)
	}
}

// drain moves everything already queued into the buffer.
func (p *pending[T]) drain(ctx context.Context) {
	for {
		select {
		case item := <-p.b.items:
			p.push(ctx, item)
		default:
			return
		}
	}
}

func (p *pending[T]) write(ctx context.Context) {
	if len(p.buf) == 0 {
		return
	}
	p.b.limiter.Take()
	if err := p.b.write(ctx, p.buf); err != nil {
		p.b.logger.Error("batch not written", zap.Int("size", len(p.buf)), zap.Error(err))
		if p.failed == nil {
			p.failed = err
		}
	} else {
		p.b.logger.Debug("batch written", zap.Int("size", len(p.buf)))
	}
	p.buf = p.buf[:0]
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()
	defer close(b.done)

	ticker := time.NewTicker(b.cfg.Interval)
	defer ticker.Stop()

	p := &pending[T]{b: b, buf: make([]T, 0, b.cfg.Size)}
	for {
		select {
		case <-ctx.Done():
			p.drain(ctx)
			p.write(ctx)
			return
		case <-b.stop:
			p.drain(ctx)
			p.write(ctx)
			return
		case item := <-b.items:
			p.push(ctx, item)
		case reply := <-b.requests:
			p.drain(ctx)
			p.write(ctx)
			reply <- p.failed
			p.failed = nil
		case <-ticker.C:
			p.write(ctx)
		}
	}
}
