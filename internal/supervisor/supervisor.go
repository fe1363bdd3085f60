// Package supervisor runs the node's essential tasks. Tasks run until the
// process shuts down; the first task to return brings every other task down.
package supervisor

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// ErrTaskExited wraps the result of an essential task that stopped on its own.
var ErrTaskExited = errors.New("essential task exited")

type (
	Runner interface {
		Run(ctx context.Context) error
	}
	Metrics interface {
		ObserveTaskStart(task string)
		ObserveTaskExit(task string, err error)
	}
)

// RunnerFunc adapts a function to Runner.
type RunnerFunc func(ctx context.Context) error

func (f RunnerFunc) Run(ctx context.Context) error {
	return f(ctx)
}

type task struct {
	name   string
	runner Runner
}

type Supervisor struct {
	logger  *zap.Logger
	metrics Metrics
	tasks   []task
	running atomic.Bool
	failed  atomic.Bool
}

func New(metrics Metrics, logger *zap.Logger) (*Supervisor, error) {
	if metrics == nil {
		return nil, errors.New("supervisor metrics is required")
	}
	return &Supervisor{
		logger:  logger.Named("supervisor"),
		metrics: metrics,
	}, nil
}

// Add registers an essential task. It must be called before Run.
func (s *Supervisor) Add(name string, runner Runner) {
	s.tasks = append(s.tasks, task{name: name, runner: runner})
}

// Healthy reports whether every task is still running.
func (s *Supervisor) Healthy() bool {
	return s.running.Load() && !s.failed.Load()
}

// Run starts every task and blocks until ctx is done or a task returns. It
// returns nil on shutdown and an ErrTaskExited error when a task ended first.
func (s *Supervisor) Run(ctx context.Context) error {
	if len(s.tasks) == 0 {
		return errors.New("no tasks to supervise")
	}

	eg, gctx := errgroup.WithContext(ctx)
	s.running.Store(true)
	defer s.running.Store(false)

	for _, t := range s.tasks {
		t := t
		eg.Go(func() error {
			s.metrics.ObserveTaskStart(t.name)
			s.logger.Info("task started", zap.String("task", t.name))

			err := t.runner.Run(gctx)
			s.metrics.ObserveTaskExit(t.name, err)

			if ctx.Err() != nil {
				s.logger.Info("task stopped", zap.String("task", t.name))
				return nil
			}
			if gctx.Err() != nil && errors.Is(err, context.Canceled) {
				// Brought down by another task's exit.
				return nil
			}

			s.failed.Store(true)
			s.logger.Error("essential task exited", zap.String("task", t.name), zap.Error(err))
			if err == nil {
				return fmt.Errorf("%w: %s", ErrTaskExited, t.name)
			}
			return fmt.Errorf("%w: %s: %w", ErrTaskExited, t.name, err)
		})
	}

	return eg.Wait()
}
