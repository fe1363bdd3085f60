package authorship

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/goodnatureofminers/evm-node/internal/model"
	"github.com/goodnatureofminers/evm-node/internal/sealing"
	"go.uber.org/zap"
)

// State is the authorship loop state.
type State int32

const (
	StateIdle State = iota
	StateBuilding
	StateImporting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateBuilding:
		return "building"
	case StateImporting:
		return "importing"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Loop serves seal commands one at a time. Failed attempts are reported and
// never retried; a new command has to be issued.
type Loop struct {
	logger   *zap.Logger
	trigger  sealing.Trigger
	client   ChainClient
	proposer BlockProposer
	metrics  Metrics
	state    atomic.Int32
}

func NewLoop(
	trigger sealing.Trigger,
	client ChainClient,
	pool TxPool,
	builder BlockBuilder,
	metrics Metrics,
	logger *zap.Logger,
) (*Loop, error) {
	if trigger == nil {
		return nil, errors.New("seal command trigger is required")
	}
	if metrics == nil {
		return nil, errors.New("authorship metrics is required")
	}

	return &Loop{
		logger:   logger.Named("authorship"),
		trigger:  trigger,
		client:   client,
		proposer: NewProposer(client, pool, builder),
		metrics:  metrics,
	}, nil
}

// State returns the current loop state.
func (l *Loop) State() State {
	return State(l.state.Load())
}

// Run pulls commands until ctx is done or the trigger ends.
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Info("authorship loop started")
	for {
		cmd, err := l.trigger.Next(ctx)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return fmt.Errorf("next seal command: %w", err)
		}

		res := l.Seal(ctx, cmd)
		notify(cmd.Result, res)
	}
}

// Seal performs a single authorship attempt.
func (l *Loop) Seal(ctx context.Context, cmd model.SealCommand) (res model.SealResult) {
	started := time.Now()
	txCount := 0
	defer func() {
		l.state.Store(int32(StateIdle))
		l.metrics.ObserveSeal(res.Err, txCount, started)
		if res.Err != nil {
			l.logger.Warn("seal attempt failed",
				zap.Bool("create_empty", cmd.CreateEmpty),
				zap.Bool("finalize", cmd.Finalize),
				zap.Error(res.Err),
			)
		}
	}()

	l.state.Store(int32(StateBuilding))
	parent, err := l.proposer.Parent(ctx, cmd.ParentHash)
	if err != nil {
		return model.SealResult{Err: err}
	}

	block, err := l.proposer.Propose(ctx, parent, cmd.CreateEmpty)
	if err != nil {
		return model.SealResult{Err: err}
	}
	txCount = len(block.Transactions())
	id := model.BlockID{Hash: block.Hash(), Number: block.NumberU64()}

	l.state.Store(int32(StateImporting))
	outcome, err := l.client.ImportBlock(ctx, block)
	if err != nil {
		return model.SealResult{Block: id, Err: fmt.Errorf("import block %s: %w", id, err)}
	}

	if cmd.Finalize {
		if err := l.client.FinalizeBlock(ctx, id.Hash); err != nil {
			return model.SealResult{Block: id, Err: fmt.Errorf("finalize block %s: %w", id, err)}
		}
	}

	l.logger.Info("sealed block",
		zap.Uint64("number", id.Number),
		zap.Stringer("hash", id.Hash),
		zap.Int("txs", txCount),
		zap.String("outcome", string(outcome)),
		zap.Bool("finalized", cmd.Finalize),
	)
	return model.SealResult{Block: id, Finalized: cmd.Finalize}
}

func notify(result chan<- model.SealResult, res model.SealResult) {
	if result == nil {
		return
	}
	select {
	case result <- res:
	default:
	}
}
