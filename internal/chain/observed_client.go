package chain

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goodnatureofminers/evm-node/internal/model"
)

type (
	ClientMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// ObservedClient records the latency and status of every Client call.
type ObservedClient struct {
	client  Client
	metrics ClientMetrics
}

func NewObservedClient(client Client, metrics ClientMetrics) *ObservedClient {
	return &ObservedClient{
		client:  client,
		metrics: metrics,
	}
}

func (c *ObservedClient) BestBlock(ctx context.Context) (id model.BlockID, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("best_block", err, started)
	}()
	return c.client.BestBlock(ctx)
}

func (c *ObservedClient) Header(ctx context.Context, hash common.Hash) (header *types.Header, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("header", err, started)
	}()
	return c.client.Header(ctx, hash)
}

func (c *ObservedClient) BlockByNumber(ctx context.Context, number uint64) (block *types.Block, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("block_by_number", err, started)
	}()
	return c.client.BlockByNumber(ctx, number)
}

func (c *ObservedClient) ImportBlock(ctx context.Context, block *types.Block) (outcome model.ImportOutcome, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("import_block", err, started)
	}()
	return c.client.ImportBlock(ctx, block)
}

func (c *ObservedClient) FinalizeBlock(ctx context.Context, hash common.Hash) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("finalize_block", err, started)
	}()
	return c.client.FinalizeBlock(ctx, hash)
}

// ImportNotifications is passed through unobserved: it is a subscription, not a call.
func (c *ObservedClient) ImportNotifications(ctx context.Context) <-chan model.BlockID {
	return c.client.ImportNotifications(ctx)
}
