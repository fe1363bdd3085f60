// Package collation authors blocks when the node runs as a collator. Block
// production is driven by relay-chain collation requests and gated on the
// validation data of each slot.
package collation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/evm-node/internal/chain"
	"github.com/goodnatureofminers/evm-node/internal/model"
	"go.uber.org/zap"
)

// ErrRequestsClosed is returned by Run when the relay chain stops sending requests.
var ErrRequestsClosed = errors.New("collation request stream closed")

type Collator struct {
	logger     *zap.Logger
	relay      RelayChain
	validation ValidationDataSource
	proposer   BlockProposer
	importer   BlockImporter
	announcer  Announcer
	metrics    Metrics

	lastSlot common.Hash
}

func NewCollator(
	relay RelayChain,
	validation ValidationDataSource,
	proposer BlockProposer,
	importer BlockImporter,
	announcer Announcer,
	metrics Metrics,
	logger *zap.Logger,
) (*Collator, error) {
	if relay == nil {
		return nil, errors.New("relay chain is required")
	}
	if validation == nil {
		return nil, errors.New("validation data source is required")
	}
	if proposer == nil {
		return nil, errors.New("block proposer is required")
	}
	if importer == nil {
		return nil, errors.New("block importer is required")
	}
	if announcer == nil {
		return nil, errors.New("block announcer is required")
	}
	if metrics == nil {
		return nil, errors.New("collation metrics is required")
	}

	return &Collator{
		logger:     logger.Named("collator"),
		relay:      relay,
		validation: validation,
		proposer:   proposer,
		importer:   importer,
		announcer:  announcer,
		metrics:    metrics,
	}, nil
}

// Run serves collation requests until ctx is done or the relay chain stops.
func (c *Collator) Run(ctx context.Context) error {
	requests := c.relay.CollationRequests(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case req, ok := <-requests:
			if !ok {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return ErrRequestsClosed
			}
			if req.RelayParent == c.lastSlot {
				c.logger.Debug("slot already handled", zap.Stringer("relay_parent", req.RelayParent))
				continue
			}
			c.lastSlot = req.RelayParent
			c.Collate(ctx, req)
		}
	}
}

// Collate makes one authoring attempt for req. Missing validation data skips the
// slot; build and import failures miss it. Neither is retried.
func (c *Collator) Collate(ctx context.Context, req model.CollationRequest) model.CollationOutcome {
	started := time.Now()
	logger := c.logger.With(
		zap.Stringer("relay_parent", req.RelayParent),
		zap.Uint32("relay_parent_number", req.RelayParentNumber),
	)

	data, err := c.validation.ValidationData(ctx, req)
	if err != nil || data == nil {
		if err != nil && !errors.Is(err, chain.ErrNoValidationData) {
			logger.Warn("fetch validation data failed", zap.Error(err))
		} else {
			logger.Debug("no validation data for slot")
		}
		return c.observe(model.CollationSkipped, started)
	}
	if err := checkValidationData(req, data); err != nil {
		logger.Warn("skip slot with inconsistent validation data", zap.Error(err))
		return c.observe(model.CollationSkipped, started)
	}

	if err := c.author(ctx, data, logger); err != nil {
		logger.Warn("collation missed", zap.Error(err))
		return c.observe(model.CollationMissed, started)
	}
	return c.observe(model.CollationAuthored, started)
}

func (c *Collator) author(ctx context.Context, data *model.ValidationData, logger *zap.Logger) error {
	parent, err := c.proposer.Parent(ctx, nil)
	if err != nil {
		return err
	}
	block, err := c.proposer.Propose(ctx, parent, false)
	if err != nil {
		return err
	}
	if _, err := c.importer.ImportBlock(ctx, block); err != nil {
		return fmt.Errorf("import block: %w", err)
	}

	if err := c.announcer.AnnounceBlock(ctx, block, data); err != nil {
		logger.Warn("announce block failed", zap.Stringer("hash", block.Hash()), zap.Error(err))
	}
	logger.Info("collated block",
		zap.Uint64("number", block.NumberU64()),
		zap.Stringer("hash", block.Hash()),
		zap.Int("txs", len(block.Transactions())),
	)
	return nil
}

func (c *Collator) observe(outcome model.CollationOutcome, started time.Time) model.CollationOutcome {
	c.metrics.ObserveCollation(outcome, started)
	return outcome
}
