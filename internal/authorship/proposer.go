// Package authorship runs the manual-seal authorship loop: it turns seal commands
// into blocks built from the transaction pool and imports them.
package authorship

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goodnatureofminers/evm-node/internal/chain"
)

// ErrParentNotFound is returned when the requested parent block is unknown.
var ErrParentNotFound = errors.New("parent block not found")

// Proposer builds candidate blocks. It is shared by the authorship loop and the
// collator.
type Proposer struct {
	client  ChainClient
	pool    TxPool
	builder BlockBuilder
}

func NewProposer(client ChainClient, pool TxPool, builder BlockBuilder) *Proposer {
	return &Proposer{
		client:  client,
		pool:    pool,
		builder: builder,
	}
}

// Parent resolves the header to build on: parentHash when given, else the best block.
func (p *Proposer) Parent(ctx context.Context, parentHash *common.Hash) (*types.Header, error) {
	var hash common.Hash
	if parentHash != nil {
		hash = *parentHash
	} else {
		best, err := p.client.BestBlock(ctx)
		if err != nil {
			return nil, fmt.Errorf("best block: %w", err)
		}
		hash = best.Hash
	}

	header, err := p.client.Header(ctx, hash)
	if err != nil {
		if errors.Is(err, chain.ErrUnknownBlock) {
			return nil, fmt.Errorf("%w: %s", ErrParentNotFound, hash)
		}
		return nil, fmt.Errorf("parent header %s: %w", hash, err)
	}
	if header == nil {
		return nil, fmt.Errorf("%w: %s", ErrParentNotFound, hash)
	}
	return header, nil
}

// Propose builds a block on parent, draining ready transactions unless createEmpty is set.
func (p *Proposer) Propose(ctx context.Context, parent *types.Header, createEmpty bool) (*types.Block, error) {
	var txs []*types.Transaction
	if !createEmpty {
		ready, err := p.pool.ReadyTransactions(ctx)
		if err != nil {
			return nil, fmt.Errorf("drain transaction pool: %w", err)
		}
		txs = ready
	}

	block, err := p.builder.Build(ctx, parent, txs)
	if err != nil {
		return nil, fmt.Errorf("build block: %w", err)
	}
	return block, nil
}
