package devchain

import (
	"context"
	"encoding/binary"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/trie"
	"github.com/goodnatureofminers/evm-node/internal/clock"
	"github.com/goodnatureofminers/evm-node/pkg/safe"
	"go.uber.org/zap"
)

var sealDigestPrefix = []byte("dsl0")

// Builder assembles development blocks. Transactions are included in the given
// order while they fit in the parent's gas limit; the rest stay in the pool.
type Builder struct {
	coinbase common.Address
	clock    clock.Clock
	logger   *zap.Logger
}

func NewBuilder(coinbase common.Address, clk clock.Clock, logger *zap.Logger) *Builder {
	if clk == nil {
		clk = clock.System{}
	}
	return &Builder{
		coinbase: coinbase,
		clock:    clk,
		logger:   logger.Named("builder"),
	}
}

func (b *Builder) Build(ctx context.Context, parent *types.Header, txs []*types.Transaction) (*types.Block, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := b.clock.Now()
	timestamp, err := safe.Uint64(now.Unix())
	if err != nil {
		return nil, fmt.Errorf("block timestamp: %w", err)
	}
	if timestamp <= parent.Time {
		timestamp = parent.Time + 1
	}

	var (
		included []*types.Transaction
		gasUsed  uint64
	)
	// Transactions that do not fit the remaining gas are skipped so a large one
	// cannot hold back smaller ones behind it.
	for _, tx := range txs {
		if tx.Gas() > parent.GasLimit-gasUsed {
			continue
		}
		gasUsed += tx.Gas()
		included = append(included, tx)
	}
	if left := len(txs) - len(included); left > 0 {
		b.logger.Debug("transactions left out by gas limit",
			zap.Uint64("gas_used", gasUsed),
			zap.Int("left_out", left),
		)
	}

	header := &types.Header{
		ParentHash:  parent.Hash(),
		UncleHash:   types.EmptyUncleHash,
		Coinbase:    b.coinbase,
		Root:        parent.Root,
		TxHash:      types.DeriveSha(types.Transactions(included), trie.NewStackTrie(nil)),
		ReceiptHash: types.EmptyReceiptsHash,
		Difficulty:  big.NewInt(0),
		Number:      new(big.Int).Add(parent.Number, big.NewInt(1)),
		GasLimit:    parent.GasLimit,
		GasUsed:     gasUsed,
		Time:        timestamp,
		Extra:       sealDigest(now),
	}
	return types.NewBlockWithHeader(header).WithBody(types.Body{Transactions: included}), nil
}

// sealDigest stands in for the consensus digest the chain carries in Extra.
func sealDigest(at time.Time) []byte {
	digest := make([]byte, len(sealDigestPrefix)+8)
	copy(digest, sealDigestPrefix)
	binary.BigEndian.PutUint64(digest[len(sealDigestPrefix):], uint64(at.UnixNano()))
	return digest
}
