// Package chain defines the collaborators the node core consumes: the chain client,
// the transaction pool, the block builder and the relay-chain facing interfaces.
package chain

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goodnatureofminers/evm-node/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

var (
	// ErrUnknownBlock is returned when a block is not known to the client.
	ErrUnknownBlock = errors.New("unknown block")
	// ErrUnknownParent is returned when an imported block does not extend a known block.
	ErrUnknownParent = errors.New("unknown parent")
)

// Client is the chain client the core imports blocks through.
type Client interface {
	BestBlock(ctx context.Context) (model.BlockID, error)
	Header(ctx context.Context, hash common.Hash) (*types.Header, error)
	BlockByNumber(ctx context.Context, number uint64) (*types.Block, error)
	ImportBlock(ctx context.Context, block *types.Block) (model.ImportOutcome, error)
	FinalizeBlock(ctx context.Context, hash common.Hash) error
	// ImportNotifications streams every imported canonical block in import order.
	// Each subscriber gets its own channel; it is closed when ctx is done or the
	// client shuts down.
	ImportNotifications(ctx context.Context) <-chan model.BlockID
}

// TxPool is the transaction pool blocks are filled from.
type TxPool interface {
	ReadyTransactions(ctx context.Context) ([]*types.Transaction, error)
	// ImportNotifications fires for every newly validated transaction.
	ImportNotifications(ctx context.Context) <-chan common.Hash
}

// BlockBuilder assembles a block on top of parent. It is responsible for
// enforcing block gas and size limits and may leave transactions out.
type BlockBuilder interface {
	Build(ctx context.Context, parent *types.Header, txs []*types.Transaction) (*types.Block, error)
}
