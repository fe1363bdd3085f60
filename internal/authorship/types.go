package authorship

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goodnatureofminers/evm-node/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ChainClient interface {
		BestBlock(ctx context.Context) (model.BlockID, error)
		Header(ctx context.Context, hash common.Hash) (*types.Header, error)
		ImportBlock(ctx context.Context, block *types.Block) (model.ImportOutcome, error)
		FinalizeBlock(ctx context.Context, hash common.Hash) error
	}
	TxPool interface {
		ReadyTransactions(ctx context.Context) ([]*types.Transaction, error)
	}
	BlockBuilder interface {
		Build(ctx context.Context, parent *types.Header, txs []*types.Transaction) (*types.Block, error)
	}
	BlockProposer interface {
		Parent(ctx context.Context, parentHash *common.Hash) (*types.Header, error)
		Propose(ctx context.Context, parent *types.Header, createEmpty bool) (*types.Block, error)
	}
	Metrics interface {
		ObserveSeal(err error, txCount int, started time.Time)
	}
)
