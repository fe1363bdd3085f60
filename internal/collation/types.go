package collation

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goodnatureofminers/evm-node/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	RelayChain interface {
		CollationRequests(ctx context.Context) <-chan model.CollationRequest
	}
	ValidationDataSource interface {
		ValidationData(ctx context.Context, req model.CollationRequest) (*model.ValidationData, error)
	}
	Announcer interface {
		AnnounceBlock(ctx context.Context, block *types.Block, data *model.ValidationData) error
	}
	BlockImporter interface {
		ImportBlock(ctx context.Context, block *types.Block) (model.ImportOutcome, error)
	}
	BlockProposer interface {
		Parent(ctx context.Context, parentHash *common.Hash) (*types.Header, error)
		Propose(ctx context.Context, parent *types.Header, createEmpty bool) (*types.Block, error)
	}
	Metrics interface {
		ObserveCollation(outcome model.CollationOutcome, started time.Time)
	}
)
