package eviction

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goodnatureofminers/evm-node/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ImportNotifier interface {
		ImportNotifications(ctx context.Context) <-chan model.BlockID
	}
	BestBlockSource interface {
		BestBlock(ctx context.Context) (model.BlockID, error)
	}
	TransactionSource interface {
		ImportNotifications(ctx context.Context) <-chan common.Hash
		Transaction(ctx context.Context, hash common.Hash) (*types.Transaction, error)
	}
	Metrics interface {
		ObserveEviction(registry string, evicted, size int)
	}
)
