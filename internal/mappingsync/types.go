package mappingsync

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goodnatureofminers/evm-node/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Chain interface {
		BestBlock(ctx context.Context) (model.BlockID, error)
		BlockByNumber(ctx context.Context, number uint64) (*types.Block, error)
		ImportNotifications(ctx context.Context) <-chan model.BlockID
	}
	Store interface {
		InsertMappings(ctx context.Context, mappings []model.BlockMapping) error
		MaxMappedNumber(ctx context.Context) (uint64, bool, error)
	}
	Metrics interface {
		ObservePass(trigger string, err error, mapped int, started time.Time)
		ObserveSyncedHeight(height uint64)
	}
)
