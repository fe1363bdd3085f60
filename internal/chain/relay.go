package chain

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goodnatureofminers/evm-node/internal/model"
)

// ErrNoValidationData is returned when the relay chain has no validation data for a slot.
var ErrNoValidationData = errors.New("no validation data")

type (
	// RelayChain drives the collation cadence.
	RelayChain interface {
		CollationRequests(ctx context.Context) <-chan model.CollationRequest
	}
	// ValidationDataSource provides the relay-chain snapshot for a collation request.
	ValidationDataSource interface {
		ValidationData(ctx context.Context, req model.CollationRequest) (*model.ValidationData, error)
	}
	// Announcer hands authored blocks to the network layer.
	Announcer interface {
		AnnounceBlock(ctx context.Context, block *types.Block, data *model.ValidationData) error
	}
)
