package node

import (
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/evm-node/internal/devchain"
	"github.com/goodnatureofminers/evm-node/internal/eviction"
	"github.com/goodnatureofminers/evm-node/internal/mappingsync"
	"github.com/goodnatureofminers/evm-node/internal/model"
)

// Role selects how the node produces blocks.
type Role string

var (
	// RoleDev authors blocks locally following the configured sealing policy.
	RoleDev Role = "dev"
	// RoleCollator authors blocks for relay-chain slots.
	RoleCollator Role = "collator"
	// RoleFull follows the chain without authoring.
	RoleFull Role = "full"
)

// ErrMissingValidationData is returned for a collator configured without a
// validation data source.
var ErrMissingValidationData = errors.New("collator requires a validation data source")

type Config struct {
	Role              Role
	Sealing           model.Sealing
	SealQueueCapacity int
	// RelaySlot is the slot duration of the simulated relay chain feeding the collator.
	RelaySlot time.Duration

	FilterRetainBlocks  uint64
	TxRetainBlocks      uint64
	MappingPollInterval time.Duration

	GasLimit  uint64
	PoolLimit int
	Coinbase  common.Address

	ClickhouseDSN string

	GRPCAddr       string
	HTTPAddr       string
	HealthInterval time.Duration
}

// DefaultConfig returns a development node sealing instantly with in-memory storage.
func DefaultConfig() Config {
	return Config{
		Role:                RoleDev,
		Sealing:             model.Sealing{Kind: model.SealingInstant},
		SealQueueCapacity:   1000,
		FilterRetainBlocks:  eviction.DefaultFilterRetainBlocks,
		TxRetainBlocks:      eviction.DefaultTxRetainBlocks,
		MappingPollInterval: mappingsync.DefaultPollInterval,
		GasLimit:            devchain.DefaultGasLimit,
		PoolLimit:           8192,
		HealthInterval:      time.Second,
	}
}

// Validate reports configuration errors that must stop the node before it starts.
func (c Config) Validate() error {
	switch c.Role {
	case RoleDev:
		switch c.Sealing.Kind {
		case model.SealingInstant, model.SealingManual, model.SealingInterval:
		default:
			return fmt.Errorf("unknown sealing mode %q", c.Sealing.Kind)
		}
	case RoleCollator:
		if c.RelaySlot <= 0 {
			return fmt.Errorf("%w: set a relay slot duration", ErrMissingValidationData)
		}
	case RoleFull:
	default:
		return fmt.Errorf("unknown node role %q", c.Role)
	}
	if c.GasLimit == 0 {
		return errors.New("block gas limit must be positive")
	}
	if c.MappingPollInterval <= 0 {
		return fmt.Errorf("mapping poll interval must be positive, got %s", c.MappingPollInterval)
	}
	return nil
}
