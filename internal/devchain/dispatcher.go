package devchain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goodnatureofminers/evm-node/internal/precompile"
	"github.com/holiman/uint256"
	"go.uber.org/zap"
)

// Dispatcher executes dispatch precompile calls against the development pool:
// the call is a binary encoded transaction that is queued for inclusion.
type Dispatcher struct {
	pool   *Pool
	logger *zap.Logger
}

func NewDispatcher(pool *Pool, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{pool: pool, logger: logger.Named("dispatcher")}
}

// Dispatch charges the transaction's gas limit. Calls that may cost more than
// gasLimit, or move more value than the calling frame carries, are refused
// before they reach the pool.
func (d *Dispatcher) Dispatch(call []byte, origin common.Address, value *uint256.Int, gasLimit *uint64) (uint64, error) {
	tx := new(types.Transaction)
	if err := tx.UnmarshalBinary(call); err != nil {
		return 0, fmt.Errorf("decode call: %w", err)
	}
	if gasLimit != nil && tx.Gas() > *gasLimit {
		return 0, &precompile.ExitError{Err: precompile.ErrOutOfGas}
	}
	moved, overflow := uint256.FromBig(tx.Value())
	if overflow || moved.Gt(value) {
		return 0, &precompile.ExitError{
			Err:     precompile.ErrInvalidInput,
			Message: fmt.Sprintf("call moves %s but the frame carries %s", tx.Value(), value),
		}
	}
	if err := d.pool.Add(tx); err != nil {
		return 0, err
	}
	d.logger.Debug("call dispatched",
		zap.Stringer("origin", origin),
		zap.Stringer("hash", tx.Hash()),
		zap.Uint64("gas", tx.Gas()),
		zap.Stringer("value", value),
	)
	return tx.Gas(), nil
}
