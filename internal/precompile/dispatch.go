package precompile

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// CallDispatcher executes an encoded runtime call on behalf of origin and
// reports the gas it consumed. value is what the calling frame carries, never
// nil. It must refuse calls costing more than gasLimit.
type CallDispatcher interface {
	Dispatch(call []byte, origin common.Address, value *uint256.Int, gasLimit *uint64) (uint64, error)
}

// Dispatch forwards its input, an encoded runtime call, to the node's dispatcher.
type Dispatch struct {
	dispatcher CallDispatcher
}

func (d *Dispatch) Execute(input []byte, gasLimit *uint64, ctx *Context) (Output, error) {
	if d.dispatcher == nil {
		return Output{}, invalidInput("call dispatch is not available")
	}
	if len(input) == 0 {
		return Output{}, invalidInput("empty call")
	}

	var origin common.Address
	value := new(uint256.Int)
	if ctx != nil {
		origin = ctx.Caller
		if ctx.ApparentValue != nil {
			value = ctx.ApparentValue
		}
	}
	used, err := d.dispatcher.Dispatch(input, origin, value, gasLimit)
	if err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return Output{}, err
		}
		return Output{}, invalidInput("dispatch: %v", err)
	}
	if gasLimit != nil && used > *gasLimit {
		return Output{}, outOfGas()
	}
	return Output{Status: ExitStopped, Data: []byte{}, GasUsed: used}, nil
}
