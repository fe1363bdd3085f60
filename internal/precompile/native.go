package precompile

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/vm"
	"github.com/holiman/uint256"
)

// maxModExpLength bounds each modexp operand, as EIP-7823 does. Istanbul pricing
// alone does not protect calls made without a gas limit.
const maxModExpLength = 1024

// native charges a go-ethereum contract's price against the limit and runs it.
type native struct {
	contract vm.PrecompiledContract
	// check rejects input before it is priced or run.
	check func(input []byte) error
}

func istanbul(addr common.Address) native {
	return native{contract: vm.PrecompiledContractsIstanbul[addr]}
}

func (n native) Execute(input []byte, gasLimit *uint64, _ *Context) (Output, error) {
	if n.check != nil {
		if err := n.check(input); err != nil {
			return Output{}, err
		}
	}
	cost := n.contract.RequiredGas(input)
	if gasLimit != nil && cost > *gasLimit {
		return Output{}, outOfGas()
	}
	data, err := n.contract.Run(input)
	if err != nil {
		return Output{}, invalidInput("%v", err)
	}
	return Output{Status: ExitReturned, Data: data, GasUsed: cost}, nil
}

// modExpBounds reads the three declared operand lengths from the 96 byte header.
func modExpBounds(input []byte) error {
	header := common.RightPadBytes(input[:min(len(input), 96)], 96)
	for i, name := range []string{"base", "exponent", "modulus"} {
		size := new(uint256.Int).SetBytes(header[i*32 : (i+1)*32])
		if !size.IsUint64() || size.Uint64() > maxModExpLength {
			return invalidInput("%s length exceeds %d bytes", name, maxModExpLength)
		}
	}
	return nil
}
