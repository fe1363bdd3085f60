// Package precompile implements the fixed table of native contracts reachable from
// EVM execution at reserved addresses.
package precompile

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

var (
	// ErrInvalidInput marks a call whose input the contract cannot accept.
	ErrInvalidInput = errors.New("invalid input")
	// ErrOutOfGas marks a call whose cost exceeds the caller supplied gas limit.
	ErrOutOfGas = errors.New("out of gas")
)

// ExitError is the failure returned to the EVM. Err is one of the sentinels above.
type ExitError struct {
	Err     error
	Message string
}

func (e *ExitError) Error() string {
	if e.Message == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Message)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func invalidInput(format string, args ...any) error {
	return &ExitError{Err: ErrInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func outOfGas() error {
	return &ExitError{Err: ErrOutOfGas}
}

// ExitStatus is how a successful call ended.
type ExitStatus string

var (
	ExitReturned ExitStatus = "returned"
	ExitStopped  ExitStatus = "stopped"
)

// Output is the result of a successful call.
type Output struct {
	Status  ExitStatus
	Data    []byte
	GasUsed uint64
}

// Context describes the call frame a precompile runs in. A nil ApparentValue
// means the frame carries no value.
type Context struct {
	Address       common.Address
	Caller        common.Address
	ApparentValue *uint256.Int
}

// Precompile is a native contract. A nil gasLimit means the call is unbounded.
type Precompile interface {
	Execute(input []byte, gasLimit *uint64, ctx *Context) (Output, error)
}

var (
	ECRecoverAddress    = common.BytesToAddress([]byte{1})
	SHA256Address       = common.BytesToAddress([]byte{2})
	RIPEMD160Address    = common.BytesToAddress([]byte{3})
	IdentityAddress     = common.BytesToAddress([]byte{4})
	ModExpAddress       = common.BytesToAddress([]byte{5})
	BN256AddAddress     = common.BytesToAddress([]byte{6})
	BN256MulAddress     = common.BytesToAddress([]byte{7})
	BN256PairingAddress = common.BytesToAddress([]byte{8})
	DispatchAddress     = common.BytesToAddress([]byte{0x00, 0xff})
	SacrificeAddress    = common.BytesToAddress([]byte{0x01, 0xff})
)

// Set is the closed dispatch table. It is built once and never modified.
type Set struct {
	contracts map[common.Address]Precompile
}

// NewSet builds the table of go-ethereum's Istanbul contracts at 1 to 8 plus the
// dispatch and sacrifice contracts. dispatcher may be nil, in which case
// dispatch calls fail.
func NewSet(dispatcher CallDispatcher) *Set {
	modExp := istanbul(ModExpAddress)
	modExp.check = modExpBounds
	return &Set{contracts: map[common.Address]Precompile{
		ECRecoverAddress:    istanbul(ECRecoverAddress),
		SHA256Address:       istanbul(SHA256Address),
		RIPEMD160Address:    istanbul(RIPEMD160Address),
		IdentityAddress:     istanbul(IdentityAddress),
		ModExpAddress:       modExp,
		BN256AddAddress:     istanbul(BN256AddAddress),
		BN256MulAddress:     istanbul(BN256MulAddress),
		BN256PairingAddress: istanbul(BN256PairingAddress),
		DispatchAddress:     &Dispatch{dispatcher: dispatcher},
		SacrificeAddress:    Sacrifice{},
	}}
}

// Execute runs the contract at addr. The boolean is false when addr is not a
// precompile and the caller should fall through to regular contract execution.
func (s *Set) Execute(addr common.Address, input []byte, gasLimit *uint64, ctx *Context) (Output, bool, error) {
	p, ok := s.contracts[addr]
	if !ok {
		return Output{}, false, nil
	}
	out, err := p.Execute(input, gasLimit, ctx)
	return out, true, err
}

func (s *Set) Lookup(addr common.Address) (Precompile, bool) {
	p, ok := s.contracts[addr]
	return p, ok
}

// Addresses returns the table's addresses in ascending order.
func (s *Set) Addresses() []common.Address {
	out := make([]common.Address, 0, len(s.contracts))
	for addr := range s.contracts {
		out = append(out, addr)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Cmp(out[j]) < 0
	})
	return out
}
