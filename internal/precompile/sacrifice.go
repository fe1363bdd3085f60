package precompile

import (
	"encoding/binary"
	"math"
	"time"
)

const sacrificeInputSize = 16

// sacrificeDelay converts the requested milliseconds, saturating at the longest
// representable duration.
func sacrificeDelay(ms uint64) time.Duration {
	if ms > uint64(math.MaxInt64/int64(time.Millisecond)) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(ms) * time.Millisecond
}

// Sacrifice burns the gas and wall clock time its caller asks for and does
// nothing else. Input is two big-endian uint64: gas to charge, then
// milliseconds to sleep. It exists for exercising gas accounting in tests.
type Sacrifice struct{}

func (Sacrifice) Execute(input []byte, gasLimit *uint64, _ *Context) (Output, error) {
	if len(input) != sacrificeInputSize {
		return Output{}, &ExitError{
			Err:     ErrInvalidInput,
			Message: "input length for Sacrifice must be exactly 16 bytes",
		}
	}
	gas := binary.BigEndian.Uint64(input[0:8])
	delay := binary.BigEndian.Uint64(input[8:16])

	// The limit is enforced before sleeping; nothing bounds the sleep itself.
	if gasLimit != nil && *gasLimit < gas {
		return Output{}, outOfGas()
	}
	if delay > 0 {
		time.Sleep(sacrificeDelay(delay))
	}
	return Output{Status: ExitReturned, Data: []byte{}, GasUsed: gas}, nil
}

// SacrificeInput encodes a Sacrifice call.
func SacrificeInput(gas uint64, delay time.Duration) []byte {
	input := make([]byte, sacrificeInputSize)
	binary.BigEndian.PutUint64(input[0:8], gas)
	binary.BigEndian.PutUint64(input[8:16], uint64(delay.Milliseconds()))
	return input
}
