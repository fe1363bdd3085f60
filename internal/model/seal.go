package model

import "github.com/ethereum/go-ethereum/common"

// SealCommand requests exactly one new block attempt from the authorship loop.
type SealCommand struct {
	// CreateEmpty seals a block without pulling transactions from the pool.
	CreateEmpty bool
	// Finalize finalizes the block right after a successful import.
	Finalize bool
	// ParentHash builds on top of the given block instead of the best block.
	ParentHash *common.Hash
	// Result is an optional completion notifier. It must be buffered: the
	// authorship loop never blocks on it and drops the result when it is full.
	Result chan<- SealResult
}

// SealResult reports the outcome of a SealCommand.
type SealResult struct {
	Block     BlockID
	Finalized bool
	Err       error
}

// NewBlockCommand returns the command emitted by the automatic sealing policies.
func NewBlockCommand(createEmpty bool) SealCommand {
	return SealCommand{CreateEmpty: createEmpty}
}
