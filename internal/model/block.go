// Package model defines domain models shared by the node components.
package model

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// BlockID identifies a block of the local chain.
type BlockID struct {
	Hash   common.Hash `json:"hash"`
	Number uint64      `json:"number"`
}

func (id BlockID) String() string {
	return fmt.Sprintf("#%d (%s)", id.Number, id.Hash.TerminalString())
}

// ImportOutcome describes how the chain client handled an imported block.
type ImportOutcome string

var (
	// ImportImported marks a block that was newly added to the chain.
	ImportImported ImportOutcome = "imported"
	// ImportAlreadyInChain marks a block the chain already knew about.
	ImportAlreadyInChain ImportOutcome = "already_in_chain"
)

// BlockMapping links the EVM-visible block hash to the block hash of the chain that carries it.
type BlockMapping struct {
	EthereumHash common.Hash
	ChainHash    common.Hash
	Number       uint64
}

// ErrMappingNotFound is returned when no mapping exists for the requested hash.
var ErrMappingNotFound = errors.New("block mapping not found")
