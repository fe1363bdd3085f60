package mappingsync

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goodnatureofminers/evm-node/internal/model"
)

// EthereumHash is the hash of the EVM view of a chain header. The chain keeps
// its seal digest in Extra, which is not part of the EVM block.
func EthereumHash(header *types.Header) common.Hash {
	h := types.CopyHeader(header)
	h.Extra = nil
	return h.Hash()
}

// Mapping links a chain block to the EVM block it carries.
func Mapping(block *types.Block) model.BlockMapping {
	return model.BlockMapping{
		EthereumHash: EthereumHash(block.Header()),
		ChainHash:    block.Hash(),
		Number:       block.NumberU64(),
	}
}
