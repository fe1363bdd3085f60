// Package devchain is an in-memory chain backend for running the node without
// an external client: block store, transaction pool, block builder and a
// simulated relay chain.
package devchain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goodnatureofminers/evm-node/internal/chain"
	"github.com/goodnatureofminers/evm-node/internal/model"
)

// DefaultGasLimit is the block gas limit of the development genesis.
const DefaultGasLimit = 30_000_000

var errFinalizeBackwards = errors.New("finalized block can not go backwards")

// Chain stores blocks in memory and follows the longest chain.
type Chain struct {
	// importMu orders whole imports, including hooks and notifications, so
	// subscribers see blocks in import order. mu guards the block store.
	importMu  sync.Mutex
	mu        sync.RWMutex
	blocks    map[common.Hash]*types.Block
	canonical []common.Hash
	finalized uint64

	imports  *feed[model.BlockID]
	onImport []func(*types.Block)
}

// Genesis returns the development genesis block.
func Genesis(gasLimit uint64) *types.Block {
	return types.NewBlockWithHeader(&types.Header{
		Number:      big.NewInt(0),
		GasLimit:    gasLimit,
		Difficulty:  big.NewInt(0),
		UncleHash:   types.EmptyUncleHash,
		TxHash:      types.EmptyTxsHash,
		ReceiptHash: types.EmptyReceiptsHash,
		Root:        types.EmptyRootHash,
	})
}

func NewChain(genesis *types.Block) *Chain {
	return &Chain{
		blocks:    map[common.Hash]*types.Block{genesis.Hash(): genesis},
		canonical: []common.Hash{genesis.Hash()},
		imports:   newFeed[model.BlockID](),
	}
}

// OnImport registers a hook that runs after every canonical import, before
// ImportBlock returns.
func (c *Chain) OnImport(hook func(*types.Block)) {
	c.mu.Lock()
	c.onImport = append(c.onImport, hook)
	c.mu.Unlock()
}

func (c *Chain) BestBlock(context.Context) (model.BlockID, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	number := uint64(len(c.canonical) - 1)
	return model.BlockID{Hash: c.canonical[number], Number: number}, nil
}

func (c *Chain) Header(_ context.Context, hash common.Hash) (*types.Header, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	block, ok := c.blocks[hash]
	if !ok {
		return nil, fmt.Errorf("%w: %s", chain.ErrUnknownBlock, hash)
	}
	return block.Header(), nil
}

func (c *Chain) BlockByNumber(_ context.Context, number uint64) (*types.Block, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if number >= uint64(len(c.canonical)) {
		return nil, fmt.Errorf("%w: #%d", chain.ErrUnknownBlock, number)
	}
	return c.blocks[c.canonical[number]], nil
}

// ImportBlock adds block to the store. A block heavier than the current best
// becomes canonical, reorganising the canonical index if it is on a fork.
func (c *Chain) ImportBlock(_ context.Context, block *types.Block) (model.ImportOutcome, error) {
	c.importMu.Lock()
	defer c.importMu.Unlock()

	c.mu.Lock()
	if _, ok := c.blocks[block.Hash()]; ok {
		c.mu.Unlock()
		return model.ImportAlreadyInChain, nil
	}
	parent, ok := c.blocks[block.ParentHash()]
	if !ok {
		c.mu.Unlock()
		return "", fmt.Errorf("%w: %s", chain.ErrUnknownParent, block.ParentHash())
	}
	if block.NumberU64() != parent.NumberU64()+1 {
		c.mu.Unlock()
		return "", fmt.Errorf("block number %d does not follow parent %d", block.NumberU64(), parent.NumberU64())
	}
	c.blocks[block.Hash()] = block

	if block.NumberU64() < uint64(len(c.canonical)) {
		c.mu.Unlock()
		return model.ImportImported, nil
	}
	if err := c.setHead(block); err != nil {
		delete(c.blocks, block.Hash())
		c.mu.Unlock()
		return "", err
	}
	hooks := c.onImport
	c.mu.Unlock()

	for _, hook := range hooks {
		hook(block)
	}
	c.imports.Send(model.BlockID{Hash: block.Hash(), Number: block.NumberU64()})
	return model.ImportImported, nil
}

// setHead makes block the head, rewriting the canonical index back to the
// common ancestor. Finalized blocks are never reorganised.
func (c *Chain) setHead(block *types.Block) error {
	number := block.NumberU64()
	canonical := make([]common.Hash, number+1)
	copy(canonical, c.canonical)

	for cur := block; ; {
		n := cur.NumberU64()
		if n < uint64(len(c.canonical)) && c.canonical[n] == cur.Hash() {
			break
		}
		if n <= c.finalized && n < uint64(len(c.canonical)) {
			return fmt.Errorf("block %s reverts finalized block #%d", block.Hash(), n)
		}
		canonical[n] = cur.Hash()
		cur = c.blocks[cur.ParentHash()]
	}
	c.canonical = canonical
	return nil
}

// FinalizeBlock marks a canonical block final. Finality only moves forward.
func (c *Chain) FinalizeBlock(_ context.Context, hash common.Hash) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	block, ok := c.blocks[hash]
	if !ok {
		return fmt.Errorf("%w: %s", chain.ErrUnknownBlock, hash)
	}
	number := block.NumberU64()
	if number >= uint64(len(c.canonical)) || c.canonical[number] != hash {
		return fmt.Errorf("block %s is not canonical", hash)
	}
	if number < c.finalized {
		return fmt.Errorf("%w: #%d below #%d", errFinalizeBackwards, number, c.finalized)
	}
	c.finalized = number
	return nil
}

// Finalized returns the number of the last finalized block.
func (c *Chain) Finalized() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.finalized
}

func (c *Chain) ImportNotifications(ctx context.Context) <-chan model.BlockID {
	return c.imports.Subscribe(ctx)
}

// Close ends every import subscription.
func (c *Chain) Close() {
	c.imports.Close()
}
