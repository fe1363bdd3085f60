package devchain

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var (
	// ErrAlreadyKnown is returned when a transaction is submitted twice.
	ErrAlreadyKnown = errors.New("transaction already known")
	// ErrUnknownTransaction is returned for hashes the pool does not hold.
	ErrUnknownTransaction = errors.New("unknown transaction")
	// ErrGasLimitExceeded is returned for a transaction no block could include.
	ErrGasLimitExceeded = errors.New("transaction gas exceeds block gas limit")
)

type pooledTx struct {
	tx  *types.Transaction
	seq uint64
}

// Pool is a development transaction pool. Every submitted transaction is
// considered valid and ready.
type Pool struct {
	mu      sync.RWMutex
	txs     map[common.Hash]pooledTx
	seq     uint64
	limit   int
	maxGas  uint64
	imports *feed[common.Hash]
}

// NewPool returns a pool holding at most limit transactions, each within
// blockGasLimit. Zero disables either bound.
func NewPool(limit int, blockGasLimit uint64) *Pool {
	return &Pool{
		txs:     make(map[common.Hash]pooledTx),
		limit:   limit,
		maxGas:  blockGasLimit,
		imports: newFeed[common.Hash](),
	}
}

// Add validates nothing beyond uniqueness, capacity and gas and announces the
// transaction to import subscribers.
func (p *Pool) Add(tx *types.Transaction) error {
	hash := tx.Hash()
	if p.maxGas > 0 && tx.Gas() > p.maxGas {
		return fmt.Errorf("%w: %d > %d", ErrGasLimitExceeded, tx.Gas(), p.maxGas)
	}

	p.mu.Lock()
	if _, ok := p.txs[hash]; ok {
		p.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrAlreadyKnown, hash)
	}
	if p.limit > 0 && len(p.txs) >= p.limit {
		p.mu.Unlock()
		return fmt.Errorf("transaction pool full (%d)", p.limit)
	}
	p.seq++
	p.txs[hash] = pooledTx{tx: tx, seq: p.seq}
	p.mu.Unlock()

	p.imports.Send(hash)
	return nil
}

// ReadyTransactions returns the pool's transactions ordered by nonce, then by
// arrival.
func (p *Pool) ReadyTransactions(context.Context) ([]*types.Transaction, error) {
	p.mu.RLock()
	pooled := make([]pooledTx, 0, len(p.txs))
	for _, ptx := range p.txs {
		pooled = append(pooled, ptx)
	}
	p.mu.RUnlock()

	sort.Slice(pooled, func(i, j int) bool {
		if pooled[i].tx.Nonce() != pooled[j].tx.Nonce() {
			return pooled[i].tx.Nonce() < pooled[j].tx.Nonce()
		}
		return pooled[i].seq < pooled[j].seq
	})
	txs := make([]*types.Transaction, len(pooled))
	for i, ptx := range pooled {
		txs[i] = ptx.tx
	}
	return txs, nil
}

func (p *Pool) Transaction(_ context.Context, hash common.Hash) (*types.Transaction, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ptx, ok := p.txs[hash]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTransaction, hash)
	}
	return ptx.tx, nil
}

func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.txs)
}

// Included drops the transactions of an imported block.
func (p *Pool) Included(block *types.Block) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, tx := range block.Transactions() {
		delete(p.txs, tx.Hash())
	}
}

func (p *Pool) ImportNotifications(ctx context.Context) <-chan common.Hash {
	return p.imports.Subscribe(ctx)
}

// Close ends every import subscription.
func (p *Pool) Close() {
	p.imports.Close()
}
