package eviction

import (
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// PendingTransactions caches recently validated transactions by hash.
type PendingTransactions struct {
	*Registry[common.Hash, *types.Transaction]
}

func NewPendingTransactions() *PendingTransactions {
	return &PendingTransactions{Registry: NewRegistry[common.Hash, *types.Transaction]()}
}

func (p *PendingTransactions) Add(tx *types.Transaction, height uint64) {
	p.Insert(tx.Hash(), tx, height)
}

func (p *PendingTransactions) Transaction(hash common.Hash) (*types.Transaction, bool) {
	e, ok := p.Get(hash)
	return e.Value, ok
}

// All returns the cached transactions, oldest first.
func (p *PendingTransactions) All() []*types.Transaction {
	snapshot := p.Snapshot()
	entries := make([]Entry[*types.Transaction], 0, len(snapshot))
	for _, e := range snapshot {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].CreatedAt != entries[j].CreatedAt {
			return entries[i].CreatedAt < entries[j].CreatedAt
		}
		return entries[i].Value.Hash().Hex() < entries[j].Value.Hash().Hex()
	})

	txs := make([]*types.Transaction, len(entries))
	for i, e := range entries {
		txs[i] = e.Value
	}
	return txs
}
