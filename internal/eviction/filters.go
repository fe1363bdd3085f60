package eviction

import (
	"fmt"
	"sync/atomic"

	ethereum "github.com/ethereum/go-ethereum"
)

// FilterKind selects what an installed filter matches.
type FilterKind string

var (
	FilterLogs                FilterKind = "logs"
	FilterBlocks              FilterKind = "blocks"
	FilterPendingTransactions FilterKind = "pending_transactions"
)

// FilterID is the hex identifier handed out to filter owners.
type FilterID string

// Filter is an installed filter. Criteria is only meaningful for log filters.
type Filter struct {
	Kind     FilterKind
	Criteria ethereum.FilterQuery
}

// FilterPool is the registry of installed filters.
type FilterPool struct {
	*Registry[FilterID, Filter]
	next atomic.Uint64
}

func NewFilterPool() *FilterPool {
	return &FilterPool{Registry: NewRegistry[FilterID, Filter]()}
}

// Install registers a filter created at height and returns its id.
func (p *FilterPool) Install(kind FilterKind, criteria ethereum.FilterQuery, height uint64) FilterID {
	id := FilterID(fmt.Sprintf("0x%x", p.next.Add(1)))
	p.Insert(id, Filter{Kind: kind, Criteria: criteria}, height)
	return id
}

func (p *FilterPool) Filter(id FilterID) (Filter, bool) {
	e, ok := p.Get(id)
	return e.Value, ok
}

// Uninstall removes a filter and reports whether it existed.
func (p *FilterPool) Uninstall(id FilterID) bool {
	return p.Remove(id)
}
