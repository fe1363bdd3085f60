package mappingsync

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/evm-node/internal/model"
)

// MemoryStore keeps mappings in process memory. It is the default store when no
// database is configured.
type MemoryStore struct {
	mu       sync.RWMutex
	byNumber map[uint64]model.BlockMapping
	byHash   map[common.Hash]model.BlockMapping
	max      uint64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byNumber: make(map[uint64]model.BlockMapping),
		byHash:   make(map[common.Hash]model.BlockMapping),
	}
}

func (s *MemoryStore) InsertMappings(_ context.Context, mappings []model.BlockMapping) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range mappings {
		if _, ok := s.byNumber[m.Number]; ok {
			continue
		}
		s.byNumber[m.Number] = m
		s.byHash[m.EthereumHash] = m
		if m.Number > s.max {
			s.max = m.Number
		}
	}
	return nil
}

func (s *MemoryStore) MaxMappedNumber(context.Context) (uint64, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.max, len(s.byNumber) > 0, nil
}

// MappingByEthereumHash returns the mapping for an EVM block hash.
func (s *MemoryStore) MappingByEthereumHash(_ context.Context, hash common.Hash) (model.BlockMapping, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.byHash[hash]
	if !ok {
		return model.BlockMapping{}, fmt.Errorf("%w: %s", model.ErrMappingNotFound, hash)
	}
	return m, nil
}
