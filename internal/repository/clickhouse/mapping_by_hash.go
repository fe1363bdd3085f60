package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/evm-node/internal/model"
)

const mappingByEthereumHashQuery = `
SELECT number, chain_hash
FROM evm_block_mappings FINAL
WHERE ethereum_hash = ?
LIMIT 1`

// MappingByEthereumHash resolves the chain block carrying an EVM block.
func (r *Repository) MappingByEthereumHash(ctx context.Context, hash common.Hash) (mapping model.BlockMapping, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("mapping_by_ethereum_hash", err, start)
	}()

	rows, err := r.conn.Query(ctx, mappingByEthereumHashQuery, hash.Hex())
	if err != nil {
		return model.BlockMapping{}, fmt.Errorf("query mapping: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.BlockMapping{}, fmt.Errorf("iterate mapping: %w", err)
		}
		return model.BlockMapping{}, fmt.Errorf("%w: %s", model.ErrMappingNotFound, hash)
	}

	var (
		number    uint64
		chainHash string
	)
	if err = rows.Scan(&number, &chainHash); err != nil {
		return model.BlockMapping{}, fmt.Errorf("scan mapping: %w", err)
	}

	return model.BlockMapping{
		EthereumHash: hash,
		ChainHash:    common.HexToHash(chainHash),
		Number:       number,
	}, nil
}
