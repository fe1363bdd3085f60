package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/evm-node/internal/model"
)

const mappingsTable = "evm_block_mappings"

const insertMappingsQuery = `
INSERT INTO evm_block_mappings (
	number,
	ethereum_hash,
	chain_hash
) VALUES`

// InsertMappings appends block mapping rows. Rewriting a mapping is harmless:
// the table collapses duplicates of the same (number, ethereum_hash).
func (r *Repository) InsertMappings(ctx context.Context, mappings []model.BlockMapping) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_mappings", err, start)
	}()

	if len(mappings) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertMappingsQuery)
	if err != nil {
		return fmt.Errorf("prepare mappings batch: %w", err)
	}

	for _, m := range mappings {
		if err = batch.Append(m.Number, m.EthereumHash.Hex(), m.ChainHash.Hex()); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append mapping %d: %w", m.Number, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert mappings: %w", err)
	}
	r.metrics.ObserveRows(mappingsTable, len(mappings))
	return nil
}
