package clickhouse

import (
	"context"
	"fmt"
	"time"
)

const maxMappedNumberQuery = `
SELECT count() AS total, coalesce(max(number), toUInt64(0)) AS max_number
FROM evm_block_mappings`

// MaxMappedNumber returns the highest mapped block number. ok is false when
// nothing has been mapped yet.
func (r *Repository) MaxMappedNumber(ctx context.Context) (number uint64, ok bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("max_mapped_number", err, start)
	}()

	rows, err := r.conn.Query(ctx, maxMappedNumberQuery)
	if err != nil {
		return 0, false, fmt.Errorf("query max mapped number: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return 0, false, fmt.Errorf("max mapped number not found")
	}

	var total uint64
	if err = rows.Scan(&total, &number); err != nil {
		return 0, false, fmt.Errorf("scan max mapped number: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, false, fmt.Errorf("iterate max mapped number: %w", err)
	}

	return number, total > 0, nil
}
