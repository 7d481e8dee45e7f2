package clickhouse

import (
	"context"
	"fmt"
	"time"
)

const lastCheckedHeightKey = "last_checked_height"

const (
	syncStateQuery = `
SELECT value
FROM spv_sync_state FINAL
WHERE network = ? AND name = ?
LIMIT 1`

	insertSyncStateQuery = `
INSERT INTO spv_sync_state (network, name, value)
VALUES (?, ?, ?)`
)

func (r *Repository) LastCheckedHeight(ctx context.Context) (uint32, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("last_checked_height", err, start)
	}()

	var height uint32
	found, err := r.scanOne(ctx, syncStateQuery, []any{string(r.network), lastCheckedHeightKey}, &height)
	if err != nil {
		return 0, false, fmt.Errorf("query last checked height: %w", err)
	}
	return height, found, nil
}

func (r *Repository) SetLastCheckedHeight(ctx context.Context, height uint32) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("set_last_checked_height", err, start)
	}()

	if err = r.conn.Exec(ctx, insertSyncStateQuery, string(r.network), lastCheckedHeightKey, height); err != nil {
		return fmt.Errorf("insert last checked height: %w", err)
	}
	return nil
}
