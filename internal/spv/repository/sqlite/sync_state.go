package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-spv/pkg/safe"
)

const lastCheckedHeightKey = "last_checked_height"

// LastCheckedHeight is the highest block already scanned for wallet transactions.
func (r *Repository) LastCheckedHeight(ctx context.Context) (uint32, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("last_checked_height", err, start)
	}()

	var value int64
	err = r.db.QueryRowContext(ctx, `SELECT value FROM sync_state WHERE name = ?`, lastCheckedHeightKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		err = nil
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("query last checked height: %w", err)
	}
	height, err := safe.Uint32(value)
	if err != nil {
		return 0, false, fmt.Errorf("last checked height: %w", err)
	}
	return height, true, nil
}

func (r *Repository) SetLastCheckedHeight(ctx context.Context, height uint32) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("set_last_checked_height", err, start)
	}()

	const query = `
INSERT INTO sync_state (name, value) VALUES (?, ?)
ON CONFLICT (name) DO UPDATE SET value = excluded.value`

	if _, err = r.db.ExecContext(ctx, query, lastCheckedHeightKey, int64(height)); err != nil {
		return fmt.Errorf("store last checked height: %w", err)
	}
	return nil
}
