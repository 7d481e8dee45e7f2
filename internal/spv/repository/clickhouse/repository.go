// Package clickhouse stores the header chain and the wallet in ClickHouse.
//
// Tables are ReplacingMergeTree keyed by network: a delete or update is a new
// row with a later updated_at, and reads use FINAL or argMax to see the latest
// version of each key.
package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE
//go:generate mockgen -destination=mocks_driver_test.go -package=$GOPACKAGE github.com/ClickHouse/clickhouse-go/v2/lib/driver Rows

type (
	// Conn is the part of clickhouse.Conn the repository uses.
	Conn interface {
		Exec(ctx context.Context, query string, args ...any) error
		Query(ctx context.Context, query string, args ...any) (driver.Rows, error)
		Close() error
	}

	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

type Repository struct {
	conn    Conn
	network model.Network
	metrics Metrics
}

func NewRepository(dsn string, network model.Network, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}
	if network == "" {
		return nil, errors.New("clickhouse network is required")
	}
	if metrics == nil {
		return nil, errors.New("clickhouse metrics is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: conn, network: network, metrics: metrics}, nil
}

func (r *Repository) Close() error {
	return r.conn.Close()
}

// scanOne scans the first row of query into dest and reports whether there was one.
func (r *Repository) scanOne(ctx context.Context, query string, args []any, dest ...any) (found bool, err error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return false, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return false, rows.Err()
	}
	if err = rows.Scan(dest...); err != nil {
		return false, err
	}
	return true, rows.Err()
}

func parseHash(s string) (chainhash.Hash, error) {
	h, err := chainhash.NewHashFromStr(s)
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("decode hash %q: %w", s, err)
	}
	return *h, nil
}
