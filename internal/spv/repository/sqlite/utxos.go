package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/model"
	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/wire"
	"github.com/goodnatureofminers/blockinsight7000-spv/pkg/safe"
)

const utxoColumns = `txid, vout, value, locking_script, pub_key_hash, lock_time, block_height`

// AddUTXO inserts utxo, or refreshes its height when the funding transaction is seen again.
func (r *Repository) AddUTXO(ctx context.Context, utxo model.UTXO) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("add_utxo", err, start)
	}()

	const query = `
INSERT INTO utxos (` + utxoColumns + `)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (txid, vout) DO UPDATE SET block_height = excluded.block_height`

	value, err := safe.Int64(utxo.Value)
	if err != nil {
		return fmt.Errorf("utxo value: %w", err)
	}
	_, err = r.db.ExecContext(ctx, query,
		utxo.OutPoint.Hash[:],
		int64(utxo.OutPoint.Index),
		value,
		utxo.LockingScript,
		utxo.PubKeyHash,
		int64(utxo.LockTime),
		int64(utxo.BlockHeight),
	)
	if err != nil {
		return fmt.Errorf("insert utxo %s: %w", utxo.OutPoint, err)
	}
	return nil
}

// UTXOs lists the unspent outputs paying pubKeyHash, smallest first.
func (r *Repository) UTXOs(ctx context.Context, pubKeyHash []byte) ([]model.UTXO, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("utxos", err, start)
	}()

	const query = `
SELECT ` + utxoColumns + `
FROM utxos
WHERE pub_key_hash = ?
ORDER BY value, txid, vout`

	rows, err := r.db.QueryContext(ctx, query, pubKeyHash)
	if err != nil {
		return nil, fmt.Errorf("query utxos: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var utxos []model.UTXO
	for rows.Next() {
		var u model.UTXO
		if u, err = scanUTXO(rows); err != nil {
			return nil, err
		}
		utxos = append(utxos, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate utxos: %w", err)
	}
	return utxos, nil
}

// DeleteUTXO removes the output at outpoint and returns it.
func (r *Repository) DeleteUTXO(ctx context.Context, outpoint wire.OutPoint) (model.UTXO, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("delete_utxo", err, start)
	}()

	const query = `
DELETE FROM utxos
WHERE txid = ? AND vout = ?
RETURNING ` + utxoColumns

	u, err := scanUTXO(r.db.QueryRowContext(ctx, query, outpoint.Hash[:], int64(outpoint.Index)))
	if errors.Is(err, sql.ErrNoRows) {
		err = nil
		return model.UTXO{}, false, nil
	}
	if err != nil {
		return model.UTXO{}, false, fmt.Errorf("delete utxo %s: %w", outpoint, err)
	}
	return u, true, nil
}

// Balance sums the unspent outputs paying pubKeyHash, confirmed or not.
func (r *Repository) Balance(ctx context.Context, pubKeyHash []byte) (uint64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("balance", err, start)
	}()

	var total int64
	err = r.db.QueryRowContext(ctx, `SELECT coalesce(sum(value), 0) FROM utxos WHERE pub_key_hash = ?`, pubKeyHash).
		Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("query balance: %w", err)
	}
	balance, err := safe.Uint64(total)
	if err != nil {
		return 0, fmt.Errorf("balance: %w", err)
	}
	return balance, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUTXO(row scanner) (model.UTXO, error) {
	var (
		u                     model.UTXO
		txid                  []byte
		vout, value           int64
		lockTime, blockHeight int64
		err                   error
	)
	if err = row.Scan(&txid, &vout, &value, &u.LockingScript, &u.PubKeyHash, &lockTime, &blockHeight); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.UTXO{}, err
		}
		return model.UTXO{}, fmt.Errorf("scan utxo: %w", err)
	}
	if err = setHash(&u.OutPoint.Hash, txid); err != nil {
		return model.UTXO{}, err
	}
	if u.OutPoint.Index, err = safe.Uint32(vout); err != nil {
		return model.UTXO{}, fmt.Errorf("utxo index: %w", err)
	}
	if u.Value, err = safe.Uint64(value); err != nil {
		return model.UTXO{}, fmt.Errorf("utxo value: %w", err)
	}
	if u.LockTime, err = safe.Uint32(lockTime); err != nil {
		return model.UTXO{}, fmt.Errorf("utxo lock time: %w", err)
	}
	if u.BlockHeight, err = safe.Uint32(blockHeight); err != nil {
		return model.UTXO{}, fmt.Errorf("utxo height: %w", err)
	}
	return u, nil
}
