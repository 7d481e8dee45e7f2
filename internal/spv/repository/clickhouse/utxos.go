package clickhouse

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/model"
	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/wire"
)

const (
	insertUTXOQuery = `
INSERT INTO spv_utxos (network, txid, vout, value, locking_script, pub_key_hash, lock_time, block_height, spent)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	utxosQuery = `
SELECT txid, vout, value, locking_script, pub_key_hash, lock_time, block_height
FROM spv_utxos FINAL
WHERE network = ? AND pub_key_hash = ? AND spent = 0
ORDER BY value, txid, vout`

	utxoQuery = `
SELECT txid, vout, value, locking_script, pub_key_hash, lock_time, block_height
FROM spv_utxos FINAL
WHERE network = ? AND txid = ? AND vout = ? AND spent = 0
LIMIT 1`

	balanceQuery = `
SELECT sum(value)
FROM spv_utxos FINAL
WHERE network = ? AND pub_key_hash = ? AND spent = 0`
)

// AddUTXO writes utxo as unspent. A later row for the same outpoint replaces it.
func (r *Repository) AddUTXO(ctx context.Context, utxo model.UTXO) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("add_utxo", err, start)
	}()

	if err = r.insertUTXO(ctx, utxo, false); err != nil {
		return fmt.Errorf("insert utxo %s: %w", utxo.OutPoint, err)
	}
	return nil
}

func (r *Repository) UTXOs(ctx context.Context, pubKeyHash []byte) ([]model.UTXO, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("utxos", err, start)
	}()

	rows, err := r.conn.Query(ctx, utxosQuery, string(r.network), hex.EncodeToString(pubKeyHash))
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
		var row utxoRow
		if err = rows.Scan(row.dest()...); err != nil {
			return nil, fmt.Errorf("scan utxo: %w", err)
		}
		var u model.UTXO
		if u, err = row.model(); err != nil {
			return nil, err
		}
		utxos = append(utxos, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate utxos: %w", err)
	}
	return utxos, nil
}

// DeleteUTXO marks the output at outpoint spent and returns it.
func (r *Repository) DeleteUTXO(ctx context.Context, outpoint wire.OutPoint) (model.UTXO, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("delete_utxo", err, start)
	}()

	var row utxoRow
	found, err := r.scanOne(ctx, utxoQuery,
		[]any{string(r.network), outpoint.Hash.String(), outpoint.Index}, row.dest()...)
	if err != nil {
		return model.UTXO{}, false, fmt.Errorf("query utxo %s: %w", outpoint, err)
	}
	if !found {
		return model.UTXO{}, false, nil
	}
	u, err := row.model()
	if err != nil {
		return model.UTXO{}, false, err
	}
	if err = r.insertUTXO(ctx, u, true); err != nil {
		return model.UTXO{}, false, fmt.Errorf("mark utxo %s spent: %w", outpoint, err)
	}
	return u, true, nil
}

func (r *Repository) Balance(ctx context.Context, pubKeyHash []byte) (uint64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("balance", err, start)
	}()

	var balance uint64
	if _, err = r.scanOne(ctx, balanceQuery, []any{string(r.network), hex.EncodeToString(pubKeyHash)}, &balance); err != nil {
		return 0, fmt.Errorf("query balance: %w", err)
	}
	return balance, nil
}

func (r *Repository) insertUTXO(ctx context.Context, u model.UTXO, spent bool) error {
	var flag uint8
	if spent {
		flag = 1
	}
	return r.conn.Exec(ctx, insertUTXOQuery,
		string(r.network),
		u.OutPoint.Hash.String(),
		u.OutPoint.Index,
		u.Value,
		hex.EncodeToString(u.LockingScript),
		hex.EncodeToString(u.PubKeyHash),
		u.LockTime,
		u.BlockHeight,
		flag,
	)
}

type utxoRow struct {
	txid          string
	vout          uint32
	value         uint64
	lockingScript string
	pubKeyHash    string
	lockTime      uint32
	blockHeight   uint32
}

func (u *utxoRow) dest() []any {
	return []any{&u.txid, &u.vout, &u.value, &u.lockingScript, &u.pubKeyHash, &u.lockTime, &u.blockHeight}
}

func (u *utxoRow) model() (model.UTXO, error) {
	hash, err := parseHash(u.txid)
	if err != nil {
		return model.UTXO{}, err
	}
	script, err := hex.DecodeString(u.lockingScript)
	if err != nil {
		return model.UTXO{}, fmt.Errorf("decode locking script: %w", err)
	}
	pkh, err := hex.DecodeString(u.pubKeyHash)
	if err != nil {
		return model.UTXO{}, fmt.Errorf("decode pub key hash: %w", err)
	}
	return model.UTXO{
		OutPoint:      wire.OutPoint{Hash: hash, Index: u.vout},
		Value:         u.value,
		LockingScript: script,
		PubKeyHash:    pkh,
		LockTime:      u.lockTime,
		BlockHeight:   u.blockHeight,
	}, nil
}
