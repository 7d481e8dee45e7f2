package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/model"
	"github.com/goodnatureofminers/blockinsight7000-spv/pkg/safe"
)

// AddPayment records payment once; later calls for the same txid are ignored.
func (r *Repository) AddPayment(ctx context.Context, payment model.Payment) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("add_payment", err, start)
	}()

	const query = `
INSERT INTO payments (txid, direction, amount, block_height)
VALUES (?, ?, ?, ?)
ON CONFLICT (txid) DO NOTHING`

	amount, err := safe.Int64(payment.Amount)
	if err != nil {
		return fmt.Errorf("payment amount: %w", err)
	}
	_, err = r.db.ExecContext(ctx, query, payment.TxID[:], int64(payment.Direction), amount, int64(payment.BlockHeight))
	if err != nil {
		return fmt.Errorf("insert payment %s: %w", payment.TxID, err)
	}
	return nil
}

// Payments lists every payment in the order it was first seen.
func (r *Repository) Payments(ctx context.Context) ([]model.Payment, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("payments", err, start)
	}()

	rows, err := r.db.QueryContext(ctx, `SELECT txid, direction, amount, block_height FROM payments ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var payments []model.Payment
	for rows.Next() {
		var (
			p                   model.Payment
			txid                []byte
			direction           int32
			amount, blockHeight int64
		)
		if err = rows.Scan(&txid, &direction, &amount, &blockHeight); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		if err = setHash(&p.TxID, txid); err != nil {
			return nil, err
		}
		p.Direction = model.Direction(direction)
		if p.Amount, err = safe.Uint64(amount); err != nil {
			return nil, fmt.Errorf("payment amount: %w", err)
		}
		if p.BlockHeight, err = safe.Uint32(blockHeight); err != nil {
			return nil, fmt.Errorf("payment height: %w", err)
		}
		payments = append(payments, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payments: %w", err)
	}
	return payments, nil
}

func (r *Repository) PaymentHeight(ctx context.Context, txID chainhash.Hash) (uint32, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("payment_height", err, start)
	}()

	var height int64
	err = r.db.QueryRowContext(ctx, `SELECT block_height FROM payments WHERE txid = ?`, txID[:]).Scan(&height)
	if errors.Is(err, sql.ErrNoRows) {
		err = nil
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("query payment height: %w", err)
	}
	h, err := safe.Uint32(height)
	if err != nil {
		return 0, false, fmt.Errorf("payment height: %w", err)
	}
	return h, true, nil
}

func (r *Repository) UpdatePaymentHeight(ctx context.Context, txID chainhash.Hash, height uint32) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("update_payment_height", err, start)
	}()

	_, err = r.db.ExecContext(ctx, `UPDATE payments SET block_height = ? WHERE txid = ?`, int64(height), txID[:])
	if err != nil {
		return fmt.Errorf("update payment %s: %w", txID, err)
	}
	return nil
}
