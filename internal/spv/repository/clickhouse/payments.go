package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/model"
)

const (
	insertPaymentQuery = `
INSERT INTO spv_payments (network, txid, direction, amount, block_height)
VALUES (?, ?, ?, ?, ?)`

	paymentsQuery = `
SELECT txid, direction, amount, block_height
FROM spv_payments FINAL
WHERE network = ?
ORDER BY first_seen, txid`

	paymentHeightQuery = `
SELECT block_height
FROM spv_payments FINAL
WHERE network = ? AND txid = ?
LIMIT 1`

	updatePaymentHeightQuery = `
INSERT INTO spv_payments (network, txid, direction, amount, block_height, first_seen)
SELECT network, txid, direction, amount, ?, first_seen
FROM spv_payments FINAL
WHERE network = ? AND txid = ?`
)

// AddPayment records payment once; later calls for the same txid are ignored.
func (r *Repository) AddPayment(ctx context.Context, payment model.Payment) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("add_payment", err, start)
	}()

	var height uint32
	found, err := r.scanOne(ctx, paymentHeightQuery, []any{string(r.network), payment.TxID.String()}, &height)
	if err != nil {
		return fmt.Errorf("query payment %s: %w", payment.TxID, err)
	}
	if found {
		return nil
	}

	err = r.conn.Exec(ctx, insertPaymentQuery,
		string(r.network),
		payment.TxID.String(),
		int32(payment.Direction),
		payment.Amount,
		payment.BlockHeight,
	)
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

	rows, err := r.conn.Query(ctx, paymentsQuery, string(r.network))
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
			p         model.Payment
			txid      string
			direction int32
		)
		if err = rows.Scan(&txid, &direction, &p.Amount, &p.BlockHeight); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		if p.TxID, err = parseHash(txid); err != nil {
			return nil, err
		}
		p.Direction = model.Direction(direction)
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

	var height uint32
	found, err := r.scanOne(ctx, paymentHeightQuery, []any{string(r.network), txID.String()}, &height)
	if err != nil {
		return 0, false, fmt.Errorf("query payment height: %w", err)
	}
	return height, found, nil
}

// UpdatePaymentHeight writes a new version of the payment row carrying height.
func (r *Repository) UpdatePaymentHeight(ctx context.Context, txID chainhash.Hash, height uint32) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("update_payment_height", err, start)
	}()

	if err = r.conn.Exec(ctx, updatePaymentHeightQuery, height, string(r.network), txID.String()); err != nil {
		return fmt.Errorf("update payment %s: %w", txID, err)
	}
	return nil
}
