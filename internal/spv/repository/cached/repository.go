// Package cached puts in-memory LRU caches in front of a wallet repository for
// the lookups the sync engine repeats on every merkle block and transaction.
package cached

import (
	"context"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/model"
	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/syncer"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE
//go:generate mockgen -destination=mocks_repository_test.go -package=$GOPACKAGE github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/syncer Repository

const (
	blockHeightCache   = "block_height"
	paymentHeightCache = "payment_height"
)

type Metrics interface {
	Lookup(cache string, hit bool)
}

// Repository caches block heights by hash and payment heights by txid. Every
// other call goes straight to the wrapped store.
type Repository struct {
	syncer.Repository

	// byHash only holds hashes that byHeight still maps back to, so a header
	// replaced at its height drops out of both.
	byHeight *lru.Cache[uint32, chainhash.Hash]
	byHash   *lru.Cache[chainhash.Hash, uint32]
	payments *lru.Cache[chainhash.Hash, uint32]
	metrics  Metrics
}

func NewRepository(repo syncer.Repository, size int, metrics Metrics) (*Repository, error) {
	if repo == nil {
		return nil, errors.New("cached repository is required")
	}
	if metrics == nil {
		return nil, errors.New("cached metrics is required")
	}

	byHash, err := lru.New[chainhash.Hash, uint32](size)
	if err != nil {
		return nil, fmt.Errorf("create block height cache: %w", err)
	}
	byHeight, err := lru.NewWithEvict[uint32, chainhash.Hash](size, func(_ uint32, hash chainhash.Hash) {
		byHash.Remove(hash)
	})
	if err != nil {
		return nil, fmt.Errorf("create block hash cache: %w", err)
	}
	payments, err := lru.New[chainhash.Hash, uint32](size)
	if err != nil {
		return nil, fmt.Errorf("create payment height cache: %w", err)
	}

	return &Repository{
		Repository: repo,
		byHeight:   byHeight,
		byHash:     byHash,
		payments:   payments,
		metrics:    metrics,
	}, nil
}

func (r *Repository) AddBlockHeader(ctx context.Context, header model.BlockHeader) error {
	if err := r.Repository.AddBlockHeader(ctx, header); err != nil {
		return err
	}
	r.remember(header.Height, header.BlockHash())
	return nil
}

func (r *Repository) BlockHeight(ctx context.Context, hash chainhash.Hash) (uint32, bool, error) {
	if height, ok := r.byHash.Get(hash); ok {
		r.metrics.Lookup(blockHeightCache, true)
		return height, true, nil
	}
	r.metrics.Lookup(blockHeightCache, false)

	height, found, err := r.Repository.BlockHeight(ctx, hash)
	if err != nil || !found {
		return height, found, err
	}
	r.remember(height, hash)
	return height, true, nil
}

func (r *Repository) remember(height uint32, hash chainhash.Hash) {
	if old, ok := r.byHeight.Peek(height); ok && old != hash {
		r.byHash.Remove(old)
	}
	r.byHeight.Add(height, hash)
	r.byHash.Add(hash, height)
}

func (r *Repository) AddPayment(ctx context.Context, payment model.Payment) error {
	// The store keeps the first version of a payment, so the cache cannot
	// assume this one won.
	r.payments.Remove(payment.TxID)
	return r.Repository.AddPayment(ctx, payment)
}

func (r *Repository) PaymentHeight(ctx context.Context, txID chainhash.Hash) (uint32, bool, error) {
	if height, ok := r.payments.Get(txID); ok {
		r.metrics.Lookup(paymentHeightCache, true)
		return height, true, nil
	}
	r.metrics.Lookup(paymentHeightCache, false)

	height, found, err := r.Repository.PaymentHeight(ctx, txID)
	if err != nil || !found {
		return height, found, err
	}
	r.payments.Add(txID, height)
	return height, true, nil
}

func (r *Repository) UpdatePaymentHeight(ctx context.Context, txID chainhash.Hash, height uint32) error {
	if err := r.Repository.UpdatePaymentHeight(ctx, txID, height); err != nil {
		r.payments.Remove(txID)
		return err
	}
	if r.payments.Contains(txID) {
		r.payments.Add(txID, height)
	}
	return nil
}
