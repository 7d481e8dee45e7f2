package transport

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/model"
	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/syncer"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Wallet is the part of the sync engine the handlers expose.
	Wallet interface {
		Status() syncer.Status
		Balance(ctx context.Context) (uint64, error)
		Payments(ctx context.Context) ([]model.Payment, error)
		Send(ctx context.Context, address string, amount uint64) (chainhash.Hash, error)
	}
)
