package syncer

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/bloom"
	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/model"
	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/wire"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Repository persists the header chain and the wallet. Lookups that can miss
	// return ok=false instead of an error.
	Repository interface {
		AddBlockHeader(ctx context.Context, header model.BlockHeader) error
		LatestBlockHeader(ctx context.Context) (model.BlockHeader, bool, error)
		BlockHeight(ctx context.Context, hash chainhash.Hash) (uint32, bool, error)
		// BlockHashesFrom returns up to limit hashes of consecutive blocks starting at height.
		BlockHashesFrom(ctx context.Context, height uint32, limit int) ([]chainhash.Hash, error)

		AddUTXO(ctx context.Context, utxo model.UTXO) error
		UTXOs(ctx context.Context, pubKeyHash []byte) ([]model.UTXO, error)
		// DeleteUTXO removes the output and returns it, or ok=false when it was not tracked.
		DeleteUTXO(ctx context.Context, outpoint wire.OutPoint) (model.UTXO, bool, error)
		Balance(ctx context.Context, pubKeyHash []byte) (uint64, error)

		AddPayment(ctx context.Context, payment model.Payment) error
		Payments(ctx context.Context) ([]model.Payment, error)
		PaymentHeight(ctx context.Context, txID chainhash.Hash) (uint32, bool, error)
		UpdatePaymentHeight(ctx context.Context, txID chainhash.Hash, height uint32) error

		LastCheckedHeight(ctx context.Context) (uint32, bool, error)
		SetLastCheckedHeight(ctx context.Context, height uint32) error
	}

	// Peer is the part of a peer session the engine drives.
	Peer interface {
		Addr() string
		RemoteHeight() uint32
		FilterLoaded() bool
		SendGetHeaders(locator []chainhash.Hash)
		SendFilterLoad(f *bloom.Filter)
		SendGetData(items []wire.InvVect)
		SendInv(items []wire.InvVect)
		SendTx(tx *wire.MsgTx)
		Disconnect(reason error)
	}

	// BlockRequester queues filtered block requests for batched getdata.
	BlockRequester interface {
		Add(ctx context.Context, req BlockRequest) error
	}

	Resolver interface {
		ResolveSeeds(ctx context.Context, seeds []string, port string) ([]string, error)
	}

	Metrics interface {
		ChainHeight(height uint32)
		HeadersIngested(n int)
		MerkleBlock(status string)
		FalsePositive()
		Payment(direction model.Direction)
		Broadcast(err error)
		Reconnect()
	}
)

// BlockRequest asks peer for the filtered block hash.
type BlockRequest struct {
	Peer Peer
	Hash chainhash.Hash
}
