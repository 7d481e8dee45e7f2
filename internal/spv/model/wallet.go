package model

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/wire"
)

// UTXO is an output paying one of the watched keys that has not been spent yet.
type UTXO struct {
	OutPoint      wire.OutPoint
	Value         uint64
	LockingScript []byte
	PubKeyHash    []byte
	LockTime      uint32
	// BlockHeight is UnknownHeight until the funding transaction confirms.
	BlockHeight uint32
}

// Direction tells whether a payment moved funds out of or into the wallet.
type Direction int32

const (
	Sent     Direction = 0
	Received Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Sent:
		return "sent"
	case Received:
		return "received"
	default:
		return "unknown"
	}
}

// Payment records a wallet-relevant transaction.
type Payment struct {
	TxID      chainhash.Hash
	Direction Direction
	Amount    uint64
	// BlockHeight is UnknownHeight while unconfirmed.
	BlockHeight uint32
}

// Confirmed reports whether the payment has been seen in a block.
func (p Payment) Confirmed() bool {
	return p.BlockHeight != UnknownHeight
}
