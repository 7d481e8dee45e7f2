package peer

import (
	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/wire"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Handler receives session events. Calls for one session are made from its
	// reader goroutine, one at a time, in arrival order.
	Handler interface {
		PeerDidHandshake(s *Session)
		PeerDidReceiveHeaders(s *Session, headers []wire.BlockHeader)
		PeerDidReceiveMerkleBlock(s *Session, mb *wire.MsgMerkleBlock)
		// PeerDidReceiveTransaction passes the merkle block the transaction was
		// delivered with, or nil for a loose (mempool) transaction.
		PeerDidReceiveTransaction(s *Session, tx *wire.MsgTx, mb *wire.MsgMerkleBlock)
		PeerDidRequestData(s *Session, items []wire.InvVect)
		PeerDidDisconnect(s *Session, reason error)
	}

	Metrics interface {
		MessageReceived(command string)
		MessageSent(command string)
		Handshake(err error)
		Disconnect(reason string)
		InvalidMerkleBlock()
	}
)
