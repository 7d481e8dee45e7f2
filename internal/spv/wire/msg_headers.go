package wire

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	// MaxHeadersPerMsg mirrors Bitcoin Core's MAX_HEADERS_RESULTS.
	MaxHeadersPerMsg = 2000
	// MaxLocatorHashes bounds a getheaders locator.
	MaxLocatorHashes = 500
)

// MsgHeaders answers getheaders with up to MaxHeadersPerMsg headers.
type MsgHeaders struct {
	Headers []BlockHeader
}

func (m *MsgHeaders) Command() string { return CmdHeaders }

func (m *MsgHeaders) Encode(w *Writer) {
	w.VarInt(uint64(len(m.Headers)))
	for i := range m.Headers {
		m.Headers[i].Encode(w)
		w.VarInt(0)
	}
}

func (m *MsgHeaders) Decode(r *Reader) error {
	n, err := r.VarInt()
	if err != nil {
		return err
	}
	if n > MaxHeadersPerMsg {
		return fmt.Errorf("%d headers: %w", n, ErrTooManyHeaders)
	}
	m.Headers = make([]BlockHeader, int(n))
	for i := range m.Headers {
		if err := m.Headers[i].Decode(r); err != nil {
			return err
		}
		txCount, err := r.VarInt()
		if err != nil {
			return err
		}
		if txCount != 0 {
			return fmt.Errorf("header %d has %d transactions: %w", i, txCount, ErrNonZeroTxCount)
		}
	}
	return nil
}

// MsgGetHeaders requests headers following the first locator hash the peer knows.
type MsgGetHeaders struct {
	ProtocolVersion uint32
	BlockLocator    []chainhash.Hash
	HashStop        chainhash.Hash
}

func (m *MsgGetHeaders) Command() string { return CmdGetHeaders }

func (m *MsgGetHeaders) Encode(w *Writer) {
	w.Uint32(m.ProtocolVersion)
	w.VarInt(uint64(len(m.BlockLocator)))
	for _, h := range m.BlockLocator {
		w.Hash(h)
	}
	w.Hash(m.HashStop)
}

func (m *MsgGetHeaders) Decode(r *Reader) error {
	var err error
	if m.ProtocolVersion, err = r.Uint32(); err != nil {
		return err
	}
	n, err := r.count(MaxLocatorHashes, chainhash.HashSize)
	if err != nil {
		return err
	}
	m.BlockLocator = make([]chainhash.Hash, n)
	for i := range m.BlockLocator {
		if m.BlockLocator[i], err = r.Hash(); err != nil {
			return err
		}
	}
	m.HashStop, err = r.Hash()
	return err
}
