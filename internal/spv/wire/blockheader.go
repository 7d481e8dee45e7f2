package wire

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// BlockHeaderSize is the serialized size of a header without the tx count.
const BlockHeaderSize = 80

// BlockHeader is the 80-byte block header.
type BlockHeader struct {
	Version    int32
	PrevBlock  chainhash.Hash
	MerkleRoot chainhash.Hash
	Timestamp  uint32
	Bits       uint32
	Nonce      uint32
}

// BlockHash is the double SHA-256 of the serialized header.
func (h *BlockHeader) BlockHash() chainhash.Hash {
	w := NewWriter()
	h.Encode(w)
	return chainhash.DoubleHashH(w.Bytes())
}

func (h *BlockHeader) Encode(w *Writer) {
	w.Int32(h.Version)
	w.Hash(h.PrevBlock)
	w.Hash(h.MerkleRoot)
	w.Uint32(h.Timestamp)
	w.Uint32(h.Bits)
	w.Uint32(h.Nonce)
}

func (h *BlockHeader) Decode(r *Reader) error {
	var err error
	if h.Version, err = r.Int32(); err != nil {
		return err
	}
	if h.PrevBlock, err = r.Hash(); err != nil {
		return err
	}
	if h.MerkleRoot, err = r.Hash(); err != nil {
		return err
	}
	if h.Timestamp, err = r.Uint32(); err != nil {
		return err
	}
	if h.Bits, err = r.Uint32(); err != nil {
		return err
	}
	h.Nonce, err = r.Uint32()
	return err
}

// MsgBlock is a full block. The SPV node never requests one but decodes it if pushed.
type MsgBlock struct {
	Header       BlockHeader
	Transactions []*MsgTx
}

func (m *MsgBlock) Command() string { return CmdBlock }

func (m *MsgBlock) Encode(w *Writer) {
	m.Header.Encode(w)
	w.VarInt(uint64(len(m.Transactions)))
	for _, tx := range m.Transactions {
		tx.Encode(w)
	}
}

func (m *MsgBlock) Decode(r *Reader) error {
	if err := m.Header.Decode(r); err != nil {
		return err
	}
	n, err := r.count(maxTxPerBlock, minTxSize)
	if err != nil {
		return err
	}
	m.Transactions = make([]*MsgTx, 0, n)
	for i := 0; i < n; i++ {
		tx := &MsgTx{}
		if err := tx.Decode(r); err != nil {
			return err
		}
		m.Transactions = append(m.Transactions, tx)
	}
	return nil
}
