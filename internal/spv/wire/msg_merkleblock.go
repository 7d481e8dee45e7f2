package wire

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const maxFlagBytes = MaxPayload / 8

// MsgMerkleBlock is a header plus a partial merkle tree over the block's transactions.
// Flags are packed LSB first within each byte.
type MsgMerkleBlock struct {
	Header       BlockHeader
	Transactions uint32
	Hashes       []chainhash.Hash
	Flags        []byte
}

func (m *MsgMerkleBlock) Command() string { return CmdMerkleBlock }

// BlockHash is the hash of the embedded header.
func (m *MsgMerkleBlock) BlockHash() chainhash.Hash {
	return m.Header.BlockHash()
}

func (m *MsgMerkleBlock) Encode(w *Writer) {
	m.Header.Encode(w)
	w.Uint32(m.Transactions)
	w.VarInt(uint64(len(m.Hashes)))
	for _, h := range m.Hashes {
		w.Hash(h)
	}
	w.VarBytes(m.Flags)
}

func (m *MsgMerkleBlock) Decode(r *Reader) error {
	if err := m.Header.Decode(r); err != nil {
		return err
	}
	var err error
	if m.Transactions, err = r.Uint32(); err != nil {
		return err
	}
	n, err := r.count(maxTxPerBlock, chainhash.HashSize)
	if err != nil {
		return err
	}
	m.Hashes = make([]chainhash.Hash, n)
	for i := range m.Hashes {
		if m.Hashes[i], err = r.Hash(); err != nil {
			return err
		}
	}
	flagCount, err := r.count(maxFlagBytes, 1)
	if err != nil {
		return err
	}
	flags, err := r.Bytes(flagCount)
	if err != nil {
		return err
	}
	m.Flags = append([]byte(nil), flags...)
	return nil
}
