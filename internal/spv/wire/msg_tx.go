package wire

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	// minTxSize is version + in count + out count + locktime.
	minTxSize     = 10
	minTxInSize   = 41
	minTxOutSize  = 9
	maxTxPerBlock = MaxPayload / minTxSize
	maxTxInPerTx  = MaxPayload / minTxInSize
	maxTxOutPerTx = MaxPayload / minTxOutSize
)

// OutPoint references a previous transaction output.
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

func (o OutPoint) String() string {
	return fmt.Sprintf("%s:%d", o.Hash, o.Index)
}

// TxIn spends an OutPoint.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Sequence         uint32
}

// TxOut locks Value satoshis behind PkScript.
type TxOut struct {
	Value    uint64
	PkScript []byte
}

// MsgTx is a legacy (non-witness) serialized transaction.
type MsgTx struct {
	Version  uint32
	TxIn     []*TxIn
	TxOut    []*TxOut
	LockTime uint32
}

func (m *MsgTx) Command() string { return CmdTx }

// Serialize returns the transaction bytes.
func (m *MsgTx) Serialize() []byte {
	w := NewWriter()
	m.Encode(w)
	return w.Bytes()
}

// TxHash is the double SHA-256 of the serialization. Its String form is the txid.
func (m *MsgTx) TxHash() chainhash.Hash {
	return chainhash.DoubleHashH(m.Serialize())
}

// Copy returns a deep copy so signers can mutate scripts freely.
func (m *MsgTx) Copy() *MsgTx {
	out := &MsgTx{Version: m.Version, LockTime: m.LockTime}
	for _, in := range m.TxIn {
		out.TxIn = append(out.TxIn, &TxIn{
			PreviousOutPoint: in.PreviousOutPoint,
			SignatureScript:  append([]byte(nil), in.SignatureScript...),
			Sequence:         in.Sequence,
		})
	}
	for _, o := range m.TxOut {
		out.TxOut = append(out.TxOut, &TxOut{Value: o.Value, PkScript: append([]byte(nil), o.PkScript...)})
	}
	return out
}

func (m *MsgTx) Encode(w *Writer) {
	w.Uint32(m.Version)
	w.VarInt(uint64(len(m.TxIn)))
	for _, in := range m.TxIn {
		w.Hash(in.PreviousOutPoint.Hash)
		w.Uint32(in.PreviousOutPoint.Index)
		w.VarBytes(in.SignatureScript)
		w.Uint32(in.Sequence)
	}
	w.VarInt(uint64(len(m.TxOut)))
	for _, out := range m.TxOut {
		w.Uint64(out.Value)
		w.VarBytes(out.PkScript)
	}
	w.Uint32(m.LockTime)
}

func (m *MsgTx) Decode(r *Reader) error {
	var err error
	if m.Version, err = r.Uint32(); err != nil {
		return err
	}
	nIn, err := r.count(maxTxInPerTx, minTxInSize)
	if err != nil {
		return err
	}
	m.TxIn = make([]*TxIn, 0, nIn)
	for i := 0; i < nIn; i++ {
		in := &TxIn{}
		if in.PreviousOutPoint.Hash, err = r.Hash(); err != nil {
			return err
		}
		if in.PreviousOutPoint.Index, err = r.Uint32(); err != nil {
			return err
		}
		if in.SignatureScript, err = r.VarBytes(); err != nil {
			return err
		}
		if in.Sequence, err = r.Uint32(); err != nil {
			return err
		}
		m.TxIn = append(m.TxIn, in)
	}
	nOut, err := r.count(maxTxOutPerTx, minTxOutSize)
	if err != nil {
		return err
	}
	m.TxOut = make([]*TxOut, 0, nOut)
	for i := 0; i < nOut; i++ {
		out := &TxOut{}
		if out.Value, err = r.Uint64(); err != nil {
			return err
		}
		if out.PkScript, err = r.VarBytes(); err != nil {
			return err
		}
		m.TxOut = append(m.TxOut, out)
	}
	m.LockTime, err = r.Uint32()
	return err
}
