package wire

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// MaxInvPerMsg bounds inv and getdata lists.
const MaxInvPerMsg = 50000

// InvType identifies the object an inventory vector refers to.
type InvType uint32

const (
	InvTypeError         InvType = 0
	InvTypeTx            InvType = 1
	InvTypeBlock         InvType = 2
	InvTypeFilteredBlock InvType = 3
	InvTypeCompactBlock  InvType = 4
)

func (t InvType) String() string {
	switch t {
	case InvTypeError:
		return "error"
	case InvTypeTx:
		return "tx"
	case InvTypeBlock:
		return "block"
	case InvTypeFilteredBlock:
		return "filtered_block"
	case InvTypeCompactBlock:
		return "compact_block"
	default:
		return fmt.Sprintf("unknown(%d)", uint32(t))
	}
}

// InvVect is a typed object hash.
type InvVect struct {
	Type InvType
	Hash chainhash.Hash
}

const invVectSize = 36

func encodeInvList(w *Writer, list []InvVect) {
	w.VarInt(uint64(len(list)))
	for _, iv := range list {
		w.Uint32(uint32(iv.Type))
		w.Hash(iv.Hash)
	}
}

func decodeInvList(r *Reader) ([]InvVect, error) {
	n, err := r.count(MaxInvPerMsg, invVectSize)
	if err != nil {
		return nil, err
	}
	list := make([]InvVect, n)
	for i := range list {
		t, err := r.Uint32()
		if err != nil {
			return nil, err
		}
		list[i].Type = InvType(t)
		if list[i].Hash, err = r.Hash(); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// MsgInv announces objects the sender has.
type MsgInv struct {
	InvList []InvVect
}

func (m *MsgInv) Command() string  { return CmdInv }
func (m *MsgInv) Encode(w *Writer) { encodeInvList(w, m.InvList) }
func (m *MsgInv) Decode(r *Reader) (err error) {
	m.InvList, err = decodeInvList(r)
	return err
}

// MsgGetData requests objects by inventory vector.
type MsgGetData struct {
	InvList []InvVect
}

func (m *MsgGetData) Command() string  { return CmdGetData }
func (m *MsgGetData) Encode(w *Writer) { encodeInvList(w, m.InvList) }
func (m *MsgGetData) Decode(r *Reader) (err error) {
	m.InvList, err = decodeInvList(r)
	return err
}
