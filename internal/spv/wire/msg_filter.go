package wire

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// MsgFilterLoad installs a bloom filter on the remote peer.
type MsgFilterLoad struct {
	Filter    []byte
	HashFuncs uint32
	Tweak     uint32
	Flags     uint8
}

func (m *MsgFilterLoad) Command() string { return CmdFilterLoad }

func (m *MsgFilterLoad) Encode(w *Writer) {
	w.VarBytes(m.Filter)
	w.Uint32(m.HashFuncs)
	w.Uint32(m.Tweak)
	w.Uint8(m.Flags)
}

func (m *MsgFilterLoad) Decode(r *Reader) error {
	var err error
	if m.Filter, err = r.VarBytes(); err != nil {
		return err
	}
	if m.HashFuncs, err = r.Uint32(); err != nil {
		return err
	}
	if m.Tweak, err = r.Uint32(); err != nil {
		return err
	}
	m.Flags, err = r.Uint8()
	return err
}

// MsgReject reports why a peer refused one of our messages.
type MsgReject struct {
	Cmd    string
	Code   uint8
	Reason string
	// Hash is set for rejected tx and block messages.
	Hash *chainhash.Hash
}

func (m *MsgReject) Command() string { return CmdReject }

func (m *MsgReject) Encode(w *Writer) {
	w.VarString(m.Cmd)
	w.Uint8(m.Code)
	w.VarString(m.Reason)
	if m.Hash != nil {
		w.Hash(*m.Hash)
	}
}

func (m *MsgReject) Decode(r *Reader) error {
	var err error
	if m.Cmd, err = r.VarString(); err != nil {
		return err
	}
	if m.Code, err = r.Uint8(); err != nil {
		return err
	}
	if m.Reason, err = r.VarString(); err != nil {
		return err
	}
	if r.Remaining() >= chainhash.HashSize {
		h, err := r.Hash()
		if err != nil {
			return err
		}
		m.Hash = &h
	}
	return nil
}
