package wire

import (
	"net"
)

const (
	// MinVersionPayload is the shortest version payload accepted.
	MinVersionPayload = 85

	// Protocol versions that introduced optional version fields.
	versionAddrFrom = 106
	versionRelay    = 70001

	// SFNodeBloom advertises BIP37 filtered-block support.
	SFNodeBloom uint64 = 1 << 2
)

// NetAddress is the version-message form of a peer address (no timestamp).
type NetAddress struct {
	Services uint64
	IP       net.IP
	Port     uint16
}

// NewNetAddress builds a NetAddress from a TCP address.
func NewNetAddress(addr *net.TCPAddr, services uint64) NetAddress {
	if addr == nil {
		return NetAddress{Services: services, IP: net.IPv6zero}
	}
	return NetAddress{Services: services, IP: addr.IP, Port: uint16(addr.Port)}
}

func (a NetAddress) encode(w *Writer) {
	w.Uint64(a.Services)
	ip := a.IP.To16()
	if ip == nil {
		ip = net.IPv6zero
	}
	w.Write(ip)
	w.Uint16BE(a.Port)
}

func (a *NetAddress) decode(r *Reader) error {
	var err error
	if a.Services, err = r.Uint64(); err != nil {
		return err
	}
	ip, err := r.Bytes(16)
	if err != nil {
		return err
	}
	a.IP = append(net.IP(nil), ip...)
	a.Port, err = r.Uint16BE()
	return err
}

// MsgVersion opens the handshake.
type MsgVersion struct {
	ProtocolVersion int32
	Services        uint64
	Timestamp       int64
	AddrRecv        NetAddress
	AddrFrom        NetAddress
	Nonce           uint64
	UserAgent       string
	StartHeight     int32
	Relay           bool
}

func (m *MsgVersion) Command() string { return CmdVersion }

// HasStartHeight reports whether the sender's protocol version carries a start height.
func (m *MsgVersion) HasStartHeight() bool {
	return m.ProtocolVersion >= versionAddrFrom
}

func (m *MsgVersion) Encode(w *Writer) {
	w.Int32(m.ProtocolVersion)
	w.Uint64(m.Services)
	w.Int64(m.Timestamp)
	m.AddrRecv.encode(w)
	m.AddrFrom.encode(w)
	w.Uint64(m.Nonce)
	w.VarString(m.UserAgent)
	w.Int32(m.StartHeight)
	if m.Relay {
		w.Uint8(1)
	} else {
		w.Uint8(0)
	}
}

func (m *MsgVersion) Decode(r *Reader) error {
	if r.Remaining() < MinVersionPayload {
		return ErrVersionTooShort
	}
	var err error
	if m.ProtocolVersion, err = r.Int32(); err != nil {
		return err
	}
	if m.Services, err = r.Uint64(); err != nil {
		return err
	}
	if m.Timestamp, err = r.Int64(); err != nil {
		return err
	}
	if err = m.AddrRecv.decode(r); err != nil {
		return err
	}

	m.Relay = true
	if m.ProtocolVersion < versionAddrFrom || r.Remaining() == 0 {
		return nil
	}
	if err = m.AddrFrom.decode(r); err != nil {
		return err
	}
	if m.Nonce, err = r.Uint64(); err != nil {
		return err
	}
	if m.UserAgent, err = r.VarString(); err != nil {
		return err
	}
	if m.StartHeight, err = r.Int32(); err != nil {
		return err
	}
	if m.ProtocolVersion >= versionRelay && r.Remaining() > 0 {
		relay, err := r.Uint8()
		if err != nil {
			return err
		}
		m.Relay = relay != 0
	}
	return nil
}

// MsgVerAck acknowledges a version message.
type MsgVerAck struct{}

func (m *MsgVerAck) Command() string      { return CmdVerAck }
func (m *MsgVerAck) Encode(*Writer)       {}
func (m *MsgVerAck) Decode(*Reader) error { return nil }

// MsgPing asks the peer to echo Nonce in a pong.
type MsgPing struct {
	Nonce uint64
}

func (m *MsgPing) Command() string  { return CmdPing }
func (m *MsgPing) Encode(w *Writer) { w.Uint64(m.Nonce) }
func (m *MsgPing) Decode(r *Reader) (err error) {
	m.Nonce, err = r.Uint64()
	return err
}

// MsgPong answers a ping.
type MsgPong struct {
	Nonce uint64
}

func (m *MsgPong) Command() string  { return CmdPong }
func (m *MsgPong) Encode(w *Writer) { w.Uint64(m.Nonce) }
func (m *MsgPong) Decode(r *Reader) (err error) {
	m.Nonce, err = r.Uint64()
	return err
}
