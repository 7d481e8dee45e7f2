package wire

import (
	"bytes"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	// MessageHeaderSize is magic(4) + command(12) + length(4) + checksum(4).
	MessageHeaderSize = 24
	// CommandSize is the NUL-padded command field width.
	CommandSize = 12
	// MaxPayload bounds the payload length accepted from a peer.
	MaxPayload = 32 * 1024 * 1024
)

const (
	CmdVersion     = "version"
	CmdVerAck      = "verack"
	CmdPing        = "ping"
	CmdPong        = "pong"
	CmdHeaders     = "headers"
	CmdGetHeaders  = "getheaders"
	CmdInv         = "inv"
	CmdGetData     = "getdata"
	CmdMerkleBlock = "merkleblock"
	CmdTx          = "tx"
	CmdBlock       = "block"
	CmdFilterLoad  = "filterload"
	CmdReject      = "reject"
)

// Message is a typed protocol payload.
type Message interface {
	Command() string
	Encode(w *Writer)
	Decode(r *Reader) error
}

// MessageHeader precedes every payload on the wire. Magic is big-endian there.
type MessageHeader struct {
	Magic    uint32
	Command  string
	Length   uint32
	Checksum [4]byte
}

// DecodeMessageHeader parses exactly MessageHeaderSize bytes.
func DecodeMessageHeader(b []byte) (MessageHeader, error) {
	var hdr MessageHeader
	r := NewReader(b)
	magic, err := r.Uint32BE()
	if err != nil {
		return hdr, err
	}
	cmd, err := r.Bytes(CommandSize)
	if err != nil {
		return hdr, err
	}
	length, err := r.Uint32()
	if err != nil {
		return hdr, err
	}
	sum, err := r.Bytes(4)
	if err != nil {
		return hdr, err
	}
	hdr.Magic = magic
	hdr.Command = string(bytes.TrimRight(cmd, "\x00"))
	hdr.Length = length
	copy(hdr.Checksum[:], sum)
	return hdr, nil
}

// Encode writes the 24-byte header.
func (h MessageHeader) Encode(w *Writer) {
	w.Uint32BE(h.Magic)
	var cmd [CommandSize]byte
	copy(cmd[:], h.Command)
	w.Write(cmd[:])
	w.Uint32(h.Length)
	w.Write(h.Checksum[:])
}

// Checksum returns the first four bytes of the payload's double SHA-256.
func Checksum(payload []byte) [4]byte {
	var sum [4]byte
	copy(sum[:], chainhash.DoubleHashB(payload))
	return sum
}

// Frame serializes m with its header for the given network magic.
func Frame(magic uint32, m Message) []byte {
	payload := NewWriter()
	m.Encode(payload)

	w := NewWriter()
	MessageHeader{
		Magic:    magic,
		Command:  m.Command(),
		Length:   uint32(payload.Len()),
		Checksum: Checksum(payload.Bytes()),
	}.Encode(w)
	w.Write(payload.Bytes())
	return w.Bytes()
}

// WriteMessage frames m and writes it in a single call.
func WriteMessage(dst io.Writer, magic uint32, m Message) error {
	if _, err := dst.Write(Frame(magic, m)); err != nil {
		return fmt.Errorf("write %s: %w", m.Command(), err)
	}
	return nil
}

// ReadMessage reads one frame: the fixed header first, then exactly Length bytes.
// Commands without a registered type come back as *MsgUnknown.
func ReadMessage(src io.Reader, magic uint32) (Message, error) {
	var raw [MessageHeaderSize]byte
	if _, err := io.ReadFull(src, raw[:]); err != nil {
		return nil, fmt.Errorf("read message header: %w", err)
	}
	hdr, err := DecodeMessageHeader(raw[:])
	if err != nil {
		return nil, err
	}
	if hdr.Magic != magic {
		return nil, fmt.Errorf("got magic %08x want %08x: %w", hdr.Magic, magic, ErrMagicMismatch)
	}
	if hdr.Length > MaxPayload {
		return nil, fmt.Errorf("%s payload of %d bytes: %w", hdr.Command, hdr.Length, ErrPayloadTooLarge)
	}

	payload := make([]byte, hdr.Length)
	if _, err := io.ReadFull(src, payload); err != nil {
		return nil, fmt.Errorf("read %s payload: %w", hdr.Command, err)
	}
	if Checksum(payload) != hdr.Checksum {
		return nil, fmt.Errorf("%s: %w", hdr.Command, ErrChecksumMismatch)
	}

	msg := MakeEmptyMessage(hdr.Command)
	if err := msg.Decode(NewReader(payload)); err != nil {
		return nil, fmt.Errorf("decode %s: %w", hdr.Command, err)
	}
	return msg, nil
}

// MakeEmptyMessage returns a zero value for command ready to Decode into.
func MakeEmptyMessage(command string) Message {
	switch command {
	case CmdVersion:
		return &MsgVersion{}
	case CmdVerAck:
		return &MsgVerAck{}
	case CmdPing:
		return &MsgPing{}
	case CmdPong:
		return &MsgPong{}
	case CmdHeaders:
		return &MsgHeaders{}
	case CmdGetHeaders:
		return &MsgGetHeaders{}
	case CmdInv:
		return &MsgInv{}
	case CmdGetData:
		return &MsgGetData{}
	case CmdMerkleBlock:
		return &MsgMerkleBlock{}
	case CmdTx:
		return &MsgTx{}
	case CmdBlock:
		return &MsgBlock{}
	case CmdFilterLoad:
		return &MsgFilterLoad{}
	case CmdReject:
		return &MsgReject{}
	default:
		return &MsgUnknown{Cmd: command}
	}
}

// MsgUnknown carries a command this node does not interpret (sendheaders, feefilter, addr...).
type MsgUnknown struct {
	Cmd     string
	Payload []byte
}

func (m *MsgUnknown) Command() string { return m.Cmd }

func (m *MsgUnknown) Encode(w *Writer) { w.Write(m.Payload) }

func (m *MsgUnknown) Decode(r *Reader) error {
	b, err := r.Bytes(r.Remaining())
	if err != nil {
		return err
	}
	m.Payload = append([]byte(nil), b...)
	return nil
}
