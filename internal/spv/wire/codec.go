// Package wire implements the Bitcoin peer-to-peer message encoding used by the SPV node.
package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Reader walks a payload with a monotonically advancing cursor.
// Integers are little-endian unless the method name says otherwise.
type Reader struct {
	buf []byte
	off int
}

// NewReader wraps b without copying it.
func NewReader(b []byte) *Reader {
	return &Reader{buf: b}
}

// Remaining reports how many unread bytes are left.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.off
}

// Bytes returns the next n bytes. The result aliases the underlying payload.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, fmt.Errorf("read %d bytes at offset %d: %w", n, r.off, ErrTruncatedInput)
	}
	out := r.buf[r.off : r.off+n]
	r.off += n
	return out, nil
}

func (r *Reader) Uint8() (uint8, error) {
	b, err := r.Bytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) Uint16() (uint16, error) {
	b, err := r.Bytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *Reader) Uint16BE() (uint16, error) {
	b, err := r.Bytes(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (r *Reader) Uint32() (uint32, error) {
	b, err := r.Bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *Reader) Uint32BE() (uint32, error) {
	b, err := r.Bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (r *Reader) Uint64() (uint64, error) {
	b, err := r.Bytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (r *Reader) Int32() (int32, error) {
	v, err := r.Uint32()
	return int32(v), err
}

func (r *Reader) Int64() (int64, error) {
	v, err := r.Uint64()
	return int64(v), err
}

// Hash reads a 32-byte digest in wire (internal) byte order.
func (r *Reader) Hash() (chainhash.Hash, error) {
	var h chainhash.Hash
	b, err := r.Bytes(chainhash.HashSize)
	if err != nil {
		return h, err
	}
	copy(h[:], b)
	return h, nil
}

// VarInt reads a CompactSize integer. Non-minimal encodings are accepted.
func (r *Reader) VarInt() (uint64, error) {
	prefix, err := r.Uint8()
	if err != nil {
		return 0, err
	}
	switch prefix {
	case 0xfd:
		v, err := r.Uint16()
		return uint64(v), err
	case 0xfe:
		v, err := r.Uint32()
		return uint64(v), err
	case 0xff:
		return r.Uint64()
	default:
		return uint64(prefix), nil
	}
}

// VarBytes reads a VarInt length followed by that many bytes and returns a copy.
func (r *Reader) VarBytes() ([]byte, error) {
	n, err := r.VarInt()
	if err != nil {
		return nil, err
	}
	if n > uint64(r.Remaining()) {
		return nil, fmt.Errorf("var bytes length %d at offset %d: %w", n, r.off, ErrTruncatedInput)
	}
	b, err := r.Bytes(int(n))
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

// VarString reads a VarInt length-prefixed string.
func (r *Reader) VarString() (string, error) {
	b, err := r.VarBytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// count reads a VarInt list length and rejects values above limit or above
// what the remaining payload could possibly hold given minItemSize.
func (r *Reader) count(limit uint64, minItemSize int) (int, error) {
	n, err := r.VarInt()
	if err != nil {
		return 0, err
	}
	if n > limit {
		return 0, fmt.Errorf("count %d exceeds %d: %w", n, limit, ErrTooManyItems)
	}
	if minItemSize > 0 && n > uint64(r.Remaining()/minItemSize) {
		return 0, fmt.Errorf("count %d at offset %d: %w", n, r.off, ErrTruncatedInput)
	}
	return int(n), nil
}

// Writer accumulates an encoded payload. Appends never fail.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the encoded payload.
func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) Len() int {
	return len(w.buf)
}

func (w *Writer) Write(b []byte) {
	w.buf = append(w.buf, b...)
}

func (w *Writer) Uint8(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *Writer) Uint16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

func (w *Writer) Uint16BE(v uint16) {
	w.buf = binary.BigEndian.AppendUint16(w.buf, v)
}

func (w *Writer) Uint32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

func (w *Writer) Uint32BE(v uint32) {
	w.buf = binary.BigEndian.AppendUint32(w.buf, v)
}

func (w *Writer) Uint64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

func (w *Writer) Int32(v int32) {
	w.Uint32(uint32(v))
}

func (w *Writer) Int64(v int64) {
	w.Uint64(uint64(v))
}

func (w *Writer) Hash(h chainhash.Hash) {
	w.buf = append(w.buf, h[:]...)
}

// VarInt writes v in its smallest CompactSize form.
func (w *Writer) VarInt(v uint64) {
	switch {
	case v < 0xfd:
		w.Uint8(uint8(v))
	case v <= 0xffff:
		w.Uint8(0xfd)
		w.Uint16(uint16(v))
	case v <= 0xffffffff:
		w.Uint8(0xfe)
		w.Uint32(uint32(v))
	default:
		w.Uint8(0xff)
		w.Uint64(v)
	}
}

func (w *Writer) VarBytes(b []byte) {
	w.VarInt(uint64(len(b)))
	w.Write(b)
}

func (w *Writer) VarString(s string) {
	w.VarInt(uint64(len(s)))
	w.buf = append(w.buf, s...)
}

// VarIntSize returns the encoded length of v.
func VarIntSize(v uint64) int {
	switch {
	case v < 0xfd:
		return 1
	case v <= 0xffff:
		return 3
	case v <= 0xffffffff:
		return 5
	default:
		return 9
	}
}
