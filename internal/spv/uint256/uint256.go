// Package uint256 provides the fixed-width integer arithmetic used for proof-of-work checks.
package uint256

import (
	"encoding/binary"
	"encoding/hex"
	"errors"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

var (
	// ErrNegativeCompact is returned for compact values with the sign bit set.
	ErrNegativeCompact = errors.New("compact target is negative")
	// ErrCompactOverflow is returned when a compact value does not fit in 256 bits.
	ErrCompactOverflow = errors.New("compact target overflows 256 bits")
)

// Uint256 is an unsigned 256-bit integer held as four little-endian 64-bit limbs.
type Uint256 [4]uint64

// MaxProofOfWork is the easiest target any network accepts: 0x00000000ffff...ff.
var MaxProofOfWork = Uint256{^uint64(0), ^uint64(0), ^uint64(0), 0x00000000ffffffff}

// FromUint64 widens v.
func FromUint64(v uint64) Uint256 {
	return Uint256{v}
}

// FromBytesLE interprets b (up to 32 bytes) as a little-endian integer.
func FromBytesLE(b []byte) Uint256 {
	var buf [32]byte
	copy(buf[:], b)
	var u Uint256
	for i := range u {
		u[i] = binary.LittleEndian.Uint64(buf[i*8:])
	}
	return u
}

// HashToUint256 interprets a block hash the way proof-of-work compares it: little-endian.
func HashToUint256(h chainhash.Hash) Uint256 {
	return FromBytesLE(h[:])
}

// Bytes returns the big-endian representation.
func (u Uint256) Bytes() [32]byte {
	var out [32]byte
	for i := 0; i < 4; i++ {
		binary.BigEndian.PutUint64(out[(3-i)*8:], u[i])
	}
	return out
}

// String renders the value as 64 big-endian hex digits.
func (u Uint256) String() string {
	b := u.Bytes()
	return hex.EncodeToString(b[:])
}

func (u Uint256) Eq(v Uint256) bool {
	return u == v
}

func (u Uint256) IsZero() bool {
	return u == Uint256{}
}

// Cmp returns -1, 0 or 1 comparing from the most significant limb.
func (u Uint256) Cmp(v Uint256) int {
	for i := 3; i >= 0; i-- {
		switch {
		case u[i] < v[i]:
			return -1
		case u[i] > v[i]:
			return 1
		}
	}
	return 0
}

// Lsh shifts left by n bits. Shifts of 256 or more yield zero.
func (u Uint256) Lsh(n uint) Uint256 {
	if n >= 256 {
		return Uint256{}
	}
	limbs, bits := int(n/64), n%64
	var out Uint256
	for i := 3; i >= limbs; i-- {
		out[i] = u[i-limbs] << bits
		if bits > 0 && i-limbs-1 >= 0 {
			out[i] |= u[i-limbs-1] >> (64 - bits)
		}
	}
	return out
}

// Rsh shifts right by n bits. Shifts of 256 or more yield zero.
func (u Uint256) Rsh(n uint) Uint256 {
	if n >= 256 {
		return Uint256{}
	}
	limbs, bits := int(n/64), n%64
	var out Uint256
	for i := 0; i+limbs < 4; i++ {
		out[i] = u[i+limbs] >> bits
		if bits > 0 && i+limbs+1 < 4 {
			out[i] |= u[i+limbs+1] << (64 - bits)
		}
	}
	return out
}

// FromCompact decodes the nBits representation of a target.
// A zero mantissa decodes to zero before the sign bit is considered.
func FromCompact(bits uint32) (Uint256, error) {
	size := bits >> 24
	mantissa := bits & 0x007fffff

	if mantissa == 0 {
		return Uint256{}, nil
	}
	if bits&0x00800000 != 0 {
		return Uint256{}, ErrNegativeCompact
	}
	if size > 0x22 || (mantissa > 0xff && size > 0x21) || (mantissa > 0xffff && size > 0x20) {
		return Uint256{}, ErrCompactOverflow
	}

	if size <= 3 {
		return FromUint64(uint64(mantissa >> (8 * (3 - size)))), nil
	}
	return FromUint64(uint64(mantissa)).Lsh(uint(8 * (size - 3))), nil
}
