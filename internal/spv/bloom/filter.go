// Package bloom builds the BIP 37 filters loaded onto peers.
package bloom

import (
	"math"

	btcbloom "github.com/btcsuite/btcd/btcutil/bloom"

	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/wire"
)

const (
	// MaxFilterSize is the largest filter, in bytes, a peer accepts.
	MaxFilterSize = 36000
	// MaxHashFuncs is the largest hash function count a peer accepts.
	MaxHashFuncs = 50
	// DefaultFalsePositiveRate trades privacy for bandwidth.
	DefaultFalsePositiveRate = 0.0005

	seedMultiplier = 0xfba4c795
	ln2Squared     = math.Ln2 * math.Ln2
)

// UpdateType controls how a peer grows the filter as it matches outputs.
type UpdateType uint8

const (
	UpdateNone UpdateType = iota
	UpdateAll
	UpdateP2PubkeyOnly
)

// Filter is not safe for concurrent use.
type Filter struct {
	data      []byte
	hashFuncs uint32
	tweak     uint32
	flags     UpdateType
}

// New sizes a filter for elementCount entries at the given false positive rate.
// A non-positive elementCount is treated as one, a non-positive or NaN rate as
// DefaultFalsePositiveRate. The size always stays within [1, MaxFilterSize] bytes.
func New(elementCount int, fpRate float64, tweak uint32) *Filter {
	if elementCount < 1 {
		elementCount = 1
	}
	if math.IsNaN(fpRate) || fpRate <= 0 {
		fpRate = DefaultFalsePositiveRate
	}
	n := float64(elementCount)

	bits := -1 / ln2Squared * n * math.Log(fpRate)
	bits = math.Max(8, math.Min(bits, MaxFilterSize*8))
	size := uint32(bits) / 8
	if size < 1 {
		size = 1
	}

	hashFuncs := uint32(math.Min(float64(size*8)/n*math.Ln2, MaxHashFuncs))
	if hashFuncs < 1 {
		hashFuncs = 1
	}

	return &Filter{
		data:      make([]byte, size),
		hashFuncs: hashFuncs,
		tweak:     tweak,
	}
}

// WithUpdate sets the flags sent with filterload.
func (f *Filter) WithUpdate(flags UpdateType) *Filter {
	f.flags = flags
	return f
}

func (f *Filter) index(i uint32, data []byte) uint32 {
	seed := i*seedMultiplier + f.tweak
	return btcbloom.MurmurHash3(seed, data) % (uint32(len(f.data)) * 8)
}

func (f *Filter) Insert(data []byte) {
	for i := uint32(0); i < f.hashFuncs; i++ {
		idx := f.index(i, data)
		f.data[idx>>3] |= 1 << (idx & 7)
	}
}

// Contains reports whether data may be in the set. False positives are expected.
func (f *Filter) Contains(data []byte) bool {
	for i := uint32(0); i < f.hashFuncs; i++ {
		idx := f.index(i, data)
		if f.data[idx>>3]&(1<<(idx&7)) == 0 {
			return false
		}
	}
	return true
}

func (f *Filter) HashFuncs() uint32 { return f.hashFuncs }
func (f *Filter) Tweak() uint32     { return f.tweak }
func (f *Filter) Size() int         { return len(f.data) }

// MsgFilterLoad snapshots the filter into a message. Later inserts do not affect it.
func (f *Filter) MsgFilterLoad() *wire.MsgFilterLoad {
	data := make([]byte, len(f.data))
	copy(data, f.data)
	return &wire.MsgFilterLoad{
		Filter:    data,
		HashFuncs: f.hashFuncs,
		Tweak:     f.tweak,
		Flags:     uint8(f.flags),
	}
}
