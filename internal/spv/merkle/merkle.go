// Package merkle validates filtered blocks: proof of work plus the partial merkle tree.
package merkle

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/uint256"
	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/wire"
)

var (
	ErrNoTransactions     = errors.New("merkle block has no transactions")
	ErrTooManyHashes      = errors.New("more hashes than transactions")
	ErrFlagsExhausted     = errors.New("flag bits exhausted")
	ErrHashesExhausted    = errors.New("hashes exhausted")
	ErrDuplicateSubtree   = errors.New("identical sibling hashes before end of proof")
	ErrUnconsumedHashes   = errors.New("proof has unconsumed hashes")
	ErrUnconsumedFlags    = errors.New("proof has unconsumed flag bytes")
	ErrMerkleRootMismatch = errors.New("merkle root mismatch")
	ErrInvalidTarget      = errors.New("target is zero or above the proof-of-work limit")
	ErrInsufficientWork   = errors.New("block hash above target")
)

// CheckProofOfWork decodes the compact target and checks the header hash against it.
func CheckProofOfWork(header *wire.BlockHeader, limit uint256.Uint256) error {
	target, err := uint256.FromCompact(header.Bits)
	if err != nil {
		return fmt.Errorf("decode bits %08x: %w", header.Bits, err)
	}
	if target.IsZero() || target.Cmp(limit) > 0 {
		return fmt.Errorf("bits %08x: %w", header.Bits, ErrInvalidTarget)
	}
	if uint256.HashToUint256(header.BlockHash()).Cmp(target) > 0 {
		return ErrInsufficientWork
	}
	return nil
}

// Verify checks proof of work and rebuilds the merkle root from the partial tree.
// It returns the hashes of the transactions flagged as matching the filter,
// in block order.
func Verify(mb *wire.MsgMerkleBlock) ([]chainhash.Hash, error) {
	if err := CheckProofOfWork(&mb.Header, uint256.MaxProofOfWork); err != nil {
		return nil, err
	}
	return ExtractMatches(mb)
}

// ExtractMatches rebuilds the partial merkle tree without looking at proof of work.
func ExtractMatches(mb *wire.MsgMerkleBlock) ([]chainhash.Hash, error) {
	if mb.Transactions == 0 {
		return nil, ErrNoTransactions
	}
	if uint32(len(mb.Hashes)) > mb.Transactions {
		return nil, ErrTooManyHashes
	}

	t := &tree{
		total:  mb.Transactions,
		hashes: mb.Hashes,
		flags:  mb.Flags,
	}
	root, err := t.traverse(t.height(), 0)
	if err != nil {
		return nil, err
	}
	if t.hashPos != len(t.hashes) {
		return nil, ErrUnconsumedHashes
	}
	if (t.bitPos+7)/8 != len(t.flags) {
		return nil, ErrUnconsumedFlags
	}
	if root != mb.Header.MerkleRoot {
		return nil, fmt.Errorf("%w: computed %s, header %s", ErrMerkleRootMismatch, root, mb.Header.MerkleRoot)
	}
	return t.matched, nil
}

// IsValid reports whether Verify accepts mb.
func IsValid(mb *wire.MsgMerkleBlock) bool {
	_, err := Verify(mb)
	return err == nil
}

type tree struct {
	total   uint32
	hashes  []chainhash.Hash
	flags   []byte
	hashPos int
	bitPos  int
	matched []chainhash.Hash
}

// height is ceil(log2(total)): the depth of the leaves below the root.
func (t *tree) height() uint {
	var h uint
	for (uint64(1) << h) < uint64(t.total) {
		h++
	}
	return h
}

// width is the number of nodes at the given height above the leaves.
func (t *tree) width(height uint) uint64 {
	return (uint64(t.total) + (uint64(1) << height) - 1) >> height
}

func (t *tree) nextFlag() (bool, error) {
	if t.bitPos >= len(t.flags)*8 {
		return false, ErrFlagsExhausted
	}
	set := t.flags[t.bitPos/8]&(1<<(t.bitPos%8)) != 0
	t.bitPos++
	return set, nil
}

func (t *tree) nextHash() (chainhash.Hash, error) {
	if t.hashPos >= len(t.hashes) {
		return chainhash.Hash{}, ErrHashesExhausted
	}
	h := t.hashes[t.hashPos]
	t.hashPos++
	return h, nil
}

// exhausted is true once every hash is used and only padding bits of the last flag byte remain.
func (t *tree) exhausted() bool {
	return t.hashPos == len(t.hashes) && (t.bitPos+7)/8 >= len(t.flags)
}

func (t *tree) traverse(height uint, pos uint64) (chainhash.Hash, error) {
	flag, err := t.nextFlag()
	if err != nil {
		return chainhash.Hash{}, err
	}
	if !flag || height == 0 {
		h, err := t.nextHash()
		if err != nil {
			return chainhash.Hash{}, err
		}
		if flag {
			t.matched = append(t.matched, h)
		}
		return h, nil
	}

	left, err := t.traverse(height-1, pos*2)
	if err != nil {
		return chainhash.Hash{}, err
	}
	right := left
	if pos*2+1 < t.width(height-1) {
		if right, err = t.traverse(height-1, pos*2+1); err != nil {
			return chainhash.Hash{}, err
		}
		// CVE-2012-2459: an explicit duplicate is only tolerated as the final pair.
		if left == right && !t.exhausted() {
			return chainhash.Hash{}, ErrDuplicateSubtree
		}
	}

	var buf [chainhash.HashSize * 2]byte
	copy(buf[:chainhash.HashSize], left[:])
	copy(buf[chainhash.HashSize:], right[:])
	return chainhash.DoubleHashH(buf[:]), nil
}
