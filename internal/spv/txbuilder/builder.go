// Package txbuilder selects coins and assembles signed P2PKH spends.
package txbuilder

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/keys"
	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/model"
	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/script"
	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/wire"
)

const (
	DefaultFeePerByte uint64 = 5
	// DefaultDustThreshold is three times the 182-byte cost of spending a P2PKH output.
	DefaultDustThreshold uint64 = 3 * 182

	// SigHashAll is appended to every signature and to the signed preimage.
	SigHashAll = 0x01

	txVersion     = 1
	finalSequence = 0xffffffff

	// Size estimate per legacy P2PKH input, per output, and fixed overhead.
	inputSize    = 148
	outputSize   = 34
	overheadSize = 10
	// Selection always budgets for a destination and a change output.
	selectionOutputs = 2
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrMissingSigningKey = errors.New("no private key for utxo")
	ErrZeroAmount        = errors.New("amount must be positive")
)

// Builder is stateless apart from its fee policy.
type Builder struct {
	FeePerByte    uint64
	DustThreshold uint64
}

// New returns a Builder with the default dust threshold. Zero feePerByte
// selects DefaultFeePerByte.
func New(feePerByte uint64) *Builder {
	if feePerByte == 0 {
		feePerByte = DefaultFeePerByte
	}
	return &Builder{FeePerByte: feePerByte, DustThreshold: DefaultDustThreshold}
}

// Fee estimates the fee of a transaction with nIn P2PKH inputs and nOut outputs.
func (b *Builder) Fee(nIn, nOut int) uint64 {
	return uint64(inputSize*nIn+outputSize*nOut+overheadSize) * b.FeePerByte
}

// SelectUTXOs picks the fewest coins covering target plus fee. Candidates are
// contiguous runs of the value-sorted coins. A run that leaves at least
// DustThreshold of change wins over one that does not; among those the run
// closest to twice the target is taken. The returned fee assumes two outputs.
func (b *Builder) SelectUTXOs(utxos []model.UTXO, target uint64) ([]model.UTXO, uint64, error) {
	if target == 0 {
		return nil, 0, nil
	}

	sorted := make([]model.UTXO, len(utxos))
	copy(sorted, utxos)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Value < sorted[j].Value })

	var total uint64
	for _, u := range sorted {
		total += u.Value
	}
	if len(sorted) == 0 || total < target {
		return nil, 0, fmt.Errorf("need %d, have %d: %w", target, total, ErrInsufficientFunds)
	}

	double := 2 * target
	for n := 1; n <= len(sorted); n++ {
		fee := b.Fee(n, selectionOutputs)
		best, bestDist := -1, uint64(0)
		for start := 0; start+n <= len(sorted); start++ {
			sum := sumValues(sorted[start : start+n])
			if sum < target+fee+b.DustThreshold {
				continue
			}
			dist := absDiff(sum, double)
			if best < 0 || dist < bestDist {
				best, bestDist = start, dist
			}
		}
		if best >= 0 {
			return sorted[best : best+n], fee, nil
		}
	}

	// No dust-free run: accept the smallest run that covers target and fee.
	for n := 1; n <= len(sorted); n++ {
		fee := b.Fee(n, selectionOutputs)
		for start := 0; start+n <= len(sorted); start++ {
			if sumValues(sorted[start:start+n]) >= target+fee {
				return sorted[start : start+n], fee, nil
			}
		}
	}
	return nil, 0, fmt.Errorf("need %d plus fee, have %d: %w", target, total, ErrInsufficientFunds)
}

// Build selects coins for amount, pays destination, returns the change to
// changeScript and signs every input with the key owning the spent coin.
// Change below DustThreshold is left to the miner instead of creating an output.
func (b *Builder) Build(
	destination, changeScript []byte,
	amount uint64,
	utxos []model.UTXO,
	signers []*keys.PrivateKey,
) (*wire.MsgTx, error) {
	if amount == 0 {
		return nil, ErrZeroAmount
	}
	selected, fee, err := b.SelectUTXOs(utxos, amount)
	if err != nil {
		return nil, err
	}

	tx := &wire.MsgTx{Version: txVersion}
	for _, u := range selected {
		tx.TxIn = append(tx.TxIn, &wire.TxIn{PreviousOutPoint: u.OutPoint, Sequence: finalSequence})
	}
	tx.TxOut = append(tx.TxOut, &wire.TxOut{Value: amount, PkScript: destination})
	if change := sumValues(selected) - amount - fee; change >= b.DustThreshold {
		tx.TxOut = append(tx.TxOut, &wire.TxOut{Value: change, PkScript: changeScript})
	}

	// Every signature commits to the outputs, so they are fixed before signing.
	sigScripts := make([][]byte, len(selected))
	for i, u := range selected {
		key := keyFor(signers, u.PubKeyHash)
		if key == nil {
			return nil, fmt.Errorf("outpoint %s: %w", u.OutPoint, ErrMissingSigningKey)
		}
		hash := SignatureHash(tx, i, u.LockingScript)
		sig := append(key.Sign(hash[:]), SigHashAll)
		sigScripts[i], err = script.SignatureScript(sig, key.PublicKey().Data)
		if err != nil {
			return nil, fmt.Errorf("build signature script for %s: %w", u.OutPoint, err)
		}
	}
	for i, s := range sigScripts {
		tx.TxIn[i].SignatureScript = s
	}
	return tx, nil
}

// SignatureHash is the legacy SIGHASH_ALL digest of input idx: every input
// script blanked except idx, which carries prevScript, followed by the
// little-endian hash type.
func SignatureHash(tx *wire.MsgTx, idx int, prevScript []byte) chainhash.Hash {
	c := tx.Copy()
	for i, in := range c.TxIn {
		if i == idx {
			in.SignatureScript = prevScript
		} else {
			in.SignatureScript = nil
		}
	}
	w := wire.NewWriter()
	c.Encode(w)
	w.Uint32(SigHashAll)
	return chainhash.DoubleHashH(w.Bytes())
}

func keyFor(signers []*keys.PrivateKey, pubKeyHash []byte) *keys.PrivateKey {
	for _, k := range signers {
		if bytes.Equal(k.PublicKey().PubKeyHash(), pubKeyHash) {
			return k
		}
	}
	return nil
}

func sumValues(utxos []model.UTXO) uint64 {
	var sum uint64
	for _, u := range utxos {
		sum += u.Value
	}
	return sum
}

func absDiff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}
