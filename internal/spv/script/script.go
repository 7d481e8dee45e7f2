// Package script recognizes and builds the locking and unlocking scripts the wallet uses.
package script

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
)

// ErrInvalidHashLength is returned when a pubkey or script hash is not 20 bytes.
var ErrInvalidHashLength = errors.New("hash must be 20 bytes")

// Kind is the recognized template of a locking script.
type Kind int

const (
	Other Kind = iota
	P2PKH
	P2SH
)

func (k Kind) String() string {
	switch k {
	case P2PKH:
		return "pubkeyhash"
	case P2SH:
		return "scripthash"
	default:
		return "nonstandard"
	}
}

// Template is a classified locking script. Hash is nil for Other.
type Template struct {
	Kind Kind
	Hash []byte
}

// Classify matches the standard pay-to-pubkey-hash and pay-to-script-hash templates.
func Classify(pkScript []byte) Template {
	switch txscript.GetScriptClass(pkScript) {
	case txscript.PubKeyHashTy:
		// OP_DUP OP_HASH160 <20> OP_EQUALVERIFY OP_CHECKSIG
		return Template{Kind: P2PKH, Hash: pkScript[3:23]}
	case txscript.ScriptHashTy:
		// OP_HASH160 <20> OP_EQUAL
		return Template{Kind: P2SH, Hash: pkScript[2:22]}
	default:
		return Template{Kind: Other}
	}
}

// PayToPubKeyHash builds the P2PKH locking script for a 20 byte hash.
func PayToPubKeyHash(hash []byte) ([]byte, error) {
	if len(hash) != 20 {
		return nil, ErrInvalidHashLength
	}
	return txscript.NewScriptBuilder().
		AddOp(txscript.OP_DUP).
		AddOp(txscript.OP_HASH160).
		AddData(hash).
		AddOp(txscript.OP_EQUALVERIFY).
		AddOp(txscript.OP_CHECKSIG).
		Script()
}

// PayToScriptHash builds the P2SH locking script for a 20 byte hash.
func PayToScriptHash(hash []byte) ([]byte, error) {
	if len(hash) != 20 {
		return nil, ErrInvalidHashLength
	}
	return txscript.NewScriptBuilder().
		AddOp(txscript.OP_HASH160).
		AddData(hash).
		AddOp(txscript.OP_EQUAL).
		Script()
}

// PayToWitness builds a segwit v0 locking script: OP_0 <program>.
func PayToWitness(version byte, program []byte) ([]byte, error) {
	if version != 0 {
		return nil, fmt.Errorf("unsupported witness version %d", version)
	}
	if len(program) != 20 && len(program) != 32 {
		return nil, fmt.Errorf("witness program length %d", len(program))
	}
	return txscript.NewScriptBuilder().
		AddOp(txscript.OP_0).
		AddData(program).
		Script()
}

// SignatureScript builds the P2PKH unlocking script: push(sig) push(pubkey).
// sig must already carry its trailing sighash type byte.
func SignatureScript(sig, pubKey []byte) ([]byte, error) {
	return txscript.NewScriptBuilder().
		AddData(sig).
		AddData(pubKey).
		Script()
}

// Addresses renders the addresses a locking script pays to, for display.
func Addresses(pkScript []byte, params *chaincfg.Params) ([]string, error) {
	_, addrs, _, err := txscript.ExtractPkScriptAddrs(pkScript, params)
	if err != nil {
		return nil, fmt.Errorf("extract addresses: %w", err)
	}
	result := make([]string, 0, len(addrs))
	for _, addr := range addrs {
		result = append(result, addr.EncodeAddress())
	}
	return result, nil
}
