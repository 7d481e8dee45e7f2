package keys

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/bech32"

	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/network"
	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/script"
)

var (
	ErrWrongNetwork   = errors.New("address belongs to another network")
	ErrInvalidAddress = errors.New("invalid address")
)

// EncodeAddress renders a pubkey hash as a Base58Check P2PKH address.
func EncodeAddress(hash []byte, params *network.Params) string {
	return base58.CheckEncode(hash, params.PubKeyHashAddrID)
}

// DecodeAddress parses a Base58Check P2PKH address and returns its pubkey hash.
func DecodeAddress(addr string, params *network.Params) ([]byte, error) {
	hash, version, err := base58.CheckDecode(addr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if len(hash) != 20 {
		return nil, fmt.Errorf("%w: payload length %d", ErrInvalidAddress, len(hash))
	}
	if version != params.PubKeyHashAddrID {
		return nil, fmt.Errorf("%w: version %#x", ErrWrongNetwork, version)
	}
	return hash, nil
}

// DecodeBech32 splits a segwit address into its human readable part, witness version and program.
func DecodeBech32(addr string) (hrp string, version byte, program []byte, err error) {
	hrp, data, err := bech32.Decode(addr)
	if err != nil {
		return "", 0, nil, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if len(data) < 1 {
		return "", 0, nil, fmt.Errorf("%w: empty witness data", ErrInvalidAddress)
	}
	program, err = bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return "", 0, nil, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	return hrp, data[0], program, nil
}

// DestinationScript builds the locking script paying to addr, which may be
// a Base58 P2PKH or P2SH address or a segwit v0 bech32 address.
func DestinationScript(addr string, params *network.Params) ([]byte, error) {
	if strings.HasPrefix(strings.ToLower(addr), params.Bech32HRP+"1") {
		hrp, version, program, err := DecodeBech32(addr)
		if err != nil {
			return nil, err
		}
		if hrp != params.Bech32HRP {
			return nil, ErrWrongNetwork
		}
		return script.PayToWitness(version, program)
	}

	hash, version, err := base58.CheckDecode(addr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	switch version {
	case params.PubKeyHashAddrID:
		return script.PayToPubKeyHash(hash)
	case params.ScriptHashAddrID:
		return script.PayToScriptHash(hash)
	default:
		return nil, fmt.Errorf("%w: version %#x", ErrWrongNetwork, version)
	}
}
