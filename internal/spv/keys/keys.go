// Package keys wraps secp256k1 keys with the network-specific encodings a wallet needs.
package keys

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcutil"

	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/model"
	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/network"
)

var (
	// ErrUnknownNetwork is returned for WIF strings whose version byte matches no supported network.
	ErrUnknownNetwork = errors.New("key does not belong to a supported network")
	// ErrInvalidKeyLength is returned for raw private keys that are not 32 bytes.
	ErrInvalidKeyLength = errors.New("private key must be 32 bytes")
)

// PrivateKey is a signing key bound to a network.
type PrivateKey struct {
	key        *btcec.PrivateKey
	Network    *network.Params
	Compressed bool
}

// NewPrivateKey wraps 32 raw key bytes.
func NewPrivateKey(raw []byte, params *network.Params, compressed bool) (*PrivateKey, error) {
	if len(raw) != btcec.PrivKeyBytesLen {
		return nil, ErrInvalidKeyLength
	}
	key, _ := btcec.PrivKeyFromBytes(raw)
	return &PrivateKey{key: key, Network: params, Compressed: compressed}, nil
}

// Generate creates a fresh compressed key.
func Generate(params *network.Params) (*PrivateKey, error) {
	key, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	return &PrivateKey{key: key, Network: params, Compressed: true}, nil
}

// FromWIF decodes a wallet import format string. The network is taken from its version byte.
func FromWIF(s string) (*PrivateKey, error) {
	wif, err := btcutil.DecodeWIF(s)
	if err != nil {
		return nil, fmt.Errorf("decode wif: %w", err)
	}
	for _, name := range []model.Network{model.Mainnet, model.Testnet} {
		params, err := network.ForNetwork(name)
		if err != nil {
			return nil, err
		}
		if wif.IsForNet(params.Chain) {
			return &PrivateKey{key: wif.PrivKey, Network: params, Compressed: wif.CompressPubKey}, nil
		}
	}
	return nil, ErrUnknownNetwork
}

// WIF encodes the key in wallet import format.
func (k *PrivateKey) WIF() string {
	wif, err := btcutil.NewWIF(k.key, k.Network.Chain, k.Compressed)
	if err != nil {
		// NewWIF only fails on a nil network.
		panic(err)
	}
	return wif.String()
}

// Bytes returns the 32 byte scalar.
func (k *PrivateKey) Bytes() []byte {
	return k.key.Serialize()
}

func (k *PrivateKey) PublicKey() *PublicKey {
	pub := k.key.PubKey()
	data := pub.SerializeUncompressed()
	if k.Compressed {
		data = pub.SerializeCompressed()
	}
	return &PublicKey{Data: data, Network: k.Network}
}

// Sign produces a DER encoded RFC 6979 signature over a 32 byte digest.
func (k *PrivateKey) Sign(hash []byte) []byte {
	return ecdsa.Sign(k.key, hash).Serialize()
}

// PublicKey is a serialized secp256k1 point in the form the owning key selected.
type PublicKey struct {
	Data    []byte
	Network *network.Params
}

// PubKeyHash is RIPEMD160(SHA256(Data)).
func (p *PublicKey) PubKeyHash() []byte {
	return btcutil.Hash160(p.Data)
}

// Address is the Base58Check P2PKH address for the key.
func (p *PublicKey) Address() string {
	return EncodeAddress(p.PubKeyHash(), p.Network)
}
