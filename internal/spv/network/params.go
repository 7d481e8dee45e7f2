// Package network holds the per-chain constants an SPV node needs: magic, ports, seeds and checkpoints.
package network

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/model"
)

const (
	// ProtocolVersion is advertised in our version message.
	ProtocolVersion uint32 = 70015
	// MinProtocolVersion is the oldest peer we sync from (BIP 111 bloom service bit).
	MinProtocolVersion uint32 = 70011
)

// Checkpoint pins the block hash expected at a height.
type Checkpoint struct {
	Height    uint32
	Hash      chainhash.Hash
	Timestamp uint32
	Bits      uint32
}

// Params is immutable once built by ForNetwork.
type Params struct {
	Name             model.Network
	Magic            uint32
	DefaultPort      string
	PubKeyHashAddrID byte
	ScriptHashAddrID byte
	PrivateKeyID     byte
	Bech32HRP        string
	DNSSeeds         []string
	GenesisHash      chainhash.Hash
	Checkpoints      []Checkpoint

	ProtocolVersion    uint32
	MinProtocolVersion uint32

	// Chain is the btcd view of the same network, used for address encoding.
	Chain *chaincfg.Params
}

var (
	mainnet = build(model.Mainnet, &chaincfg.MainNetParams, []Checkpoint{
		checkpoint(0, "000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f", 1231006505, 0x1d00ffff),
		checkpoint(20160, "000000000f1aef56190aee63d33a373e6487132d522ff4cd98ccfc96566d461e", 1248481816, 0x1d00ffff),
	})
	testnet = build(model.Testnet, &chaincfg.TestNet3Params, []Checkpoint{
		checkpoint(0, "000000000933ea01ad0ee984209779baaec3ced90fa3f408719526f8d77f4943", 1296688602, 0x1d00ffff),
	})
)

// ForNetwork resolves a network name, accepting the usual aliases.
func ForNetwork(network model.Network) (*Params, error) {
	switch strings.ToLower(string(network)) {
	case "main", "mainnet", "bitcoin":
		return mainnet, nil
	case "test", "testnet", "testnet3":
		return testnet, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}

func build(name model.Network, chain *chaincfg.Params, checkpoints []Checkpoint) *Params {
	seeds := make([]string, 0, len(chain.DNSSeeds))
	for _, s := range chain.DNSSeeds {
		seeds = append(seeds, s.Host)
	}
	return &Params{
		Name: name,
		// chaincfg stores the magic as the little-endian wire value.
		Magic:              bits.ReverseBytes32(uint32(chain.Net)),
		DefaultPort:        chain.DefaultPort,
		PubKeyHashAddrID:   chain.PubKeyHashAddrID,
		ScriptHashAddrID:   chain.ScriptHashAddrID,
		PrivateKeyID:       chain.PrivateKeyID,
		Bech32HRP:          chain.Bech32HRPSegwit,
		DNSSeeds:           seeds,
		GenesisHash:        *chain.GenesisHash,
		Checkpoints:        checkpoints,
		ProtocolVersion:    ProtocolVersion,
		MinProtocolVersion: MinProtocolVersion,
		Chain:              chain,
	}
}

func checkpoint(height uint32, hash string, timestamp, bits uint32) Checkpoint {
	h, err := chainhash.NewHashFromStr(hash)
	if err != nil {
		panic(fmt.Sprintf("checkpoint %d: %v", height, err))
	}
	return Checkpoint{Height: height, Hash: *h, Timestamp: timestamp, Bits: bits}
}

// CheckpointAt returns the checkpoint pinned at height, if any.
func (p *Params) CheckpointAt(height uint32) (Checkpoint, bool) {
	for _, cp := range p.Checkpoints {
		if cp.Height == height {
			return cp, true
		}
	}
	return Checkpoint{}, false
}

// NextCheckpointIndex is the index of the first checkpoint strictly above height,
// or len(Checkpoints) when none remain.
func (p *Params) NextCheckpointIndex(height uint32) int {
	for i, cp := range p.Checkpoints {
		if cp.Height > height {
			return i
		}
	}
	return len(p.Checkpoints)
}
