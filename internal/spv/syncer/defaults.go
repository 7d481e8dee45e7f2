package syncer

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/bloom"
	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/peer"
)

const (
	DefaultMaxPeers = 1
	// DefaultStaleBlocks is how far a peer may lag behind our tip before it is dropped.
	DefaultStaleBlocks                  = 10
	DefaultFalsePositiveReloadThreshold = 50
	DefaultMaxBlocksInFlight            = 2000
	DefaultGetDataBatchSize             = 500
	DefaultGetDataInterval              = 200 * time.Millisecond
	DefaultGetDataRate                  = 20
	DefaultReconnectDelay               = time.Second
	DefaultReconnectMaxDelay            = time.Minute
)

// Config tunes the engine. Zero fields take the defaults above.
type Config struct {
	MaxPeers int
	// Peers bypasses DNS seeds when set.
	Peers             []string
	FeePerByte        uint64
	FalsePositiveRate float64
	// FalsePositiveReloadThreshold irrelevant transactions trigger a filter with a fresh tweak.
	FalsePositiveReloadThreshold int
	StaleBlocks                  uint32
	// BirthdayHeight is the first block scanned on a fresh wallet. Zero starts at the
	// first peer's tip.
	BirthdayHeight    uint32
	MaxBlocksInFlight int
	GetDataBatchSize  int
	GetDataInterval   time.Duration
	GetDataRate       int
	// ReconnectAttempts bounds consecutive failed sessions per slot; zero retries forever.
	ReconnectAttempts uint
	ReconnectDelay    time.Duration
	ReconnectMaxDelay time.Duration
	Session           peer.Config
}

func DefaultConfig() Config {
	return Config{}.withDefaults()
}

func (c Config) withDefaults() Config {
	if c.MaxPeers <= 0 {
		c.MaxPeers = DefaultMaxPeers
	}
	if c.FalsePositiveRate <= 0 {
		c.FalsePositiveRate = bloom.DefaultFalsePositiveRate
	}
	if c.FalsePositiveReloadThreshold <= 0 {
		c.FalsePositiveReloadThreshold = DefaultFalsePositiveReloadThreshold
	}
	if c.StaleBlocks == 0 {
		c.StaleBlocks = DefaultStaleBlocks
	}
	if c.MaxBlocksInFlight <= 0 {
		c.MaxBlocksInFlight = DefaultMaxBlocksInFlight
	}
	if c.GetDataBatchSize <= 0 {
		c.GetDataBatchSize = DefaultGetDataBatchSize
	}
	if c.GetDataInterval <= 0 {
		c.GetDataInterval = DefaultGetDataInterval
	}
	if c.GetDataRate <= 0 {
		c.GetDataRate = DefaultGetDataRate
	}
	if c.ReconnectDelay <= 0 {
		c.ReconnectDelay = DefaultReconnectDelay
	}
	if c.ReconnectMaxDelay <= 0 {
		c.ReconnectMaxDelay = DefaultReconnectMaxDelay
	}
	session := peer.DefaultConfig()
	if c.Session.HandshakeTimeout <= 0 {
		c.Session.HandshakeTimeout = session.HandshakeTimeout
	}
	if c.Session.ReadTimeout <= 0 {
		c.Session.ReadTimeout = session.ReadTimeout
	}
	if c.Session.WriteTimeout <= 0 {
		c.Session.WriteTimeout = session.WriteTimeout
	}
	return c
}
