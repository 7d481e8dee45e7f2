package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/model"
)

var (
	syncChainHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "spv_sync",
		Name:      "chain_height",
		Help:      "Height of the local header chain tip.",
	}, []string{"network"})
	syncHeadersIngested = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "spv_sync",
		Name:      "headers_ingested_total",
		Help:      "Count of block headers appended to the local chain.",
	}, []string{"network"})
	syncMerkleBlocks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "spv_sync",
		Name:      "merkle_blocks_total",
		Help:      "Count of merkle blocks handled by outcome.",
	}, []string{"network", "status"})
	syncFalsePositives = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "spv_sync",
		Name:      "false_positive_transactions_total",
		Help:      "Count of filtered transactions irrelevant to the wallet.",
	}, []string{"network"})
	syncPayments = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "spv_sync",
		Name:      "payments_total",
		Help:      "Count of payments recorded by direction.",
	}, []string{"network", "direction"})
	syncBroadcasts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "spv_sync",
		Name:      "broadcasts_total",
		Help:      "Count of transactions queued for broadcast by outcome.",
	}, []string{"network", "status"})
	syncReconnects = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "spv_sync",
		Name:      "reconnects_total",
		Help:      "Count of peer reconnect attempts.",
	}, []string{"network"})
)

// Sync tracks chain and wallet progress of the sync engine.
type Sync struct {
	network string
}

// NewSync creates a Sync metrics collector.
func NewSync(network model.Network) *Sync {
	if network == "" {
		network = "unknown"
	}
	return &Sync{network: string(network)}
}

func (m Sync) ChainHeight(height uint32) {
	syncChainHeight.WithLabelValues(m.network).Set(float64(height))
}

func (m Sync) HeadersIngested(n int) {
	syncHeadersIngested.WithLabelValues(m.network).Add(float64(n))
}

// MerkleBlock records a merkle block as "placed" or "orphan".
func (m Sync) MerkleBlock(status string) {
	syncMerkleBlocks.WithLabelValues(m.network, status).Inc()
}

func (m Sync) FalsePositive() {
	syncFalsePositives.WithLabelValues(m.network).Inc()
}

func (m Sync) Payment(direction model.Direction) {
	syncPayments.WithLabelValues(m.network, direction.String()).Inc()
}

func (m Sync) Broadcast(err error) {
	syncBroadcasts.WithLabelValues(m.network, statusOf(err)).Inc()
}

func (m Sync) Reconnect() {
	syncReconnects.WithLabelValues(m.network).Inc()
}
