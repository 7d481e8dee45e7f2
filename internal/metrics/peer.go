package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/model"
)

var (
	peerMessagesReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "spv_peer",
		Name:      "messages_received_total",
		Help:      "Count of messages received from peers by command.",
	}, []string{"network", "command"})
	peerMessagesSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "spv_peer",
		Name:      "messages_sent_total",
		Help:      "Count of messages written to peers by command.",
	}, []string{"network", "command"})
	peerHandshakes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "spv_peer",
		Name:      "handshakes_total",
		Help:      "Count of version handshakes by outcome.",
	}, []string{"network", "status"})
	peerDisconnects = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "spv_peer",
		Name:      "disconnects_total",
		Help:      "Count of peer disconnects by reason.",
	}, []string{"network", "reason"})
	peerInvalidMerkleBlocks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "spv_peer",
		Name:      "invalid_merkle_blocks_total",
		Help:      "Count of merkle blocks dropped for failing validation.",
	}, []string{"network"})
)

// Peer tracks per-connection protocol metrics.
type Peer struct {
	network string
}

// NewPeer creates a Peer metrics collector.
func NewPeer(network model.Network) *Peer {
	if network == "" {
		network = "unknown"
	}
	return &Peer{network: string(network)}
}

func (m Peer) MessageReceived(command string) {
	peerMessagesReceived.WithLabelValues(m.network, command).Inc()
}

func (m Peer) MessageSent(command string) {
	peerMessagesSent.WithLabelValues(m.network, command).Inc()
}

// Handshake records whether a handshake completed.
func (m Peer) Handshake(err error) {
	peerHandshakes.WithLabelValues(m.network, statusOf(err)).Inc()
}

func (m Peer) Disconnect(reason string) {
	if reason == "" {
		reason = "unknown"
	}
	peerDisconnects.WithLabelValues(m.network, reason).Inc()
}

func (m Peer) InvalidMerkleBlock() {
	peerInvalidMerkleBlocks.WithLabelValues(m.network).Inc()
}
