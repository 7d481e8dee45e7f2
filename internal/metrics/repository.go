package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/model"
)

var (
	repositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "spv_repository",
		Name:      "operations_total",
		Help:      "Count of wallet repository operations.",
	}, []string{"operation", "backend", "network", "status"})
	repositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "spv_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of wallet repository operations.",
		Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"operation", "backend", "network", "status"})
)

// Repository tracks metrics for one wallet store backend.
type Repository struct {
	backend string
	network model.Network
}

// NewRepository creates a Repository metrics collector.
func NewRepository(backend string, network model.Network) *Repository {
	if backend == "" {
		backend = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &Repository{backend: backend, network: network}
}

// Observe records duration and status of a repository operation.
func (m Repository) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	repositoryRequestsTotal.WithLabelValues(operation, m.backend, string(m.network), status).Inc()
	repositoryRequestDuration.WithLabelValues(operation, m.backend, string(m.network), status).
		Observe(time.Since(started).Seconds())
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
