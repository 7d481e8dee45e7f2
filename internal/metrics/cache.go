package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/model"
)

var cacheLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "blockinsight7000",
	Subsystem: "spv_repository",
	Name:      "cache_lookups_total",
	Help:      "Count of repository cache lookups by result.",
}, []string{"cache", "network", "result"})

// Cache tracks hit rates of the repository read caches.
type Cache struct {
	network string
}

func NewCache(network model.Network) *Cache {
	if network == "" {
		network = "unknown"
	}
	return &Cache{network: string(network)}
}

func (m Cache) Lookup(cache string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	cacheLookupsTotal.WithLabelValues(cache, m.network, result).Inc()
}
