package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contadores de chamadas à API remota, por endpoint e resultado
// (ok | service_error | network_error).
var (
	APIRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "doceria_api_requests_total",
		Help: "Chamadas à API da doceria por endpoint e resultado.",
	}, []string{"endpoint", "result"})

	APILatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "doceria_api_request_seconds",
		Help:    "Duração das chamadas à API da doceria.",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})

	VendasRegistradas = promauto.NewCounter(prometheus.CounterOpts{
		Name: "doceria_vendas_registradas_total",
		Help: "Vendas registradas com sucesso pelo bot.",
	})
)
