package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	SyncResultSuccess = "success"
	SyncResultError   = "error"
)

// Metrics agrupa os coletores da API de planejamento
type Metrics struct {
	syncRuns        *prometheus.CounterVec
	syncCreated     prometheus.Counter
	requestDuration *prometheus.HistogramVec
}

var (
	defaultOnce    sync.Once
	defaultMetrics *Metrics
)

// Default retorna o singleton registrado no registry padrão do prometheus
func Default() *Metrics {
	defaultOnce.Do(func() {
		defaultMetrics = New(prometheus.DefaultRegisterer)
	})
	return defaultMetrics
}

func New(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		syncRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "budget_provider_sync_runs_total",
			Help: "Execuções da sincronização de providers por resultado.",
		}, []string{"result"}),
		syncCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "budget_provider_sync_created_total",
			Help: "Clientes criados pela sincronização de providers.",
		}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "budget_http_request_duration_seconds",
			Help:    "Duração das requisições HTTP.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "status"}),
	}

	registerer.MustRegister(m.syncRuns, m.syncCreated, m.requestDuration)

	return m
}

func (m *Metrics) ObserveProviderSync(created int, err error) {
	if m == nil {
		return
	}

	if err != nil {
		m.syncRuns.WithLabelValues(SyncResultError).Inc()
		return
	}

	m.syncRuns.WithLabelValues(SyncResultSuccess).Inc()
	m.syncCreated.Add(float64(created))
}

func (m *Metrics) ObserveRequest(method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}

	m.requestDuration.WithLabelValues(method, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
