package metrics

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveProviderSync(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveProviderSync(3, nil)
	m.ObserveProviderSync(0, nil)
	m.ObserveProviderSync(0, errors.New("falhou"))

	assert.Equal(t, float64(2), testutil.ToFloat64(m.syncRuns.WithLabelValues(SyncResultSuccess)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.syncRuns.WithLabelValues(SyncResultError)))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.syncCreated))
}

func TestObserveRequest(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	m.ObserveRequest(http.MethodGet, http.StatusOK, 120*time.Millisecond)

	assert.Equal(t, 1, testutil.CollectAndCount(m.requestDuration))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveProviderSync(1, nil)
		m.ObserveRequest(http.MethodPost, http.StatusCreated, time.Second)
	})
}
