// Package metrics provides Prometheus counters for the intercepting
// layers. Layers only touch it when settings enable metrics; hosts
// that serve HTTP can mount Handler wherever they expose the rest of
// their telemetry.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	globalMetrics     *Metrics
	globalMetricsOnce sync.Once
)

// Metrics holds the counters both layers report into.
type Metrics struct {
	// ShaderModules counts vkCreateShaderModule interceptions by
	// outcome: compiled, failed, passthrough.
	ShaderModules *prometheus.CounterVec

	// QueueRetrievals counts vkGetDeviceQueue calls by kind:
	// direct, folded.
	QueueRetrievals *prometheus.CounterVec

	// QueueOps counts serialised per-queue operations by op:
	// submit, wait_idle, present, bind_sparse.
	QueueOps *prometheus.CounterVec
}

// New returns the process-wide metrics, registering them on first
// use. Both layers may run in one process; a singleton avoids double
// registration.
func New() *Metrics {
	globalMetricsOnce.Do(func() {
		globalMetrics = newMetrics(prometheus.DefaultRegisterer)
	})
	return globalMetrics
}

func newMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ShaderModules: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vklayers_shader_modules_total",
			Help: "Shader module creations seen by the GLSL layer, by outcome",
		}, []string{"outcome"}),
		QueueRetrievals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vklayers_queue_retrievals_total",
			Help: "Device queue retrievals seen by the queue muxer, by kind",
		}, []string{"kind"}),
		QueueOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vklayers_queue_ops_total",
			Help: "Per-queue operations serialised by the queue muxer, by op",
		}, []string{"op"}),
	}
	reg.MustRegister(m.ShaderModules, m.QueueRetrievals, m.QueueOps)
	return m
}

// Handler exposes the default registry over HTTP.
func Handler() http.Handler {
	return promhttp.Handler()
}
