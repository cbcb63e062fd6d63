package gallery

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/louisbranch/bpicons/internal/platform/icons"
)

const metricsNamespace = "bpicons_gallery"

// Rejection reasons reported on the rejected counter.
const (
	reasonUnknownIcon   = "unknown_icon"
	reasonInvalidSize   = "invalid_size"
	reasonInvalidIntent = "invalid_intent"
	reasonOther         = "other"
)

// metrics is owned by one handler so servers built in tests do not share
// counters.
type metrics struct {
	registry *prometheus.Registry
	renders  *prometheus.CounterVec
	rejected *prometheus.CounterVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "renders_total",
			Help:      "Icons rendered by /icons/{name}, by icon and pixel grid.",
		}, []string{"icon", "grid"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "rejected_total",
			Help:      "Icon requests rejected before rendering, by reason.",
		}, []string{"reason"}),
	}
	m.registry.MustRegister(
		m.renders,
		m.rejected,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// rendered counts one icon against the grid its paths were drawn from.
func (m *metrics) rendered(name icons.Name, size int) {
	grid := icons.SizeLarge
	if size == icons.SizeStandard {
		grid = icons.SizeStandard
	}
	m.renders.WithLabelValues(name.String(), strconv.Itoa(grid)).Inc()
}

func (m *metrics) reject(err error) {
	reason := reasonOther
	switch {
	case errors.Is(err, errUnknownIcon):
		reason = reasonUnknownIcon
	case errors.Is(err, errInvalidSize):
		reason = reasonInvalidSize
	case errors.Is(err, errInvalidIntent):
		reason = reasonInvalidIntent
	}
	m.rejected.WithLabelValues(reason).Inc()
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
