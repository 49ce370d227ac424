package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus counters for the player.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry       *prometheus.Registry
	commandsTotal  *prometheus.CounterVec
	duplicateTotal prometheus.Counter
	statusTotal    *prometheus.CounterVec
	swapsTotal     prometheus.Counter
	errorsTotal    *prometheus.CounterVec
	activeSlot     prometheus.Gauge
}

// New creates and registers the player metrics on a private registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	commandsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "duoplayer_commands_total",
		Help: "Commands accepted by the command channel",
	}, []string{"command"})
	duplicateTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "duoplayer_commands_dropped_duplicate_total",
		Help: "Commands dropped by the duplicate filter",
	})
	statusTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "duoplayer_status_lines_total",
		Help: "Status lines written, by type",
	}, []string{"type"})
	swapsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "duoplayer_swaps_total",
		Help: "Active slot swaps performed",
	})
	errorsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "duoplayer_errors_total",
		Help: "Error status lines, by kind",
	}, []string{"kind"})
	activeSlot := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "duoplayer_active_slot",
		Help: "Index of the active player slot",
	})

	registry.MustRegister(
		commandsTotal,
		duplicateTotal,
		statusTotal,
		swapsTotal,
		errorsTotal,
		activeSlot,
	)

	return &Metrics{
		registry:       registry,
		commandsTotal:  commandsTotal,
		duplicateTotal: duplicateTotal,
		statusTotal:    statusTotal,
		swapsTotal:     swapsTotal,
		errorsTotal:    errorsTotal,
		activeSlot:     activeSlot,
	}
}

// IncCommand counts an accepted command.
func (m *Metrics) IncCommand(name string) {
	if m == nil {
		return
	}
	m.commandsTotal.WithLabelValues(name).Inc()
}

// IncDuplicate counts a command dropped as duplicate.
func (m *Metrics) IncDuplicate() {
	if m == nil {
		return
	}
	m.duplicateTotal.Inc()
}

// IncStatus counts a written status line.
func (m *Metrics) IncStatus(kind string) {
	if m == nil {
		return
	}
	m.statusTotal.WithLabelValues(kind).Inc()
}

// IncError counts an error line by its kind.
func (m *Metrics) IncError(kind string) {
	if m == nil {
		return
	}
	m.errorsTotal.WithLabelValues(kind).Inc()
}

// ObserveSwap counts a swap and records the new active slot.
func (m *Metrics) ObserveSwap(active int) {
	if m == nil {
		return
	}
	m.swapsTotal.Inc()
	m.activeSlot.Set(float64(active))
}

// Handler returns an http.Handler that serves the private registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
