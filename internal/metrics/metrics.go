// Package metrics keeps in-process Prometheus counters for shell commands.
// Nothing is served over the network; the registry is rendered on demand in
// the text exposition format.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "maestro"

// Command outcomes.
const (
	OutcomeApplied  = "applied"
	OutcomeNoop     = "noop"
	OutcomeRejected = "rejected"
)

// Recorder receives session activity.
type Recorder interface {
	// Command counts one command of the given kind with its outcome.
	Command(kind, outcome string)
	// Items records the size of the canonical collection.
	Items(n int)
}

// Nop is a Recorder that records nothing.
type Nop struct{}

func (Nop) Command(string, string) {}
func (Nop) Items(int)              {}

// Metrics is a Recorder backed by a private Prometheus registry.
type Metrics struct {
	registry *prometheus.Registry
	commands *prometheus.CounterVec
	items    prometheus.Gauge
}

// Compile-time interface check.
var _ Recorder = (*Metrics)(nil)

// New creates the collectors and registers them on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Menu commands handled, by command and outcome.",
		}, []string{"command", "outcome"}),
		items: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "menu_items",
			Help:      "Items currently on the menu.",
		}),
	}
	m.registry.MustRegister(m.commands, m.items)
	return m
}

// Command implements Recorder.
func (m *Metrics) Command(kind, outcome string) {
	m.commands.WithLabelValues(kind, outcome).Inc()
}

// Items implements Recorder.
func (m *Metrics) Items(n int) {
	m.items.Set(float64(n))
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteText renders every metric family in the Prometheus text format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
