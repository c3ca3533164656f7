package metrics

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandCounters(t *testing.T) {
	m := New()
	m.Command("add", OutcomeApplied)
	m.Command("add", OutcomeApplied)
	m.Command("remove", OutcomeNoop)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.commands.WithLabelValues("add", OutcomeApplied)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.commands.WithLabelValues("remove", OutcomeNoop)))
	assert.Equal(t, 2, testutil.CollectAndCount(m.commands))
}

func TestItemsGauge(t *testing.T) {
	m := New()
	m.Items(3)
	m.Items(2)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.items))
}

func TestWriteText(t *testing.T) {
	m := New()
	m.Command("filter", OutcomeApplied)
	m.Items(2)

	var buf bytes.Buffer
	require.NoError(t, m.WriteText(&buf))

	out := buf.String()
	assert.Contains(t, out, "# TYPE maestro_commands_total counter")
	assert.Contains(t, out, `maestro_commands_total{command="filter",outcome="applied"} 1`)
	assert.Contains(t, out, "maestro_menu_items 2")
}

func TestNopRecorder(t *testing.T) {
	var r Recorder = Nop{}
	assert.NotPanics(t, func() {
		r.Command("add", OutcomeApplied)
		r.Items(1)
	})
}
