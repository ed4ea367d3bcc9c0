package householdcarbon

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeLabels(t *testing.T) {
	m := Metric{
		Name: "foo",
		Labels: map[string]string{
			"household.name": "the smiths",
			"us/state":       "Texas",
			"diet-kind":      "",
			"grid region":    "ERCOT",
		},
		Value: 1.0,
	}

	assert.Equal(t, map[string]string{
		"household_name": "the smiths",
		"us_state":       "Texas",
		"diet_kind":      "",
		"grid_region":    "ERCOT",
	}, m.SanitizeLabels().Labels)
}

func TestSetMetricLabel(t *testing.T) {
	m := new(Metric)

	m.AddLabel("foo", "bar")
	assert.Equal(t, "bar", m.Labels["foo"])

	m.AddLabel("foo", "baz")
	assert.Equal(t, "baz", m.Labels["foo"])

	m.AddLabel("zoo", "zaz")
	assert.Equal(t, "baz", m.Labels["foo"])
	assert.Equal(t, "zaz", m.Labels["zoo"])

	assert.Len(t, m.Labels, 2)
}

func TestMergeLabelsSkipsEmptyValues(t *testing.T) {
	merged := MergeLabels(
		map[string]string{"household": "a", "state": "Texas"},
		map[string]string{"state": "", "category": "food"},
	)
	assert.Equal(t, map[string]string{"household": "a", "state": "Texas", "category": "food"}, merged)
}

func TestWriteOpenMetrics(t *testing.T) {
	metrics := make(chan *Metric, 3)
	metrics <- NewEmissionsMetric(Annual(Emissions(1_500_000))).SetLabels(map[string]string{
		"household": "demo",
		"category":  "food",
	})
	metrics <- nil
	metrics <- &Metric{Name: "households", Value: 1}
	close(metrics)

	buf := new(bytes.Buffer)
	require.NoError(t, WriteOpenMetrics(t.Context(), buf, metrics))

	assert.Equal(t,
		"estimated_emissions_kgCO2eq_year{category=\"food\",household=\"demo\"} 1500.0000000000\n"+
			"households{} 1.0000000000\n",
		buf.String())
}

func TestWriteOpenMetricsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	err := WriteOpenMetrics(ctx, new(bytes.Buffer), make(chan *Metric))
	assert.True(t, errors.Is(err, context.Canceled))
}
