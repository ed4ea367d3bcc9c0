package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/superdango/household-carbon/internal/demo"
	"github.com/superdango/household-carbon/model/household"
)

func TestRunOpenMetrics(t *testing.T) {
	buf := new(bytes.Buffer)
	err := run(t.Context(), buf, []household.Household{demo.NewHousehold()}, "openmetrics")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 6)
	assert.Contains(t, buf.String(), `estimated_emissions_kgCO2eq_year{category="total",household="demo.carbondriven.dev",state="United States"}`)
}

func TestRunJSON(t *testing.T) {
	buf := new(bytes.Buffer)
	err := run(t.Context(), buf, demo.NewHouseholds(3), "json")
	require.NoError(t, err)

	footprints := make([]household.Footprint, 0)
	require.NoError(t, json.Unmarshal(buf.Bytes(), &footprints))
	require.Len(t, footprints, 3)
	assert.Equal(t, "demo-1", footprints[0].Household)
	assert.Equal(t, "demo-3", footprints[2].Household)
}

func TestRunFailures(t *testing.T) {
	err := run(t.Context(), new(bytes.Buffer), nil, "csv")
	assert.ErrorContains(t, err, "unsupported output format")

	broken := demo.NewHousehold()
	broken.State = "Narnia"
	err = run(t.Context(), new(bytes.Buffer), []household.Household{broken}, "json")
	assert.ErrorContains(t, err, "unknown state")

	err = run(t.Context(), new(bytes.Buffer), []household.Household{broken}, "openmetrics")
	assert.ErrorContains(t, err, "unknown state")
}
