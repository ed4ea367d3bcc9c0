package primitives

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	householdcarbon "github.com/superdango/household-carbon"
)

func TestEstimateTransportationEmissionsNoTravel(t *testing.T) {
	e, err := EstimateTransportationEmissions(Travel{CarMilesPerGallon: 25})
	require.NoError(t, err)
	assert.Equal(t, householdcarbon.Emissions(0), e)
}

func TestEstimateTransportationEmissions(t *testing.T) {
	tests := []struct {
		name     string
		travel   Travel
		expected float64
	}{
		{"one flight", Travel{FlightsPerYear: 1, CarMilesPerGallon: 25}, 6000 / 0.621371 * 94.9},
		{"bus", Travel{BusMilesPerDay: 10, CarMilesPerGallon: 25}, 10 * 365 / 0.621371 * 103.91},
		{"train", Travel{TrainMilesPerDay: 10, CarMilesPerGallon: 25}, 10 * 365 / 0.621371 * 34.8},
		{"car", Travel{CarMilesPerDay: 25, CarMilesPerGallon: 25}, 365 * 8887},
		{
			"everything",
			Travel{FlightsPerYear: 2, BusMilesPerDay: 1, TrainMilesPerDay: 3, CarMilesPerDay: 30, CarMilesPerGallon: 30},
			2*6000/0.621371*94.9 + 365/0.621371*103.91 + 3*365/0.621371*34.8 + 365*8887,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := EstimateTransportationEmissions(tt.travel)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, float64(e), 1e-6)
		})
	}
}

func TestEstimateTransportationEmissionsInvalidInput(t *testing.T) {
	_, err := EstimateTransportationEmissions(Travel{CarMilesPerDay: 10})
	assert.ErrorIs(t, err, householdcarbon.ErrInvalidInput)
	assert.ErrorContains(t, err, "car_miles_per_gallon")

	_, err = EstimateTransportationEmissions(Travel{FlightsPerYear: -1, CarMilesPerGallon: 25})
	assert.ErrorIs(t, err, householdcarbon.ErrInvalidInput)
	assert.ErrorContains(t, err, "flights_per_year")
}
