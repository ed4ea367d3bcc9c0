package primitives

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	householdcarbon "github.com/superdango/household-carbon"
	"github.com/superdango/household-carbon/model/carbon"
)

func TestEstimateDirectHomeEmissions(t *testing.T) {
	e, err := EstimateDirectHomeEmissions(DirectHomeOptions{Dollars: 100, Price: 1})
	require.NoError(t, err)
	assert.Equal(t, householdcarbon.Emissions(68200), e)

	e, err = EstimateDirectHomeEmissions(DirectHomeOptions{Dollars: 100})
	require.NoError(t, err)
	assert.Equal(t, householdcarbon.Emissions(0), e)

	e, err = EstimateDirectHomeEmissions(DirectHomeOptions{})
	require.NoError(t, err)
	assert.Equal(t, householdcarbon.Emissions(0), e)

	_, err = EstimateDirectHomeEmissions(DirectHomeOptions{Dollars: -1, Price: 1})
	assert.ErrorIs(t, err, householdcarbon.ErrInvalidInput)
}

func TestDecodeDirectHomeOptions(t *testing.T) {
	opts, err := DecodeDirectHomeOptions(map[string]any{"dollars": 100, "price": "1.5"})
	require.NoError(t, err)
	assert.Equal(t, DirectHomeOptions{Dollars: 100, Price: 1.5}, opts)

	opts, err = DecodeDirectHomeOptions(map[string]any{"dollars": 100})
	require.NoError(t, err)
	assert.Equal(t, DirectHomeOptions{Dollars: 100, Price: 0}, opts)

	opts, err = DecodeDirectHomeOptions(nil)
	require.NoError(t, err)
	assert.Equal(t, DirectHomeOptions{}, opts)

	_, err = DecodeDirectHomeOptions(map[string]any{"dollar": 100})
	assert.Error(t, err)
}

func TestEstimateIndirectHomeEmissions(t *testing.T) {
	e, err := EstimateIndirectHomeEmissions(carbon.UnitedStates)
	require.NoError(t, err)

	consumption, intensity := 887.0, 1381.591
	expected := intensity * (consumption * 12.0 / 1000.0) / 2204.62 * 1e6
	assert.Equal(t, householdcarbon.Emissions(expected), e)
	assert.InDelta(t, 6_670_380.657, float64(e), 1e-3)
	assert.InDelta(t, 6.67, e.TCO2eq(), 0.001)

	vermont, err := EstimateIndirectHomeEmissions("Vermont")
	require.NoError(t, err)
	wyoming, err := EstimateIndirectHomeEmissions("Wyoming")
	require.NoError(t, err)
	assert.Greater(t, float64(wyoming), 10*float64(vermont))
}

func TestEstimateIndirectHomeEmissionsUnknownState(t *testing.T) {
	e, err := EstimateIndirectHomeEmissions("Narnia")
	require.Error(t, err)
	assert.Equal(t, householdcarbon.Emissions(0), e)

	stateErr := new(householdcarbon.UnknownStateError)
	assert.True(t, errors.As(err, &stateErr))
	assert.Equal(t, "Narnia", stateErr.State)
}
