package householdcarbon_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	householdcarbon "github.com/superdango/household-carbon"
)

func TestCombineEmissionsOverTime(t *testing.T) {
	e1 := householdcarbon.EmissionsOverTime{
		Emissions: householdcarbon.Emissions(1000),
		During:    time.Hour * 24,
	}
	e2 := householdcarbon.EmissionsOverTime{
		Emissions: householdcarbon.Emissions(1000),
		During:    time.Hour * 24,
	}
	assert.Equal(t, 2.0, householdcarbon.CombineEmissionsOverTime(e1, e2).KgCO2eq_day())

	e2 = householdcarbon.EmissionsOverTime{
		Emissions: householdcarbon.Emissions(1000),
		During:    time.Hour * 24 * 5,
	}

	assert.Equal(t, 1.2, householdcarbon.CombineEmissionsOverTime(e1, e2).KgCO2eq_day())

	assert.Equal(t, 0.0, householdcarbon.CombineEmissionsOverTime(householdcarbon.ZeroEmissions, householdcarbon.ZeroEmissions).KgCO2eq_day())
}

func TestEmissionsConversions(t *testing.T) {
	e := householdcarbon.Emissions(6_670_000)
	assert.Equal(t, 6670.0, e.KgCO2eq())
	assert.InDelta(t, 6.67, e.TCO2eq(), 1e-9)

	assert.InDelta(t, 6670.0, householdcarbon.Annual(e).KgCO2eq_year(), 1e-6)
	assert.InDelta(t, 6670.0/365, householdcarbon.Annual(e).KgCO2eq_day(), 1e-9)
}

func TestKgCO2eqUnsetPeriod(t *testing.T) {
	eot := householdcarbon.EmissionsOverTime{Emissions: 365_000}
	assert.InDelta(t, 1.0, eot.KgCO2eq_day(), 1e-9)
}
