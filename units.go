package householdcarbon

import (
	"log/slog"
	"time"

	"github.com/superdango/household-carbon/internal/must"
)

// Year is the period every estimator reports on.
const Year = 365 * 24 * time.Hour

// Emissions in gCO2eq
type Emissions float64

func (e Emissions) KgCO2eq() float64 {
	return float64(e) / 1000
}

func (e Emissions) TCO2eq() float64 {
	return e.KgCO2eq() / 1000
}

type EmissionsOverTime struct {
	During    time.Duration
	Emissions Emissions
}

var ZeroEmissions = EmissionsOverTime{During: Year, Emissions: 0}

// Annual wraps a yearly estimate.
func Annual(e Emissions) EmissionsOverTime {
	return EmissionsOverTime{During: Year, Emissions: e}
}

// CombineEmissionsOverTime adds every emission to the first one, rescaled to
// the period of the first one.
func CombineEmissionsOverTime(eots ...EmissionsOverTime) EmissionsOverTime {
	must.Assert(len(eots) > 1, "must combine at least two emissions over time")
	base := eots[0]
	for i := 1; i < len(eots); i++ {
		factor := base.During.Seconds() / eots[i].During.Seconds()
		toAdd := eots[i].Emissions * Emissions(factor)
		base.Emissions += toAdd
	}
	return base
}

func (k EmissionsOverTime) KgCO2eq_second() float64 {
	if k.During == 0 {
		slog.Warn("emissions period is not set, should not happen. Please consider raising a bug.")
		k.During = Year
	}
	return k.Emissions.KgCO2eq() / k.During.Seconds()
}

func (k EmissionsOverTime) KgCO2eq_day() float64 {
	return k.KgCO2eq_second() * 60 * 60 * 24
}

func (k EmissionsOverTime) KgCO2eq_year() float64 {
	return k.KgCO2eq_day() * 365
}
