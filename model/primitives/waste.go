package primitives

import (
	householdcarbon "github.com/superdango/household-carbon"
)

const (
	// WasteGramsPerDollar is the emission factor of spending on goods that end up as waste.
	WasteGramsPerDollar = 4121

	// RecyclingSavingsPerTon is the emissions avoided per recycled ton.
	RecyclingSavingsPerTon = 1308.6
)

// Waste describes the waste produced and recycled by a household over a year.
type Waste struct {
	DollarsSpent float64 `mapstructure:"dollars_spent" yaml:"dollars_spent" json:"dollars_spent"`
	RecycledTons float64 `mapstructure:"recycled_tons" yaml:"recycled_tons" json:"recycled_tons"`
}

// EstimateWasteEmissions returns the yearly waste emissions minus the recycling
// savings. The result is not clamped and goes negative when savings exceed
// waste emissions.
func EstimateWasteEmissions(w Waste) (householdcarbon.Emissions, error) {
	if err := nonNegative("dollars_spent", w.DollarsSpent); err != nil {
		return 0, err
	}
	if err := nonNegative("recycled_tons", w.RecycledTons); err != nil {
		return 0, err
	}

	total := w.DollarsSpent * WasteGramsPerDollar
	savings := w.RecycledTons * RecyclingSavingsPerTon

	return householdcarbon.Emissions(total - savings), nil
}

// EstimateProportionalWasteEmissions is the alternative waste formula where
// recycling removes a fixed proportion (1308.6/1000) of the waste emissions
// instead of a per-ton credit. Recycling households get a negative result.
func EstimateProportionalWasteEmissions(dollarsSpent float64, recycle bool) (householdcarbon.Emissions, error) {
	if err := nonNegative("dollars_spent", dollarsSpent); err != nil {
		return 0, err
	}

	total := dollarsSpent * WasteGramsPerDollar
	if !recycle {
		return householdcarbon.Emissions(total), nil
	}

	savings := total * RecyclingSavingsPerTon / 1000

	return householdcarbon.Emissions(total - savings), nil
}
