package primitives

import (
	"fmt"
	"log/slog"

	"github.com/mitchellh/mapstructure"
	householdcarbon "github.com/superdango/household-carbon"
	"github.com/superdango/household-carbon/model/carbon"
)

const (
	// DirectHomeGramsPerUnit is the emission factor applied to home fuel
	// spending in gCO2eq per dollar-unit.
	DirectHomeGramsPerUnit = 682

	// LbPerMetricTon converts pounds to metric tons.
	LbPerMetricTon = 2204.62

	// GramsPerMetricTon converts metric tons to grams.
	GramsPerMetricTon = 1_000_000
)

// DirectHomeOptions are the inputs of the direct home emissions estimate.
// Both fields default to 0 when omitted, which makes the estimate 0.
type DirectHomeOptions struct {
	// Dollars spent on home energy.
	Dollars float64 `mapstructure:"dollars" yaml:"dollars" json:"dollars"`
	// Price per unit of energy.
	Price float64 `mapstructure:"price" yaml:"price" json:"price"`
}

// DecodeDirectHomeOptions reads direct home options from a loosely typed bag
// such as {"dollars": 100, "price": 1}. Missing keys default to 0, unknown keys
// are rejected.
func DecodeDirectHomeOptions(options map[string]any) (DirectHomeOptions, error) {
	opts := DirectHomeOptions{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           &opts,
	})
	if err != nil {
		return opts, fmt.Errorf("failed to create options decoder: %w", err)
	}

	if err := decoder.Decode(options); err != nil {
		return opts, fmt.Errorf("failed to decode direct home options: %w", err)
	}

	return opts, nil
}

// EstimateDirectHomeEmissions returns the yearly emissions of the energy a
// household buys directly: dollars * price * 682 gCO2eq.
func EstimateDirectHomeEmissions(opts DirectHomeOptions) (householdcarbon.Emissions, error) {
	if err := nonNegative("dollars", opts.Dollars); err != nil {
		return 0, err
	}
	if err := nonNegative("price", opts.Price); err != nil {
		return 0, err
	}

	if opts.Dollars == 0 || opts.Price == 0 {
		slog.Warn("direct home emissions input not set, estimate will be zero", "dollars", opts.Dollars, "price", opts.Price)
	}

	return householdcarbon.Emissions(opts.Dollars * opts.Price * DirectHomeGramsPerUnit), nil
}

// EstimateIndirectHomeEmissions returns the yearly emissions of the grid
// electricity an average household of the state consumes.
// Source: EIA residential consumption and EPA eGRID output emission rates
func EstimateIndirectHomeEmissions(state string) (householdcarbon.Emissions, error) {
	profile, err := carbon.Lookup(state)
	if err != nil {
		return 0, err
	}

	annualMWh := profile.MonthlyConsumptionKWh * 12.0 / 1000.0
	slog.Debug("indirect home consumption", "state", state, "mwh_year", annualMWh)

	tons := profile.GridIntensityLbPerMWh * annualMWh / LbPerMetricTon

	return householdcarbon.Emissions(tons * GramsPerMetricTon), nil
}
