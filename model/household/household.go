// Package household combines every category estimator into the yearly
// footprint of a household.
package household

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	householdcarbon "github.com/superdango/household-carbon"
	"github.com/superdango/household-carbon/model/carbon"
	"github.com/superdango/household-carbon/model/primitives"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// Categories in reporting order.
const (
	CategoryDirectHome     = "direct_home"
	CategoryIndirectHome   = "indirect_home"
	CategoryFood           = "food"
	CategoryTransportation = "transportation"
	CategoryWaste          = "waste"
)

var ErrConflictingDiet = errors.New("diet and diet_shares are mutually exclusive")

// Household is the profile of a household. Nil sections are not estimated.
type Household struct {
	Name string `mapstructure:"name"`
	// State name or USPS code used for indirect home energy.
	State       string                        `mapstructure:"state"`
	Electricity *primitives.DirectHomeOptions `mapstructure:"electricity"`
	Diet        *primitives.Diet              `mapstructure:"diet"`
	DietShares  *primitives.DietShares        `mapstructure:"diet_shares"`
	Travel      *primitives.Travel            `mapstructure:"travel"`
	Waste       primitives.Waste              `mapstructure:"waste"`
}

// Footprint holds the yearly emissions of a household per category, in gCO2eq.
type Footprint struct {
	Household      string                    `json:"household"`
	State          string                    `json:"state,omitempty"`
	DirectHome     householdcarbon.Emissions `json:"direct_home_gCO2eq_year"`
	IndirectHome   householdcarbon.Emissions `json:"indirect_home_gCO2eq_year"`
	Food           householdcarbon.Emissions `json:"food_gCO2eq_year"`
	Transportation householdcarbon.Emissions `json:"transportation_gCO2eq_year"`
	Waste          householdcarbon.Emissions `json:"waste_gCO2eq_year"`
}

type categoryEmissions struct {
	category  string
	emissions householdcarbon.Emissions
}

func (f Footprint) categories() []categoryEmissions {
	return []categoryEmissions{
		{CategoryDirectHome, f.DirectHome},
		{CategoryIndirectHome, f.IndirectHome},
		{CategoryFood, f.Food},
		{CategoryTransportation, f.Transportation},
		{CategoryWaste, f.Waste},
	}
}

// Total of every category. Waste may lower it when recycling outweighs waste.
func (f Footprint) Total() householdcarbon.Emissions {
	values := make([]float64, 0, 5)
	for _, c := range f.categories() {
		values = append(values, float64(c.emissions))
	}
	return householdcarbon.Emissions(floats.Sum(values))
}

// Metrics returns one yearly emissions metric per category plus the total.
func (f Footprint) Metrics() []*householdcarbon.Metric {
	baseLabels := map[string]string{
		"household": f.Household,
		"state":     f.State,
	}

	metrics := make([]*householdcarbon.Metric, 0, 6)
	for _, c := range f.categories() {
		metric := householdcarbon.NewEmissionsMetric(householdcarbon.Annual(c.emissions))
		metrics = append(metrics, metric.SetLabels(householdcarbon.MergeLabels(baseLabels)).AddLabel("category", c.category))
	}
	metrics = append(metrics, householdcarbon.NewEmissionsMetric(householdcarbon.Annual(f.Total())).
		SetLabels(householdcarbon.MergeLabels(baseLabels)).
		AddLabel("category", "total"))

	return metrics
}

// EstimateErr reports the household and category an estimation failed for.
type EstimateErr struct {
	Err       error
	Household string
	Category  string
}

func (estimateErr *EstimateErr) Error() string {
	return fmt.Sprintf("estimation failed (household: %s, category: %s): %s", estimateErr.Household, estimateErr.Category, estimateErr.Err.Error())
}

func (estimateErr *EstimateErr) Unwrap() error {
	return estimateErr.Err
}

// Estimate computes the footprint of a household.
func Estimate(h Household) (Footprint, error) {
	footprint := Footprint{Household: h.Name}
	fail := func(category string, err error) (Footprint, error) {
		return Footprint{}, &EstimateErr{Err: err, Household: h.Name, Category: category}
	}

	var err error
	if h.Electricity != nil {
		footprint.DirectHome, err = primitives.EstimateDirectHomeEmissions(*h.Electricity)
		if err != nil {
			return fail(CategoryDirectHome, err)
		}
	}

	if h.State != "" {
		footprint.State, err = carbon.ResolveState(h.State)
		if err != nil {
			return fail(CategoryIndirectHome, err)
		}
		footprint.IndirectHome, err = primitives.EstimateIndirectHomeEmissions(footprint.State)
		if err != nil {
			return fail(CategoryIndirectHome, err)
		}
	}

	switch {
	case h.Diet != nil && h.DietShares != nil:
		return fail(CategoryFood, ErrConflictingDiet)
	case h.Diet != nil:
		footprint.Food, err = primitives.EstimateFoodEmissions(*h.Diet)
	case h.DietShares != nil:
		footprint.Food, err = primitives.EstimateFoodEmissionsFromShares(*h.DietShares)
	}
	if err != nil {
		return fail(CategoryFood, err)
	}

	if h.Travel != nil {
		footprint.Transportation, err = primitives.EstimateTransportationEmissions(*h.Travel)
		if err != nil {
			return fail(CategoryTransportation, err)
		}
	}

	footprint.Waste, err = primitives.EstimateWasteEmissions(h.Waste)
	if err != nil {
		return fail(CategoryWaste, err)
	}

	slog.Debug("household footprint estimated", "household", h.Name, "total_tCO2eq_year", footprint.Total().TCO2eq())

	return footprint, nil
}

// EstimateAll estimates every household concurrently and sends footprints on
// the channel, which is closed on return. The first failure cancels the rest.
func EstimateAll(ctx context.Context, households []Household, footprints chan<- Footprint) error {
	defer close(footprints)

	errg, errgctx := errgroup.WithContext(ctx)
	errg.SetLimit(5)

	for _, h := range households {
		errg.Go(func() error {
			if err := errgctx.Err(); err != nil {
				return err
			}

			footprint, err := Estimate(h)
			if err != nil {
				return err
			}

			select {
			case <-errgctx.Done():
				return errgctx.Err()
			case footprints <- footprint:
				return nil
			}
		})
	}

	return errg.Wait()
}
