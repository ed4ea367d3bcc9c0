package primitives

import (
	householdcarbon "github.com/superdango/household-carbon"
	"gonum.org/v1/gonum/floats"
)

// Food emission factors in gCO2eq per calorie.
// Source: Jones and Kammen, Quantifying Carbon Footprint Reduction Opportunities for U.S. Households
// http://carbon-calc.erg.berkeley.edu/carbon_calc.bak/ltcalc/data_and_calculations.pdf
const (
	MeatGramsPerCalorie            = 4.52 // meat, fish and eggs
	NutsGramsPerCalorie            = 7.39
	DairyGramsPerCalorie           = 4.66
	GrainsGramsPerCalorie          = 1.47
	FruitVegetablesGramsPerCalorie = 3.03
	SnacksGramsPerCalorie          = 3.73 // snacks, drinks, added oils and sugars
)

// Diet holds one value per food category. Values are daily calories or
// relative weights depending on the estimator.
type Diet struct {
	Meat            float64 `mapstructure:"meat" yaml:"meat" json:"meat"`
	Nuts            float64 `mapstructure:"nuts" yaml:"nuts" json:"nuts"`
	Dairy           float64 `mapstructure:"dairy" yaml:"dairy" json:"dairy"`
	Grains          float64 `mapstructure:"grains" yaml:"grains" json:"grains"`
	FruitVegetables float64 `mapstructure:"fruit_vegetables" yaml:"fruit_vegetables" json:"fruit_vegetables"`
	Snacks          float64 `mapstructure:"snacks" yaml:"snacks" json:"snacks"`
}

// DietShares describes a diet as relative category weights (percentages or
// any other positive scale) of a daily calorie total.
type DietShares struct {
	Weights       Diet    `mapstructure:"weights" yaml:"weights" json:"weights"`
	TotalCalories float64 `mapstructure:"total_calories" yaml:"total_calories" json:"total_calories"`
}

// AverageAmericanDiet is the daily calorie breakdown of the average American diet.
// Source: https://www.ers.usda.gov/amber-waves/2016/december/a-look-at-calorie-sources-in-the-american-diet
var AverageAmericanDiet = Diet{
	Meat:            440,
	Nuts:            60,
	Dairy:           250,
	Grains:          600,
	FruitVegetables: 200,
	Snacks:          900,
}

var foodFactors = []float64{
	MeatGramsPerCalorie,
	NutsGramsPerCalorie,
	DairyGramsPerCalorie,
	GrainsGramsPerCalorie,
	FruitVegetablesGramsPerCalorie,
	SnacksGramsPerCalorie,
}

var dietFields = []string{"meat", "nuts", "dairy", "grains", "fruit_vegetables", "snacks"}

func (d Diet) values() []float64 {
	return []float64{d.Meat, d.Nuts, d.Dairy, d.Grains, d.FruitVegetables, d.Snacks}
}

func (d Diet) validate(prefix string) error {
	for i, v := range d.values() {
		if err := nonNegative(prefix+dietFields[i], v); err != nil {
			return err
		}
	}
	return nil
}

// EstimateFoodEmissions returns the yearly emissions of a diet given in daily
// calories per category.
func EstimateFoodEmissions(calories Diet) (householdcarbon.Emissions, error) {
	if err := calories.validate(""); err != nil {
		return 0, err
	}

	gramsPerDay := floats.Dot(calories.values(), foodFactors)

	return householdcarbon.Emissions(gramsPerDay * DaysPerYear), nil
}

// EstimateFoodEmissionsFromShares returns the yearly emissions of a diet given
// as category weights of a daily calorie total. Each category receives
// weight / sum(weights) * total calories. At least one weight must be positive.
func EstimateFoodEmissionsFromShares(shares DietShares) (householdcarbon.Emissions, error) {
	if err := shares.Weights.validate("weights."); err != nil {
		return 0, err
	}
	if err := nonNegative("total_calories", shares.TotalCalories); err != nil {
		return 0, err
	}

	weights := shares.Weights.values()
	sum := floats.Sum(weights)
	if sum == 0 {
		return 0, &householdcarbon.InvalidInputError{Field: "weights", Value: sum, Reason: "at least one category weight must be positive"}
	}

	calories := make([]float64, len(weights))
	for i, weight := range weights {
		calories[i] = weight / sum * shares.TotalCalories
	}

	gramsPerDay := floats.Dot(calories, foodFactors)

	return householdcarbon.Emissions(gramsPerDay * DaysPerYear), nil
}
