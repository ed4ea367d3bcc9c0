package demo

import (
	"fmt"
	"math/rand/v2"

	"github.com/superdango/household-carbon/model/carbon"
	"github.com/superdango/household-carbon/model/household"
	"github.com/superdango/household-carbon/model/primitives"
)

// NewHousehold returns a fictive average US household, used for demonstration purpose.
func NewHousehold() household.Household {
	diet := primitives.AverageAmericanDiet
	return household.Household{
		Name:        "demo.carbondriven.dev",
		State:       carbon.UnitedStates,
		Electricity: &primitives.DirectHomeOptions{Dollars: 120, Price: 1},
		Diet:        &diet,
		Travel: &primitives.Travel{
			FlightsPerYear:    1,
			BusMilesPerDay:    1,
			TrainMilesPerDay:  1,
			CarMilesPerGallon: 25,
			CarMilesPerDay:    30,
		},
		Waste: primitives.Waste{DollarsSpent: 1000, RecycledTons: 0.2},
	}
}

// NewHouseholds returns count fictive households spread over random states,
// with noise applied to the average household habits.
func NewHouseholds(count int) []household.Household {
	states := carbon.States()
	households := make([]household.Household, 0, count)
	for i := range count {
		h := NewHousehold()
		h.Name = fmt.Sprintf("demo-%d", i+1)
		h.State = states[rand.IntN(len(states))]
		h.Diet.Meat = noisy(h.Diet.Meat)
		h.Diet.Snacks = noisy(h.Diet.Snacks)
		h.Travel.FlightsPerYear = float64(rand.IntN(5))
		h.Travel.CarMilesPerDay = noisy(h.Travel.CarMilesPerDay)
		h.Waste.DollarsSpent = noisy(h.Waste.DollarsSpent)
		households = append(households, h)
	}
	return households
}

// noisy returns v with up to 50% of variation in both directions.
func noisy(v float64) float64 {
	return v * (0.5 + rand.Float64())
}
