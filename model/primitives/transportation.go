package primitives

import (
	householdcarbon "github.com/superdango/household-carbon"
)

// Passenger transport emission factors.
// Source: UK Government GHG Conversion Factors for Company Reporting, 2019 methodology
// https://assets.publishing.service.gov.uk/government/uploads/system/uploads/attachment_data/file/904215/2019-ghg-conversion-factors-methodology-v01-02.pdf
const (
	MilesPerKm = 0.621371
	KmPerMile  = 1 / MilesPerKm

	// AverageFlightMiles is the distance assumed for every flight.
	AverageFlightMiles = 6000

	FlightGramsPerKm         = 94.9 // international flight
	BusGramsPerPassengerKm   = 103.91
	TrainGramsPerPassengerKm = 34.8

	// CarGramsPerGallon is the CO2 emitted per gallon of gasoline burned.
	// Source: https://www.epa.gov/greenvehicles/greenhouse-gas-emissions-typical-passenger-vehicle
	CarGramsPerGallon = 8887
)

// Travel describes the yearly flights and daily commutes of a household.
type Travel struct {
	FlightsPerYear    float64 `mapstructure:"flights_per_year" yaml:"flights_per_year" json:"flights_per_year"`
	BusMilesPerDay    float64 `mapstructure:"bus_miles_per_day" yaml:"bus_miles_per_day" json:"bus_miles_per_day"`
	TrainMilesPerDay  float64 `mapstructure:"train_miles_per_day" yaml:"train_miles_per_day" json:"train_miles_per_day"`
	CarMilesPerGallon float64 `mapstructure:"car_miles_per_gallon" yaml:"car_miles_per_gallon" json:"car_miles_per_gallon"`
	CarMilesPerDay    float64 `mapstructure:"car_miles_per_day" yaml:"car_miles_per_day" json:"car_miles_per_day"`
}

func (t Travel) validate() error {
	for field, v := range map[string]float64{
		"flights_per_year":    t.FlightsPerYear,
		"bus_miles_per_day":   t.BusMilesPerDay,
		"train_miles_per_day": t.TrainMilesPerDay,
		"car_miles_per_day":   t.CarMilesPerDay,
	} {
		if err := nonNegative(field, v); err != nil {
			return err
		}
	}
	return positive("car_miles_per_gallon", t.CarMilesPerGallon)
}

// FlightEmissions of the yearly flights.
func (t Travel) FlightEmissions() householdcarbon.Emissions {
	return householdcarbon.Emissions(t.FlightsPerYear * AverageFlightMiles * KmPerMile * FlightGramsPerKm)
}

// BusEmissions of a year of daily bus commutes.
func (t Travel) BusEmissions() householdcarbon.Emissions {
	return householdcarbon.Emissions((t.BusMilesPerDay * DaysPerYear / MilesPerKm) * BusGramsPerPassengerKm)
}

// TrainEmissions of a year of daily train commutes.
func (t Travel) TrainEmissions() householdcarbon.Emissions {
	return householdcarbon.Emissions((t.TrainMilesPerDay * DaysPerYear / MilesPerKm) * TrainGramsPerPassengerKm)
}

// CarEmissions of a year of daily driving. The fuel economy must be positive.
func (t Travel) CarEmissions() householdcarbon.Emissions {
	return householdcarbon.Emissions((t.CarMilesPerDay * DaysPerYear / t.CarMilesPerGallon) * CarGramsPerGallon)
}

// EstimateTransportationEmissions returns the yearly emissions of flights,
// bus, train and car travel. A zero fuel economy is rejected.
func EstimateTransportationEmissions(t Travel) (householdcarbon.Emissions, error) {
	if err := t.validate(); err != nil {
		return 0, err
	}

	return t.FlightEmissions() + t.BusEmissions() + t.TrainEmissions() + t.CarEmissions(), nil
}
