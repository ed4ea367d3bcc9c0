package carbon

import (
	"log/slog"
	"slices"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	householdcarbon "github.com/superdango/household-carbon"
	"github.com/superdango/household-carbon/internal/must"
)

// UnitedStates is the national aggregate row of the energy table.
const UnitedStates = "United States"

// StateEnergyProfile describes the average residential electricity usage of a
// state and the carbon intensity of its grid.
type StateEnergyProfile struct {
	// MonthlyConsumptionKWh is the average monthly residential consumption.
	MonthlyConsumptionKWh float64
	// GridIntensityLbPerMWh is the grid output emission rate in lb CO2e per MWh.
	GridIntensityLbPerMWh float64
}

// stateProfiles merges two sources:
// Consumption: EIA, average monthly residential electricity consumption per customer
// https://www.eia.gov/tools/faqs/faq.php?id=97&t=3
// Intensity: EPA eGRID state output emission rates (lb CO2e/MWh)
// https://www.epa.gov/egrid/summary-data
var stateProfiles = map[string]StateEnergyProfile{
	"Alabama":              {MonthlyConsumptionKWh: 1201, GridIntensityLbPerMWh: 1284.902},
	"Alaska":               {MonthlyConsumptionKWh: 555, GridIntensityLbPerMWh: 1375.109},
	"Arizona":              {MonthlyConsumptionKWh: 1014, GridIntensityLbPerMWh: 1426.414},
	"Arkansas":             {MonthlyConsumptionKWh: 1118, GridIntensityLbPerMWh: 1569.596},
	"California":           {MonthlyConsumptionKWh: 532, GridIntensityLbPerMWh: 828.446},
	"Colorado":             {MonthlyConsumptionKWh: 682, GridIntensityLbPerMWh: 1758.347},
	"Connecticut":          {MonthlyConsumptionKWh: 689, GridIntensityLbPerMWh: 840.995},
	"Delaware":             {MonthlyConsumptionKWh: 950, GridIntensityLbPerMWh: 719.562},
	"District of Columbia": {MonthlyConsumptionKWh: 752, GridIntensityLbPerMWh: 840.310},
	"Florida":              {MonthlyConsumptionKWh: 1108, GridIntensityLbPerMWh: 1014.673},
	"Georgia":              {MonthlyConsumptionKWh: 1121, GridIntensityLbPerMWh: 1265.963},
	"Hawaii":               {MonthlyConsumptionKWh: 525, GridIntensityLbPerMWh: 1720.079},
	"Idaho":                {MonthlyConsumptionKWh: 949, GridIntensityLbPerMWh: 800.591},
	"Illinois":             {MonthlyConsumptionKWh: 709, GridIntensityLbPerMWh: 1886.206},
	"Indiana":              {MonthlyConsumptionKWh: 960, GridIntensityLbPerMWh: 1750.667},
	"Iowa":                 {MonthlyConsumptionKWh: 867, GridIntensityLbPerMWh: 1781.354},
	"Kansas":               {MonthlyConsumptionKWh: 891, GridIntensityLbPerMWh: 2219.947},
	"Kentucky":             {MonthlyConsumptionKWh: 1112, GridIntensityLbPerMWh: 1893.401},
	"Louisiana":            {MonthlyConsumptionKWh: 1232, GridIntensityLbPerMWh: 977.082},
	"Maine":                {MonthlyConsumptionKWh: 562, GridIntensityLbPerMWh: 498.952},
	"Maryland":             {MonthlyConsumptionKWh: 975, GridIntensityLbPerMWh: 1376.112},
	"Massachusetts":        {MonthlyConsumptionKWh: 574, GridIntensityLbPerMWh: 963.737},
	"Michigan":             {MonthlyConsumptionKWh: 637, GridIntensityLbPerMWh: 1538.390},
	"Minnesota":            {MonthlyConsumptionKWh: 759, GridIntensityLbPerMWh: 1634.383},
	"Mississippi":          {MonthlyConsumptionKWh: 1206, GridIntensityLbPerMWh: 1011.486},
	"Missouri":             {MonthlyConsumptionKWh: 1058, GridIntensityLbPerMWh: 1974.734},
	"Montana":              {MonthlyConsumptionKWh: 857, GridIntensityLbPerMWh: 2280.744},
	"Nebraska":             {MonthlyConsumptionKWh: 1004, GridIntensityLbPerMWh: 2169.050},
	"Nevada":               {MonthlyConsumptionKWh: 890, GridIntensityLbPerMWh: 1031.220},
	"New Hampshire":        {MonthlyConsumptionKWh: 599, GridIntensityLbPerMWh: 884.163},
	"New Jersey":           {MonthlyConsumptionKWh: 663, GridIntensityLbPerMWh: 895.225},
	"New Mexico":           {MonthlyConsumptionKWh: 640, GridIntensityLbPerMWh: 1748.001},
	"New York":             {MonthlyConsumptionKWh: 577, GridIntensityLbPerMWh: 967.731},
	"North Carolina":       {MonthlyConsumptionKWh: 1079, GridIntensityLbPerMWh: 1361.928},
	"North Dakota":         {MonthlyConsumptionKWh: 1109, GridIntensityLbPerMWh: 2226.141},
	"Ohio":                 {MonthlyConsumptionKWh: 874, GridIntensityLbPerMWh: 1486.322},
	"Oklahoma":             {MonthlyConsumptionKWh: 1116, GridIntensityLbPerMWh: 1195.231},
	"Oregon":               {MonthlyConsumptionKWh: 911, GridIntensityLbPerMWh: 1011.478},
	"Pennsylvania":         {MonthlyConsumptionKWh: 837, GridIntensityLbPerMWh: 1245.582},
	"Rhode Island":         {MonthlyConsumptionKWh: 560, GridIntensityLbPerMWh: 882.900},
	"South Carolina":       {MonthlyConsumptionKWh: 1114, GridIntensityLbPerMWh: 1314.195},
	"South Dakota":         {MonthlyConsumptionKWh: 1044, GridIntensityLbPerMWh: 1878.510},
	"Tennessee":            {MonthlyConsumptionKWh: 1217, GridIntensityLbPerMWh: 1581.154},
	"Texas":                {MonthlyConsumptionKWh: 1140, GridIntensityLbPerMWh: 1252.145},
	"Utah":                 {MonthlyConsumptionKWh: 727, GridIntensityLbPerMWh: 1793.493},
	"Vermont":              {MonthlyConsumptionKWh: 549, GridIntensityLbPerMWh: 274.245},
	"Virginia":             {MonthlyConsumptionKWh: 1122, GridIntensityLbPerMWh: 933.325},
	"Washington":           {MonthlyConsumptionKWh: 973, GridIntensityLbPerMWh: 1281.442},
	"West Virginia":        {MonthlyConsumptionKWh: 1084, GridIntensityLbPerMWh: 2052.382},
	"Wisconsin":            {MonthlyConsumptionKWh: 674, GridIntensityLbPerMWh: 1612.155},
	"Wyoming":              {MonthlyConsumptionKWh: 864, GridIntensityLbPerMWh: 2368.877},
	UnitedStates:           {MonthlyConsumptionKWh: 887, GridIntensityLbPerMWh: 1381.591},
}

// postalCodes maps USPS codes to table keys.
var postalCodes = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas",
	"CA": "California", "CO": "Colorado", "CT": "Connecticut", "DE": "Delaware",
	"DC": "District of Columbia", "FL": "Florida", "GA": "Georgia", "HI": "Hawaii",
	"ID": "Idaho", "IL": "Illinois", "IN": "Indiana", "IA": "Iowa",
	"KS": "Kansas", "KY": "Kentucky", "LA": "Louisiana", "ME": "Maine",
	"MD": "Maryland", "MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota",
	"MS": "Mississippi", "MO": "Missouri", "MT": "Montana", "NE": "Nebraska",
	"NV": "Nevada", "NH": "New Hampshire", "NJ": "New Jersey", "NM": "New Mexico",
	"NY": "New York", "NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio",
	"OK": "Oklahoma", "OR": "Oregon", "PA": "Pennsylvania", "RI": "Rhode Island",
	"SC": "South Carolina", "SD": "South Dakota", "TN": "Tennessee", "TX": "Texas",
	"UT": "Utah", "VT": "Vermont", "VA": "Virginia", "WA": "Washington",
	"WV": "West Virginia", "WI": "Wisconsin", "WY": "Wyoming", "US": UnitedStates,
}

var stateNames []string

func init() {
	for name := range stateProfiles {
		stateNames = append(stateNames, name)
	}
	slices.Sort(stateNames)

	for code, name := range postalCodes {
		_, found := stateProfiles[name]
		must.Assert(found, "postal code does not resolve to a known state", "code", code, "state", name)
	}
}

// States returns every table key in alphabetical order.
func States() []string {
	return slices.Clone(stateNames)
}

// Lookup returns the energy profile of a state. The name must be an exact table key.
func Lookup(state string) (StateEnergyProfile, error) {
	profile, found := stateProfiles[state]
	if !found {
		return StateEnergyProfile{}, &householdcarbon.UnknownStateError{
			State:      state,
			Suggestion: suggest(state),
		}
	}
	return profile, nil
}

// ResolveState returns the table key for a state name or its two-letter USPS code.
func ResolveState(name string) (string, error) {
	if _, found := stateProfiles[name]; found {
		return name, nil
	}
	if state, found := postalCodes[strings.ToUpper(strings.TrimSpace(name))]; found {
		return state, nil
	}
	return "", &householdcarbon.UnknownStateError{State: name, Suggestion: suggest(name)}
}

// suggest fuzzy find the closest state name, or returns an empty string.
func suggest(state string) string {
	if strings.TrimSpace(state) == "" {
		return ""
	}

	ranks := fuzzy.RankFindNormalizedFold(state, stateNames)
	if len(ranks) == 0 {
		ranks = fuzzy.RankFindNormalizedFold(strings.Fields(state)[0], stateNames)
	}
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)

	slog.Debug("fuzzy found the closest state", "source", state, "match", ranks[0].Target)

	return ranks[0].Target
}
