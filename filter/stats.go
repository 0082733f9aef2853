package filter

import (
	"github.com/gridbase-inc/citysift/constants"
	"github.com/gridbase-inc/citysift/types"
	"github.com/gridbase-inc/citysift/utils/typeutils"
)

// Stats summarizes the raw dataset before any filtering. Counters cover the
// classification dimensions the keep rules run on, plus how many countries
// ship a single record.
func Stats(cities []types.City) *types.DatasetStats {
	stats := &types.DatasetStats{Cities: len(cities)}

	perCountry := make(map[string]int)
	for _, city := range cities {
		perCountry[city.Country]++
		if typeutils.Truthy(city.Capital) {
			stats.Capitals++
		}
		if typeutils.PopulationInt(city.Population) >= constants.MillionPlusThreshold {
			stats.MillionPlus++
		}
	}

	stats.Countries = len(perCountry)
	for _, count := range perCountry {
		if count == 1 {
			stats.SingleCityCountries++
		}
	}

	return stats
}
