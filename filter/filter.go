// Package filter reduces the raw world-cities dataset to the records a city
// picker actually needs, country by country.
package filter

import (
	"cmp"
	"slices"

	"github.com/gridbase-inc/citysift/constants"
	"github.com/gridbase-inc/citysift/types"
	"github.com/gridbase-inc/citysift/utils/typeutils"
)

// rankedCity carries the integer population derived once per record so the
// selection rules never re-read the raw field.
type rankedCity struct {
	types.City
	popInt int64
}

type countryGroup struct {
	name   string
	cities []rankedCity
}

// Result is the reduced dataset plus the counters reported after a run.
type Result struct {
	Cities     []types.FilteredCity
	Countries  int
	CityStates int
}

// Filter selects, per country, every million-plus city and every capital.
// Countries with fewer than five million-plus cities keep their five most
// populous records instead, capitals appended on top. A country whose final
// selection is a single record is flagged as a city state on its output row.
//
// The output is ordered by country, then by population descending, and is
// deterministic for a given input: grouping follows first encounter order and
// every sort is stable.
func Filter(cities []types.City) Result {
	groups := groupByCountry(cities)

	out := make([]types.FilteredCity, 0, len(cities))
	cityStates := 0
	for _, group := range groups {
		selected := selectForCountry(group.cities)

		isCityCountry := len(selected) == 1
		if isCityCountry {
			cityStates++
		}
		for _, city := range selected {
			out = append(out, city.Project(isCityCountry))
		}
	}

	sortFiltered(out)
	return Result{Cities: out, Countries: len(groups), CityStates: cityStates}
}

// groupByCountry splits records by their exact country string, keeping
// countries in first encounter order and records in input order.
func groupByCountry(cities []types.City) []countryGroup {
	index := make(map[string]int)
	groups := []countryGroup{}
	for _, city := range cities {
		ranked := rankedCity{City: city, popInt: typeutils.PopulationInt(city.Population)}
		if at, found := index[city.Country]; found {
			groups[at].cities = append(groups[at].cities, ranked)
			continue
		}
		index[city.Country] = len(groups)
		groups = append(groups, countryGroup{name: city.Country, cities: []rankedCity{ranked}})
	}
	return groups
}

// selectForCountry applies the keep rules to one country group and returns
// the surviving records, deduplicated by id.
func selectForCountry(cities []rankedCity) []rankedCity {
	var millionPlus, capitals []rankedCity
	for _, city := range cities {
		if typeutils.Truthy(city.Capital) {
			capitals = append(capitals, city)
		}
		if city.popInt >= constants.MillionPlusThreshold {
			millionPlus = append(millionPlus, city)
		}
	}

	var selected []rankedCity
	if len(millionPlus) >= constants.MinCitiesPerCountry {
		// keep the million-plus set and any capital outside it
		selected = slices.Clone(millionPlus)
		for _, capital := range capitals {
			if !containsID(millionPlus, capital.ID) {
				selected = append(selected, capital)
			}
		}
	} else {
		// keep the largest cities and ensure capitals are included
		ranked := slices.Clone(cities)
		slices.SortStableFunc(ranked, func(a, b rankedCity) int {
			return cmp.Compare(b.popInt, a.popInt)
		})

		numToKeep := max(constants.MinCitiesPerCountry, len(millionPlus))
		selected = slices.Clone(ranked[:min(numToKeep, len(ranked))])
		for _, capital := range capitals {
			if !containsID(selected, capital.ID) {
				selected = append(selected, capital)
			}
		}
	}

	return dedupeByID(selected)
}

func containsID(cities []rankedCity, id int64) bool {
	return slices.ContainsFunc(cities, func(city rankedCity) bool {
		return city.ID == id
	})
}

// dedupeByID keeps the first occurrence of every id.
func dedupeByID(selected []rankedCity) []rankedCity {
	seen := types.NewSet[int64]()
	unique := make([]rankedCity, 0, len(selected))
	for _, city := range selected {
		if seen.Exists(city.ID) {
			continue
		}
		seen.Insert(city.ID)
		unique = append(unique, city)
	}
	return unique
}

// sortFiltered orders the projection by country, then most populous first.
// The ordering key is re-derived from the raw population through the float
// path, which accepts decimal strings the selection's integer reading
// rejects; such records classify as unpopulated but still sort by value.
func sortFiltered(cities []types.FilteredCity) {
	slices.SortStableFunc(cities, func(a, b types.FilteredCity) int {
		if diff := cmp.Compare(a.Country, b.Country); diff != 0 {
			return diff
		}
		return cmp.Compare(
			typeutils.PopulationSortKey(a.Population),
			typeutils.PopulationSortKey(b.Population),
		)
	})
}
