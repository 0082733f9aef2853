package types

import (
	"github.com/goccy/go-json"
)

// City is a dto for one record of the raw world-cities dataset (SimpleMaps
// layout). admin_name, capital and population keep their raw JSON encoding so
// absent, null, empty-string and numeric-as-text forms survive a round trip
// untouched; comparisons never happen on the raw form directly.
type City struct {
	ID         int64           `json:"id"`
	Name       string          `json:"city"`
	NameASCII  string          `json:"city_ascii"`
	Lat        float64         `json:"lat"`
	Lng        float64         `json:"lng"`
	Country    string          `json:"country"`
	AdminName  json.RawMessage `json:"admin_name,omitempty"`
	Capital    json.RawMessage `json:"capital,omitempty"`
	Population json.RawMessage `json:"population,omitempty"`
}

// FilteredCity is the projection written for the city picker. Struct order is
// the output key order; population carries the original raw form, never the
// integer derived during selection.
type FilteredCity struct {
	Name          string          `json:"city"`
	NameASCII     string          `json:"city_ascii"`
	Lat           float64         `json:"lat"`
	Lng           float64         `json:"lng"`
	Country       string          `json:"country"`
	AdminName     json.RawMessage `json:"admin_name,omitempty"`
	Population    json.RawMessage `json:"population,omitempty"`
	ID            int64           `json:"id"`
	IsCityCountry bool            `json:"isCityCountry"`
}

// Project maps a selected record to the output schema. isCityCountry is a
// per-country value and must be identical for every record of the country.
func (c City) Project(isCityCountry bool) FilteredCity {
	return FilteredCity{
		Name:          c.Name,
		NameASCII:     c.NameASCII,
		Lat:           c.Lat,
		Lng:           c.Lng,
		Country:       c.Country,
		AdminName:     c.AdminName,
		Population:    c.Population,
		ID:            c.ID,
		IsCityCountry: isCityCountry,
	}
}
