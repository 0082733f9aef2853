package filter

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/gridbase-inc/citysift/types"
	"github.com/stretchr/testify/assert"
)

func TestStats_CountsEveryDimension(t *testing.T) {
	cities := []types.City{
		makeCity(1, "Alpha", "Testland", json.RawMessage(`8000000`), json.RawMessage(`"primary"`)),
		makeCity(2, "Beta", "Testland", json.RawMessage(`"2000000"`), nil),
		makeCity(3, "Gamma", "Testland", json.RawMessage(`400000`), nil),
		makeCity(4, "Vatican City", "Vatican", json.RawMessage(`"800"`), json.RawMessage(`"primary"`)),
		makeCity(5, "Solo", "Sololand", nil, nil),
	}

	stats := Stats(cities)

	assert.Equal(t, 5, stats.Cities)
	assert.Equal(t, 3, stats.Countries)
	assert.Equal(t, 2, stats.Capitals)
	assert.Equal(t, 2, stats.MillionPlus)
	assert.Equal(t, 2, stats.SingleCityCountries)
}

func TestStats_EmptyDataset(t *testing.T) {
	stats := Stats(nil)

	assert.Equal(t, 0, stats.Cities)
	assert.Equal(t, 0, stats.Countries)
	assert.Equal(t, 0, stats.SingleCityCountries)
}
