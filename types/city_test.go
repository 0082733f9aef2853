package types

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCity_ProjectKeepsRawForms(t *testing.T) {
	record := []byte(`{"city":"Tokyo","city_ascii":"Tokyo","lat":35.6897,"lng":139.6922,"country":"Japan","admin_name":"Tōkyō","capital":"primary","population":"37732000","id":1392685764}`)

	var city City
	require.NoError(t, json.Unmarshal(record, &city))

	out, err := json.Marshal(city.Project(false))
	require.NoError(t, err)

	// output key order is fixed and population keeps its quoted form
	assert.Equal(t,
		`{"city":"Tokyo","city_ascii":"Tokyo","lat":35.6897,"lng":139.6922,"country":"Japan","admin_name":"Tōkyō","population":"37732000","id":1392685764,"isCityCountry":false}`,
		string(out))
}

func TestCity_AbsentOptionalFieldsStayAbsent(t *testing.T) {
	record := []byte(`{"city":"Nowhere","city_ascii":"Nowhere","lat":1,"lng":2,"country":"Testland","id":5}`)

	var city City
	require.NoError(t, json.Unmarshal(record, &city))
	assert.Nil(t, city.Population)
	assert.Nil(t, city.AdminName)
	assert.Nil(t, city.Capital)

	out, err := json.Marshal(city.Project(true))
	require.NoError(t, err)

	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &keys))
	assert.NotContains(t, keys, "population")
	assert.NotContains(t, keys, "admin_name")
	assert.Contains(t, keys, "isCityCountry")
}

func TestCity_NullPopulationSurvivesRoundTrip(t *testing.T) {
	record := []byte(`{"city":"Ghost","city_ascii":"Ghost","lat":0,"lng":0,"country":"Testland","population":null,"id":9}`)

	var city City
	require.NoError(t, json.Unmarshal(record, &city))
	require.Equal(t, json.RawMessage(`null`), city.Population)

	out, err := json.Marshal(city.Project(false))
	require.NoError(t, err)
	assert.Contains(t, string(out), `"population":null`)
}
