package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_BundledAsset(t *testing.T) {
	table, err := Load()
	require.NoError(t, err)

	months, ok := table.Lookup("Nigeria", "Maize")
	require.True(t, ok)
	assert.Equal(t, StatusPlant, months["March"])
	assert.Equal(t, StatusHarvest, months["August"])
}

func TestLookup_ExactStoredMap(t *testing.T) {
	table := New(map[string]map[string]string{
		"nigeria_maize": {"March": "plant", "August": "harvest"},
	})

	months, ok := table.Lookup("Nigeria", "Maize")
	require.True(t, ok)
	assert.Equal(t, map[string]string{"March": "plant", "August": "harvest"}, months)
}

func TestLookup_CaseInsensitive(t *testing.T) {
	table := New(map[string]map[string]string{
		"nigeria_maize": {"March": "plant"},
	})

	for _, pair := range [][2]string{
		{"nigeria", "maize"},
		{"NIGERIA", "MAIZE"},
		{"Nigeria", "maize"},
		{" Nigeria ", "Maize"},
	} {
		_, ok := table.Lookup(pair[0], pair[1])
		assert.True(t, ok, "lookup %q/%q", pair[0], pair[1])
	}
}

func TestLookup_AbsentIsNoData(t *testing.T) {
	table := New(map[string]map[string]string{
		"nigeria_maize": {"March": "plant"},
	})

	months, ok := table.Lookup("France", "Maize")
	assert.False(t, ok)
	assert.Nil(t, months)

	months, ok = table.Lookup("Nigeria", "Barley")
	assert.False(t, ok)
	assert.Nil(t, months)
}

func TestCropsForCountry(t *testing.T) {
	table := New(map[string]map[string]string{
		"nigeria_maize":  {"March": "plant"},
		"nigeria_rice":   {"May": "plant"},
		"nigeria_tomato": {"February": "plant"},
		"kenya_maize":    {"March": "plant"},
	})

	crops := table.CropsForCountry("Nigeria")
	assert.Equal(t, []string{"maize", "rice", "tomato"}, crops)

	assert.Empty(t, table.CropsForCountry("France"))
}

func TestCropsForCountry_StableOrder(t *testing.T) {
	table := New(map[string]map[string]string{
		"ghana_tomato":  {},
		"ghana_cassava": {},
		"ghana_maize":   {},
	})

	first := table.CropsForCountry("ghana")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, table.CropsForCountry("ghana"))
	}
}

func TestCountries(t *testing.T) {
	table := New(map[string]map[string]string{
		"nigeria_maize": {},
		"nigeria_rice":  {},
		"kenya_maize":   {},
		"india_wheat":   {},
	})

	assert.Equal(t, []string{"india", "kenya", "nigeria"}, table.Countries())
}

func TestSortedMonths_CalendarOrder(t *testing.T) {
	months := map[string]string{
		"September": "harvest",
		"March":     "plant",
		"August":    "harvest",
		"April":     "plant",
	}

	assert.Equal(t, []string{"March", "April", "August", "September"}, SortedMonths(months))
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte(`{"nigeria_maize": "oops"}`))
	assert.Error(t, err)
}
