package dataset

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/countries/internal/model"
)

func TestLoadMapsColumnsByHeader(t *testing.T) {
	path := writeCSV(t, "continent,population,name_common,area\n"+
		"Americas,45376763,Argentina,2780400\n"+
		"Europe,47351567,España\n")

	store, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, store.Len())
	assert.Equal(t, path, store.Path())

	recs := store.Records()
	assert.Equal(t, model.Country{NameCommon: "Argentina", Population: "45376763", Area: "2780400", Continent: "Americas"}, recs[0])
	assert.Equal(t, "", recs[1].Area)
	assert.Equal(t, "España", recs[1].NameCommon)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDataFileNotFound))
}

func TestLoadEmptyFile(t *testing.T) {
	store, err := Load(writeCSV(t, ""))
	require.NoError(t, err)
	assert.Equal(t, 0, store.Len())
}

func TestLoadMalformedCSV(t *testing.T) {
	_, err := Load(writeCSV(t, "name_common,population\n\"Argentina,1\n"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrDataFileNotFound))
}

func TestLoadCountsInvalidNumbers(t *testing.T) {
	store, err := Load(writeCSV(t, "name_common,population,area\n"+
		"Argentina,45376763,2780400\n"+
		"Nowhere,many,1\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, store.InvalidCount())
}

func TestRecordsReturnsCopy(t *testing.T) {
	store := sampleStore()
	recs := store.Records()
	recs[0].NameCommon = "changed"
	assert.Equal(t, "Uruguay", store.Records()[0].NameCommon)
}

func TestContinents(t *testing.T) {
	store := sampleStore()
	store.records = append(store.records, country("Nowhere", "1", "1", ""))
	assert.Equal(t, []string{"Americas", "Asia", "Europe"}, store.Continents())
}

func TestDisplayRow(t *testing.T) {
	rec := model.Country{NameCommon: "Uruguay", NameOfficial: "República Oriental del Uruguay", Population: "3473727", Area: "181034", Continent: "Americas"}
	assert.Equal(t, []string{"Uruguay", "3473727", "181034", "Americas"}, DisplayRow(rec))
}
