package dataset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/countries/internal/model"
)

func TestSortPopulation(t *testing.T) {
	store := NewStore([]model.Country{
		country("Argentina", "45376763", "2780400", "Americas"),
		country("Uruguay", "3473727", "181034", "Americas"),
	})

	require.NoError(t, store.Sort(model.ColPopulation, false))
	assert.Equal(t, []string{"Uruguay", "Argentina"}, names(store.Records()))

	require.NoError(t, store.Sort(model.ColPopulation, true))
	assert.Equal(t, []string{"Argentina", "Uruguay"}, names(store.Records()))
}

func TestSortNumericNotLexical(t *testing.T) {
	store := NewStore([]model.Country{
		country("A", "100", "", ""),
		country("B", "9", "", ""),
		country("C", "20.5", "", ""),
	})
	require.NoError(t, store.Sort(model.ColPopulation, false))
	assert.Equal(t, []string{"B", "C", "A"}, names(store.Records()))
}

func TestSortStableBothDirections(t *testing.T) {
	records := []model.Country{
		country("First", "10", "", "Europe"),
		country("Second", "5", "", "Asia"),
		country("Third", "10", "", "Europe"),
		country("Fourth", "5", "", "Asia"),
	}

	store := NewStore(append([]model.Country{}, records...))
	require.NoError(t, store.Sort(model.ColPopulation, false))
	assert.Equal(t, []string{"Second", "Fourth", "First", "Third"}, names(store.Records()))

	store = NewStore(append([]model.Country{}, records...))
	require.NoError(t, store.Sort(model.ColPopulation, true))
	assert.Equal(t, []string{"First", "Third", "Second", "Fourth"}, names(store.Records()))
}

func TestSortTextCaseFolded(t *testing.T) {
	store := NewStore([]model.Country{
		country("uruguay", "", "", ""),
		country("Argentina", "", "", ""),
		country("bolivia", "", "", ""),
	})
	require.NoError(t, store.Sort(model.ColName, false))
	assert.Equal(t, []string{"Argentina", "bolivia", "uruguay"}, names(store.Records()))
}

func TestSortMixedPutsNumbersFirst(t *testing.T) {
	store := NewStore([]model.Country{
		country("Text", "unknown", "", ""),
		country("Big", "300", "", ""),
		country("Small", "2", "", ""),
	})
	require.NoError(t, store.Sort(model.ColPopulation, false))
	assert.Equal(t, []string{"Small", "Big", "Text"}, names(store.Records()))
}

func TestSortUnknownColumn(t *testing.T) {
	store := sampleStore()
	before := store.Records()

	err := store.Sort("gdp", false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownColumn))
	assert.Equal(t, before, store.Records())
}
