package dataset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/countries/internal/model"
)

func TestShowAll(t *testing.T) {
	store := sampleStore()
	v := ShowAll(store)
	assert.Equal(t, ActionAll, v.Action)
	assert.Equal(t, "", v.Query)
	assert.Len(t, v.Rows, store.Len())
}

func TestSearchHandler(t *testing.T) {
	store := sampleStore()

	v, notice := Search(store, "arg")
	assert.Nil(t, notice)
	assert.Equal(t, ActionSearch, v.Action)
	assert.Equal(t, "arg", v.Query)
	assert.Equal(t, []string{"Argentina"}, names(v.Rows))

	v, notice = Search(store, "zz")
	require.NotNil(t, notice)
	assert.Equal(t, NoticeNoSearchMatches, notice.Code)
	assert.Equal(t, "zz", notice.Query)
	assert.Empty(t, v.Rows)

	v, notice = Search(store, " ")
	assert.Nil(t, notice)
	assert.Equal(t, ActionAll, v.Action)
	assert.Len(t, v.Rows, store.Len())
}

func TestSortHandlerReappliesSearch(t *testing.T) {
	store := sampleStore()
	v, _ := Search(store, "ar")

	v, notice, err := Sort(store, v, model.ColPopulation, false)
	require.NoError(t, err)
	assert.Nil(t, notice)
	assert.Equal(t, "ar", v.Query)
	assert.Equal(t, []string{"Armenia", "Argentina"}, names(v.Rows))
}

func TestSortHandlerShowsAllWithoutQuery(t *testing.T) {
	store := sampleStore()
	prev, _, err := Filter(store, ShowAll(store), FilterInput{Continent: "Europe"})
	require.NoError(t, err)

	v, _, err := Sort(store, prev, model.ColPopulation, true)
	require.NoError(t, err)
	assert.Equal(t, ActionSort, v.Action)
	assert.Equal(t, []string{"España", "Argentina", "Uruguay", "Armenia", "Islas Malvinas"}, names(v.Rows))
}

func TestSortHandlerNoColumn(t *testing.T) {
	store := sampleStore()
	prev := ShowAll(store)

	v, notice, err := Sort(store, prev, "", false)
	require.NoError(t, err)
	require.NotNil(t, notice)
	assert.Equal(t, NoticeNoSortColumn, notice.Code)
	assert.Equal(t, prev, v)
}

func TestSortHandlerUnknownColumn(t *testing.T) {
	store := sampleStore()
	prev := ShowAll(store)

	v, _, err := Sort(store, prev, "gdp", false)
	assert.True(t, errors.Is(err, ErrUnknownColumn))
	assert.Equal(t, prev, v)
}

func TestFilterHandler(t *testing.T) {
	store := sampleStore()
	prev, _ := Search(store, "ar")

	v, notice, err := Filter(store, prev, FilterInput{Continent: "Americas", MinPopulation: "1000000"})
	require.NoError(t, err)
	assert.Nil(t, notice)
	assert.Equal(t, ActionFilter, v.Action)
	assert.Equal(t, "", v.Query)
	assert.Equal(t, []string{"Uruguay", "Argentina"}, names(v.Rows))
}

func TestFilterHandlerInvalidBoundKeepsView(t *testing.T) {
	store := sampleStore()
	prev, _ := Search(store, "ar")

	v, notice, err := Filter(store, prev, FilterInput{MinPopulation: "abc"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidNumber))
	assert.Nil(t, notice)
	assert.Equal(t, prev, v)
}

func TestFilterHandlerMalformedRecordKeepsView(t *testing.T) {
	store := NewStore([]model.Country{
		country("Uruguay", "3473727", "181034", "Americas"),
		country("Nowhere", "many", "1", "Americas"),
	})
	prev := ShowAll(store)

	v, notice, err := Filter(store, prev, FilterInput{Continent: "Americas"})
	require.Error(t, err)
	assert.Nil(t, notice)
	assert.Equal(t, prev, v)

	v, notice, err = Filter(store, prev, FilterInput{Continent: "Europe", MinPopulation: "1"})
	require.Error(t, err)
	assert.Nil(t, notice)
	assert.Equal(t, prev, v)
}

func TestFilterHandlerNoMatches(t *testing.T) {
	store := sampleStore()
	v, notice, err := Filter(store, ShowAll(store), FilterInput{Continent: "Oceania"})
	require.NoError(t, err)
	require.NotNil(t, notice)
	assert.Equal(t, NoticeNoFilterMatches, notice.Code)
	assert.Empty(t, v.Rows)
}

func TestFilterHandlerNoData(t *testing.T) {
	store := NewStore(nil)
	prev := ShowAll(store)

	v, notice, err := Filter(store, prev, FilterInput{})
	require.NoError(t, err)
	require.NotNil(t, notice)
	assert.Equal(t, NoticeNoData, notice.Code)
	assert.Equal(t, prev, v)

	_, notice, err = FilterExpr(store, prev, "true")
	require.NoError(t, err)
	assert.Equal(t, NoticeNoData, notice.Code)
}

func TestFilterExprHandler(t *testing.T) {
	store := sampleStore()
	prev := ShowAll(store)

	v, notice, err := FilterExpr(store, prev, `continent == "Asia"`)
	require.NoError(t, err)
	assert.Nil(t, notice)
	assert.Equal(t, []string{"Armenia"}, names(v.Rows))

	v, _, err = FilterExpr(store, prev, `population >`)
	assert.True(t, errors.Is(err, ErrInvalidExpression))
	assert.Equal(t, prev, v)
}

func TestComputeStatsNotices(t *testing.T) {
	st, notice := ComputeStats(sampleStore())
	assert.Nil(t, notice)
	require.NotNil(t, st)

	_, notice = ComputeStats(NewStore(nil))
	assert.Equal(t, NoticeNoData, notice.Code)

	_, notice = ComputeStats(NewStore([]model.Country{country("A", "0", "0", "X")}))
	assert.Equal(t, NoticeNoStats, notice.Code)
}
