package chart

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/countries/internal/dataset"
)

func TestContinentBars(t *testing.T) {
	bars := ContinentBars([]dataset.ContinentCount{
		{Continent: "Americas", Count: 56},
		{Continent: "Europe", Count: 53},
	})
	assert.Equal(t, []Bar{{Label: "Americas", Value: 56}, {Label: "Europe", Value: 53}}, bars)
}

func TestRenderContinentCounts(t *testing.T) {
	img, err := RenderContinentCounts("Countries", []dataset.ContinentCount{
		{Continent: "Africa", Count: 59},
		{Continent: "Americas", Count: 56},
		{Continent: "Asia", Count: 50},
		{Continent: "Europe", Count: 53},
	}, 400, 200)
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestRenderBarsDefaultsSize(t *testing.T) {
	img, err := RenderBars("", []Bar{{Label: "Oceania", Value: 27}}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultWidth, img.Bounds().Dx())
	assert.Equal(t, DefaultHeight, img.Bounds().Dy())
}

func TestRenderBarsEmpty(t *testing.T) {
	_, err := RenderBars("", nil, 100, 100)
	assert.True(t, errors.Is(err, ErrNoBars))
}

func TestBlank(t *testing.T) {
	img := Blank(10, 5)
	assert.Equal(t, 10, img.Bounds().Dx())
	assert.Equal(t, 5, img.Bounds().Dy())
}
