// Package chart renders small bar charts as images for the statistics window.
package chart

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"

	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/ytget/countries/internal/dataset"
)

// ErrNoBars is returned when there is nothing to draw
var ErrNoBars = errors.New("no bars to render")

// Default image size
const (
	DefaultWidth  = 420
	DefaultHeight = 220
)

const (
	minBarWidth = 8
	sidePadding = 60
)

// Bar is one labelled value
type Bar struct {
	Label string
	Value float64
}

// ContinentBars turns continent counts into bars, keeping their order
func ContinentBars(counts []dataset.ContinentCount) []Bar {
	bars := make([]Bar, len(counts))
	for i, c := range counts {
		bars[i] = Bar{Label: c.Continent, Value: float64(c.Count)}
	}
	return bars
}

// RenderBars draws bars into a PNG-decoded image of the given size
func RenderBars(title string, bars []Bar, width, height int) (image.Image, error) {
	if len(bars) == 0 {
		return nil, ErrNoBars
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	values := make([]gochart.Value, len(bars))
	top := 0.0
	for i, b := range bars {
		values[i] = gochart.Value{Label: b.Label, Value: b.Value}
		top = math.Max(top, b.Value)
	}

	barWidth := (width - sidePadding) / (2 * len(bars))
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}

	ch := gochart.BarChart{
		Title:      title,
		Width:      width,
		Height:     height,
		BarWidth:   barWidth,
		BarSpacing: barWidth,
		Background: gochart.Style{Padding: gochart.Box{Top: 28, Left: 12, Right: 12, Bottom: 8}},
		YAxis: gochart.YAxis{
			Range: &gochart.ContinuousRange{Min: 0, Max: math.Ceil(top*1.1) + 1},
		},
		Bars: values,
	}

	var buf bytes.Buffer
	if err := ch.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}
	return img, nil
}

// RenderContinentCounts draws the per-continent record counts
func RenderContinentCounts(title string, counts []dataset.ContinentCount, width, height int) (image.Image, error) {
	return RenderBars(title, ContinentBars(counts), width, height)
}

// Blank returns an empty image of the given size, shown when rendering fails
func Blank(width, height int) image.Image {
	return image.NewRGBA(image.Rect(0, 0, width, height))
}
