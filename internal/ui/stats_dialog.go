package ui

import (
	"fmt"
	"math"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/go-logr/logr"

	"github.com/ytget/countries/internal/chart"
	"github.com/ytget/countries/internal/dataset"
	"github.com/ytget/countries/internal/model"
)

// StatLine is one label/value row of the statistics window
type StatLine struct {
	Label string
	Value string
}

// SummaryLines formats the headline statistics
func SummaryLines(loc *Localization, st *dataset.Stats) []StatLine {
	f := dataset.NewFormatter(loc.Tag())
	return []StatLine{
		{loc.GetText(KeyMostPopulated), countryWithPopulation(f, st.MaxPopulation)},
		{loc.GetText(KeyLeastPopulated), countryWithPopulation(f, st.MinPopulation)},
		{loc.GetText(KeyMeanPopulation), f.Int(math.Round(st.MeanPopulation))},
		{loc.GetText(KeyMeanArea), f.Area(st.MeanArea)},
	}
}

// ContinentLines formats the per-continent counts
func ContinentLines(st *dataset.Stats) []StatLine {
	lines := make([]StatLine, len(st.ByContinent))
	for i, c := range st.ByContinent {
		lines[i] = StatLine{Label: c.Continent + ":", Value: strconv.Itoa(c.Count)}
	}
	return lines
}

func countryWithPopulation(f dataset.Formatter, rec model.Country) string {
	return fmt.Sprintf("%s (%s)", rec.NameCommon, f.Int(rec.PopulationOrZero()))
}

func statGrid(lines []StatLine) *fyne.Container {
	objects := make([]fyne.CanvasObject, 0, 2*len(lines))
	for _, l := range lines {
		objects = append(objects, boldLabel(l.Label), widget.NewLabel(l.Value))
	}
	return container.New(layout.NewFormLayout(), objects...)
}

// NewStatsContent builds the body of the statistics window
func NewStatsContent(loc *Localization, st *dataset.Stats, log logr.Logger) fyne.CanvasObject {
	heading := widget.NewLabelWithStyle(loc.GetText(KeyStatsHeading), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	byContinent := widget.NewLabelWithStyle(loc.GetText(KeyByContinent), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	img, err := chart.RenderContinentCounts(loc.GetText(KeyByContinent), st.ByContinent, ChartWidth, ChartHeight)
	if err != nil {
		log.Error(err, "Failed to render continent chart")
		img = chart.Blank(ChartWidth, ChartHeight)
	}
	chartImage := canvas.NewImageFromImage(img)
	chartImage.FillMode = canvas.ImageFillContain
	chartImage.SetMinSize(fyne.NewSize(ChartWidth, ChartHeight))

	return container.NewVBox(
		heading,
		statGrid(SummaryLines(loc, st)),
		widget.NewSeparator(),
		byContinent,
		statGrid(ContinentLines(st)),
		chartImage,
	)
}

// ShowStatsDialog opens the statistics window
func ShowStatsDialog(window fyne.Window, loc *Localization, st *dataset.Stats, log logr.Logger) {
	content := container.NewVScroll(NewStatsContent(loc, st, log))
	d := dialog.NewCustom(loc.GetText(KeyStatsTitle), loc.GetText(KeyClose), content, window)
	d.Resize(fyne.NewSize(StatsDialogWidth, StatsDialogHeight))
	d.Show()
}
