package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/countries/internal/dataset"
)

// FilterApplyFunc applies the collected input and reports whether it succeeded.
// The dialog closes only on success.
type FilterApplyFunc func(in dataset.FilterInput, expr string) bool

// FilterDialog collects continent, population and area bounds, and an
// optional expression
type FilterDialog struct {
	window  fyne.Window
	loc     *Localization
	onApply FilterApplyFunc
	dialog  *dialog.CustomDialog

	continentSelect *widget.Select
	minPopEntry     *widget.Entry
	maxPopEntry     *widget.Entry
	minAreaEntry    *widget.Entry
	maxAreaEntry    *widget.Entry
	exprEntry       *widget.Entry
}

// NewFilterDialog creates a filter dialog offering continents plus "All"
func NewFilterDialog(window fyne.Window, loc *Localization, continents []string, onApply FilterApplyFunc) *FilterDialog {
	fd := &FilterDialog{
		window:  window,
		loc:     loc,
		onApply: onApply,
	}

	fd.createUI(continents)
	return fd
}

// Show displays the dialog
func (fd *FilterDialog) Show() {
	fd.dialog.Show()
}

// Hide closes the dialog
func (fd *FilterDialog) Hide() {
	fd.dialog.Hide()
}

func (fd *FilterDialog) createUI(continents []string) {
	all := fd.loc.GetText(KeyAllContinents)
	fd.continentSelect = widget.NewSelect(append([]string{all}, continents...), nil)
	fd.continentSelect.SetSelected(all)

	fd.minPopEntry = numberEntry("1.000.000")
	fd.maxPopEntry = numberEntry("")
	fd.minAreaEntry = numberEntry("")
	fd.maxAreaEntry = numberEntry("")

	fd.exprEntry = widget.NewEntry()
	fd.exprEntry.SetPlaceHolder(fd.loc.GetText(KeyExpressionHint))
	fd.exprEntry.OnSubmitted = func(string) { fd.apply() }

	minText, maxText := fd.loc.GetText(KeyMin), fd.loc.GetText(KeyMax)
	form := container.NewVBox(
		boldLabel("1. "+fd.loc.GetText(KeyContinent)),
		fd.continentSelect,

		boldLabel("2. "+fd.loc.GetText(KeyPopulationRange)),
		container.NewGridWithColumns(2,
			widget.NewLabel(minText), fd.minPopEntry,
			widget.NewLabel(maxText), fd.maxPopEntry,
		),

		boldLabel("3. "+fd.loc.GetText(KeyAreaRange)),
		container.NewGridWithColumns(2,
			widget.NewLabel(minText), fd.minAreaEntry,
			widget.NewLabel(maxText), fd.maxAreaEntry,
		),

		widget.NewSeparator(),
		widget.NewLabel(fd.loc.GetText(KeyExpression)),
		fd.exprEntry,
	)

	cancelBtn := widget.NewButton(fd.loc.GetText(KeyCancel), fd.Hide)
	applyBtn := widget.NewButton(fd.loc.GetText(KeyApplyFilter), fd.apply)
	applyBtn.Importance = widget.HighImportance

	fd.dialog = dialog.NewCustomWithoutButtons(fd.loc.GetText(KeyFilterTitle), form, fd.window)
	fd.dialog.SetButtons([]fyne.CanvasObject{cancelBtn, applyBtn})
	fd.dialog.Resize(fyne.NewSize(FilterDialogWidth, FilterDialogHeight))
}

// Input returns the current field values. The localized "All" maps to
// dataset.AllContinents.
func (fd *FilterDialog) Input() (dataset.FilterInput, string) {
	continent := fd.continentSelect.Selected
	if continent == fd.loc.GetText(KeyAllContinents) {
		continent = dataset.AllContinents
	}
	return dataset.FilterInput{
		Continent:     continent,
		MinPopulation: fd.minPopEntry.Text,
		MaxPopulation: fd.maxPopEntry.Text,
		MinArea:       fd.minAreaEntry.Text,
		MaxArea:       fd.maxAreaEntry.Text,
	}, fd.exprEntry.Text
}

func (fd *FilterDialog) apply() {
	if fd.onApply == nil {
		return
	}
	if fd.onApply(fd.Input()) {
		fd.Hide()
	}
}

func numberEntry(placeholder string) *widget.Entry {
	e := widget.NewEntry()
	e.SetPlaceHolder(placeholder)
	return e
}

func boldLabel(text string) *widget.Label {
	return widget.NewLabelWithStyle(text, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
}
