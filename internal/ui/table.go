package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/countries/internal/dataset"
	"github.com/ytget/countries/internal/model"
)

var columnTitleKeys = map[string]string{
	model.ColName:       KeyColName,
	model.ColPopulation: KeyColPopulation,
	model.ColArea:       KeyColArea,
	model.ColContinent:  KeyColContinent,
}

var columnWidths = map[string]float32{
	model.ColName:       NameColumnWidth,
	model.ColPopulation: PopulationColumnWidth,
	model.ColArea:       AreaColumnWidth,
	model.ColContinent:  ContinentColumnWidth,
}

// CountryTable renders rows of the current view in the display columns
type CountryTable struct {
	widget *widget.Table
	loc    *Localization
	rows   [][]string
}

// NewCountryTable creates an empty table
func NewCountryTable(loc *Localization) *CountryTable {
	ct := &CountryTable{loc: loc}

	ct.widget = widget.NewTable(
		func() (int, int) {
			return len(ct.rows), len(model.DisplayColumns)
		},
		func() fyne.CanvasObject {
			l := widget.NewLabel("")
			l.Truncation = fyne.TextTruncateEllipsis
			return l
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(ct.Cell(id.Row, id.Col))
		},
	)

	ct.widget.ShowHeaderRow = true
	ct.widget.CreateHeader = func() fyne.CanvasObject {
		l := widget.NewLabel("")
		l.TextStyle = fyne.TextStyle{Bold: true}
		return l
	}
	ct.widget.UpdateHeader = func(id widget.TableCellID, obj fyne.CanvasObject) {
		if id.Col >= 0 && id.Col < len(model.DisplayColumns) {
			obj.(*widget.Label).SetText(ct.Header(id.Col))
		}
	}

	for i, col := range model.DisplayColumns {
		ct.widget.SetColumnWidth(i, columnWidths[col])
	}
	return ct
}

// Widget returns the table widget
func (ct *CountryTable) Widget() *widget.Table {
	return ct.widget
}

// SetRows replaces the displayed rows
func (ct *CountryTable) SetRows(rows []model.Country) {
	ct.rows = make([][]string, len(rows))
	for i, rec := range rows {
		ct.rows[i] = dataset.DisplayRow(rec)
	}
	ct.widget.ScrollToTop()
	ct.widget.Refresh()
}

// Len returns the number of displayed rows
func (ct *CountryTable) Len() int {
	return len(ct.rows)
}

// Cell returns the text at row, col or "" when out of range
func (ct *CountryTable) Cell(row, col int) string {
	if row < 0 || row >= len(ct.rows) || col < 0 || col >= len(ct.rows[row]) {
		return ""
	}
	return ct.rows[row][col]
}

// Header returns the localized title of column col
func (ct *CountryTable) Header(col int) string {
	return ct.loc.GetText(columnTitleKeys[model.DisplayColumns[col]])
}

// ColumnTitle returns the localized title of a column key
func ColumnTitle(loc *Localization, key string) string {
	return loc.GetText(columnTitleKeys[key])
}
