package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/go-logr/logr"

	"github.com/ytget/countries/internal/config"
	"github.com/ytget/countries/internal/dataset"
	"github.com/ytget/countries/internal/platform"
)

// Options configures a RootUI
type Options struct {
	// Notifier defaults to modal dialogs on the window
	Notifier Notifier
	Logger   logr.Logger
}

// RootUI is the main window: an action panel on the left and the country
// table on the right. It owns the store and the current view.
type RootUI struct {
	window       fyne.Window
	store        *dataset.Store
	view         dataset.View
	settings     *config.Settings
	localization *Localization
	notifier     Notifier
	log          logr.Logger
	dataPath     string

	actionsLabel *widget.Label
	searchLabel  *widget.Label
	sortLabel    *widget.Label
	statusLabel  *widget.Label
	searchEntry  *widget.Entry
	searchBtn    *widget.Button
	showAllBtn   *widget.Button
	filterBtn    *widget.Button
	sortSelect   *widget.Select
	sortAscBtn   *widget.Button
	sortDescBtn  *widget.Button
	statsBtn     *widget.Button
	creditsBtn   *widget.Button
	table        *CountryTable
	filterDialog *FilterDialog
}

// NewRootUI creates the main window content for store
func NewRootUI(window fyne.Window, store *dataset.Store, settings *config.Settings, opts Options) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	logger := opts.Logger
	if logger.GetSink() == nil {
		logger = logr.Discard()
	}

	notifier := opts.Notifier
	if notifier == nil {
		notifier = NewDialogNotifier(window, localization)
	}

	if store == nil {
		store = dataset.NewStore(nil)
	}

	ui := &RootUI{
		window:       window,
		store:        store,
		view:         dataset.ShowAll(store),
		settings:     settings,
		localization: localization,
		notifier:     notifier,
		log:          logger.WithName("ui"),
		dataPath:     store.Path(),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.render()

	ui.log.Info("Viewer ready", "records", store.Len(), "dataPath", store.Path())
	return ui
}

func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.actionsLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	ui.searchLabel = widget.NewLabel("")
	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.OnSubmitted = func(string) { ui.onSearch() }
	ui.searchBtn = widget.NewButton("", ui.onSearch)
	ui.showAllBtn = widget.NewButton("", ui.onShowAll)

	ui.filterBtn = widget.NewButton("", ui.onShowFilter)

	ui.sortLabel = widget.NewLabel("")
	ui.sortSelect = widget.NewSelect(nil, nil)
	ui.sortAscBtn = widget.NewButton("", func() { ui.onSort(false) })
	ui.sortDescBtn = widget.NewButton("", func() { ui.onSort(true) })

	ui.statsBtn = widget.NewButton("", ui.onShowStats)
	ui.creditsBtn = widget.NewButton("", ui.onShowCredits)
	ui.creditsBtn.Importance = widget.LowImportance

	ui.statusLabel = widget.NewLabel("")
	ui.table = NewCountryTable(ui.localization)

	left := container.NewVBox(
		ui.actionsLabel,
		widget.NewSeparator(),
		ui.searchLabel,
		ui.searchEntry,
		ui.searchBtn,
		ui.showAllBtn,
		widget.NewSeparator(),
		ui.filterBtn,
		widget.NewSeparator(),
		ui.sortLabel,
		ui.sortSelect,
		ui.sortAscBtn,
		ui.sortDescBtn,
		widget.NewSeparator(),
		ui.statsBtn,
		ui.creditsBtn,
	)
	sidePanel := container.NewGridWrap(fyne.NewSize(SidePanelWidth, left.MinSize().Height), left)

	content := container.NewBorder(
		nil,
		ui.statusLabel,
		container.NewPadded(sidePanel),
		nil,
		ui.table.Widget(),
	)

	ui.refreshUITexts()
	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	revealItem := fyne.NewMenuItem(ui.localization.GetText(KeyRevealDataFile), ui.onRevealDataFile)
	openItem := fyne.NewMenuItem(ui.localization.GetText(KeyOpenDataFile), ui.onOpenDataFile)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	creditsItem := fyne.NewMenuItem(ui.localization.GetText(KeyCredits), ui.onShowCredits)

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), revealItem, openItem, fyne.NewMenuItemSeparator(), settingsItem),
		languageMenu,
		fyne.NewMenu(ui.localization.GetText(KeyHelp), creditsItem),
	))
}

// refreshUITexts updates all UI texts with the current language
func (ui *RootUI) refreshUITexts() {
	loc := ui.localization
	ui.window.SetTitle(loc.GetText(KeyAppTitle))

	ui.actionsLabel.SetText(loc.GetText(KeyActions))
	ui.searchLabel.SetText(loc.GetText(KeySearchLabel))
	ui.searchEntry.SetPlaceHolder(loc.GetText(KeySearchHint))
	ui.searchBtn.SetText(IconSearch + " " + loc.GetText(KeySearch))
	ui.showAllBtn.SetText(loc.GetText(KeyShowAll))
	ui.filterBtn.SetText(IconFilter + " " + loc.GetText(KeyFilterCountries))
	ui.sortLabel.SetText(loc.GetText(KeySortBy))
	ui.sortAscBtn.SetText(IconAsc + " " + loc.GetText(KeySortAscending))
	ui.sortDescBtn.SetText(IconDesc + " " + loc.GetText(KeySortDescending))
	ui.statsBtn.SetText(IconStats + " " + loc.GetText(KeyShowStats))
	ui.creditsBtn.SetText(loc.GetText(KeyCredits))

	selected := ui.selectedSortKey()
	if selected == "" {
		selected = ui.settings.GetSortColumn()
	}
	options := make([]string, len(dataset.SortColumns))
	for i, col := range dataset.SortColumns {
		options[i] = ColumnTitle(loc, col)
	}
	ui.sortSelect.Options = options
	ui.sortSelect.SetSelected(ColumnTitle(loc, selected))

	ui.table.Widget().Refresh()
	ui.updateStatus()
}

// selectedSortKey maps the sort selector back to a column key, "" when nothing is selected
func (ui *RootUI) selectedSortKey() string {
	idx := ui.sortSelect.SelectedIndex()
	if idx < 0 || idx >= len(dataset.SortColumns) {
		return ""
	}
	return dataset.SortColumns[idx]
}

func (ui *RootUI) render() {
	ui.table.SetRows(ui.view.Rows)
	ui.updateStatus()
}

func (ui *RootUI) updateStatus() {
	if ui.table == nil {
		return
	}
	ui.statusLabel.SetText(ui.localization.Format(KeyRowsShown, ui.table.Len(), ui.store.Len()))
}

// apply installs the outcome of a handler and reports notices and errors.
// It returns false when the handler failed.
func (ui *RootUI) apply(view dataset.View, notice *dataset.Notice, err error) bool {
	if err != nil {
		ui.log.Info("Action failed", "error", err.Error())
		ui.notifier.Error(errorTitle(ui.localization, err), errorForUser(ui.localization, err))
		return false
	}

	ui.view = view
	ui.render()

	if notice != nil {
		ui.notify(notice)
	}
	return true
}

func (ui *RootUI) notify(notice *dataset.Notice) {
	title, message := noticeText(ui.localization, notice)
	if notice.Code == dataset.NoticeNoSortColumn {
		ui.notifier.Warn(title, message)
		return
	}
	ui.notifier.Info(title, message)
}

func (ui *RootUI) onSearch() {
	view, notice := dataset.Search(ui.store, ui.searchEntry.Text)
	ui.log.V(1).Info("Search", "query", view.Query, "matches", len(view.Rows))
	ui.apply(view, notice, nil)
}

func (ui *RootUI) onShowAll() {
	ui.searchEntry.SetText("")
	ui.apply(dataset.ShowAll(ui.store), nil, nil)
}

func (ui *RootUI) onSort(descending bool) {
	key := ui.selectedSortKey()
	view, notice, err := dataset.Sort(ui.store, ui.view, key, descending)
	if ui.apply(view, notice, err) && notice == nil {
		ui.settings.SetSortColumn(key)
		ui.settings.SetSortDescending(descending)
		ui.log.V(1).Info("Sorted", "column", key, "descending", descending)
	}
}

func (ui *RootUI) onShowFilter() {
	if ui.store.Len() == 0 {
		ui.notify(&dataset.Notice{Code: dataset.NoticeNoData})
		return
	}
	ui.filterDialog = NewFilterDialog(ui.window, ui.localization, ui.store.Continents(), ui.applyFilter)
	ui.filterDialog.Show()
}

// applyFilter runs the expression filter when expr is set, the criteria filter otherwise
func (ui *RootUI) applyFilter(in dataset.FilterInput, expr string) bool {
	var (
		view   dataset.View
		notice *dataset.Notice
		err    error
	)
	if expr != "" {
		view, notice, err = dataset.FilterExpr(ui.store, ui.view, expr)
	} else {
		view, notice, err = dataset.Filter(ui.store, ui.view, in)
	}

	if !ui.apply(view, notice, err) {
		return false
	}
	ui.searchEntry.SetText("")
	ui.log.V(1).Info("Filtered", "matches", len(view.Rows))
	return true
}

func (ui *RootUI) onShowStats() {
	st, notice := dataset.ComputeStats(ui.store)
	if notice != nil {
		ui.notify(notice)
		return
	}
	ShowStatsDialog(ui.window, ui.localization, st, ui.log)
}

func (ui *RootUI) onShowCredits() {
	ui.notifier.Info(ui.localization.GetText(KeyCredits), ui.localization.GetText(KeyCreditsText))
}

func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func(languageChanged bool) {
		if languageChanged {
			ui.onLanguageChange(ui.settings.GetLanguage())
		}
		ui.notifier.Info(ui.localization.GetText(KeySettings), ui.localization.GetText(KeySettingsSaved))
	})
}

// onLanguageChange switches the UI language and remembers it
func (ui *RootUI) onLanguageChange(code string) {
	ui.localization.SetLanguage(code)
	ui.settings.SetLanguage(code)
	ui.refreshUITexts()
	ui.createMenu()
}

func (ui *RootUI) onRevealDataFile() {
	ui.withDataFile(platform.OpenFileInManager)
}

func (ui *RootUI) onOpenDataFile() {
	ui.withDataFile(platform.OpenFileWithDefaultApp)
}

func (ui *RootUI) withDataFile(open func(string) error) {
	if ui.dataPath == "" {
		ui.notify(&dataset.Notice{Code: dataset.NoticeNoData})
		return
	}
	if err := open(ui.dataPath); err != nil {
		ui.log.Error(err, "Failed to open data file", "path", ui.dataPath)
		ui.notifier.Error(ui.localization.GetText(KeyErrorOpeningFile), err)
	}
}

// ReportLoadError tells the user the dataset could not be loaded
func (ui *RootUI) ReportLoadError(err error) {
	ui.notifier.Error(errorTitle(ui.localization, err), err)
}

// View returns the rows currently displayed
func (ui *RootUI) View() dataset.View {
	return ui.view
}

// Store returns the dataset the window shows
func (ui *RootUI) Store() *dataset.Store {
	return ui.store
}
