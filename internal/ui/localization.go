package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2/lang"
	"golang.org/x/text/language"
)

// Supported language codes
const (
	LangSystem  = "system"
	LangEnglish = "en"
	LangSpanish = "es"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyActions          = "actions"
	KeyFile             = "file"
	KeyView             = "view"
	KeyHelp             = "help"
	KeySettings         = "settings"
	KeyLanguage         = "language"
	KeyDataDirectory    = "data_directory"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyClose            = "close"
	KeyBrowse           = "browse"
	KeySettingsSaved    = "settings_saved"
	KeySearchLabel      = "search_label"
	KeySearchHint       = "search_hint"
	KeySearch           = "search"
	KeyShowAll          = "show_all"
	KeyFilterCountries  = "filter_countries"
	KeyFilterTitle      = "filter_title"
	KeyApplyFilter      = "apply_filter"
	KeyContinent        = "continent"
	KeyAllContinents    = "all_continents"
	KeyPopulationRange  = "population_range"
	KeyAreaRange        = "area_range"
	KeyMin              = "min"
	KeyMax              = "max"
	KeyExpression       = "expression"
	KeyExpressionHint   = "expression_hint"
	KeySortBy           = "sort_by"
	KeySortAscending    = "sort_ascending"
	KeySortDescending   = "sort_descending"
	KeyShowStats        = "show_stats"
	KeyStatsTitle       = "stats_title"
	KeyStatsHeading     = "stats_heading"
	KeyMostPopulated    = "most_populated"
	KeyLeastPopulated   = "least_populated"
	KeyMeanPopulation   = "mean_population"
	KeyMeanArea         = "mean_area"
	KeyByContinent      = "by_continent"
	KeyCredits          = "credits"
	KeyCreditsText      = "credits_text"
	KeyRevealDataFile   = "reveal_data_file"
	KeyOpenDataFile     = "open_data_file"
	KeyColName          = "col_name"
	KeyColPopulation    = "col_population"
	KeyColArea          = "col_area"
	KeyColContinent     = "col_continent"
	KeyRowsShown        = "rows_shown"
	KeyNotice           = "notice"
	KeyWarning          = "warning"
	KeyError            = "error"
	KeyInputError       = "input_error"
	KeyDataError        = "data_error"
	KeyNoData           = "no_data"
	KeyNoSearchMatches  = "no_search_matches"
	KeyNoFilterMatches  = "no_filter_matches"
	KeyNoStats          = "no_stats"
	KeyNoSortColumn     = "no_sort_column"
	KeyInvalidNumber    = "invalid_number"
	KeyErrorOpeningFile = "error_opening_file"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: LangEnglish,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" follows the OS locale.
func (l *Localization) SetLanguage(code string) {
	if code == LangSystem || code == "" {
		code = systemLanguage()
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
	}
}

func systemLanguage() string {
	if strings.HasPrefix(strings.ToLower(string(lang.SystemLocale())), LangSpanish) {
		return LangSpanish
	}
	return LangEnglish
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	if texts, exists := l.texts[LangEnglish]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// Format returns the localized text for key with args applied
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// Tag returns the language tag used for number formatting
func (l *Localization) Tag() language.Tag {
	if l.currentLanguage == LangEnglish {
		return language.English
	}
	return language.Spanish
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		LangEnglish: "English",
		LangSpanish: "Español",
	}
}

func (l *Localization) initializeTexts() {
	l.texts[LangEnglish] = map[string]string{
		KeyAppTitle:         "Country Data Viewer",
		KeyActions:          "Actions",
		KeyFile:             "File",
		KeyView:             "View",
		KeyHelp:             "Help",
		KeySettings:         "Settings",
		KeyLanguage:         "Language",
		KeyDataDirectory:    "Data Directory",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyClose:            "Close",
		KeyBrowse:           "Browse",
		KeySettingsSaved:    "Settings saved. Data directory changes apply on next start.",
		KeySearchLabel:      "Search country by name:",
		KeySearchHint:       "Name prefix, e.g. arg",
		KeySearch:           "Search",
		KeyShowAll:          "Show all",
		KeyFilterCountries:  "Filter countries",
		KeyFilterTitle:      "Filter Countries",
		KeyApplyFilter:      "Apply filter",
		KeyContinent:        "Continent",
		KeyAllContinents:    "All",
		KeyPopulationRange:  "Population",
		KeyAreaRange:        "Area (km²)",
		KeyMin:              "Min",
		KeyMax:              "Max",
		KeyExpression:       "Advanced expression",
		KeyExpressionHint:   `e.g. population > 1000000 && area < 50000.0`,
		KeySortBy:           "Sort by:",
		KeySortAscending:    "Sort ascending",
		KeySortDescending:   "Sort descending",
		KeyShowStats:        "Show statistics",
		KeyStatsTitle:       "Global Statistics",
		KeyStatsHeading:     "Country Statistics",
		KeyMostPopulated:    "Most populated:",
		KeyLeastPopulated:   "Least populated:",
		KeyMeanPopulation:   "Mean population:",
		KeyMeanArea:         "Mean area:",
		KeyByContinent:      "Countries by continent",
		KeyCredits:          "Credits",
		KeyCreditsText:      "Country Data Viewer\n\nMade by:\n- Genaro Senatore\n- Exequiel Castro",
		KeyRevealDataFile:   "Show data file",
		KeyOpenDataFile:     "Open data file",
		KeyColName:          "Name",
		KeyColPopulation:    "Population",
		KeyColArea:          "Area",
		KeyColContinent:     "Continent",
		KeyRowsShown:        "%d of %d countries",
		KeyNotice:           "Notice",
		KeyWarning:          "Warning",
		KeyError:            "Error",
		KeyInputError:       "Input error",
		KeyDataError:        "Data error",
		KeyNoData:           "No data loaded.",
		KeyNoSearchMatches:  "No countries start with '%s'.",
		KeyNoFilterMatches:  "No countries match all the filter criteria.",
		KeyNoStats:          "No countries with valid numeric data to compute statistics.",
		KeyNoSortColumn:     "Please select a column to sort by.",
		KeyInvalidNumber:    "Please enter valid numbers. Use '.' only as a thousands separator.",
		KeyErrorOpeningFile: "Error opening file",
	}

	l.texts[LangSpanish] = map[string]string{
		KeyAppTitle:         "Visor de Datos de Países",
		KeyActions:          "Menú de Acciones",
		KeyFile:             "Archivo",
		KeyView:             "Ver",
		KeyHelp:             "Ayuda",
		KeySettings:         "Configuración",
		KeyLanguage:         "Idioma",
		KeyDataDirectory:    "Carpeta de datos",
		KeySave:             "Guardar",
		KeyCancel:           "Cancelar",
		KeyClose:            "Cerrar",
		KeyBrowse:           "Examinar",
		KeySettingsSaved:    "Configuración guardada. El cambio de carpeta se aplica al reiniciar.",
		KeySearchLabel:      "Buscar país por nombre:",
		KeySearchHint:       "Prefijo del nombre, p. ej. arg",
		KeySearch:           "Buscar",
		KeyShowAll:          "Mostrar todos",
		KeyFilterCountries:  "Filtrar países por criterio",
		KeyFilterTitle:      "Filtrar Países",
		KeyApplyFilter:      "Aplicar filtro",
		KeyContinent:        "Continente",
		KeyAllContinents:    "Todos",
		KeyPopulationRange:  "Población",
		KeyAreaRange:        "Superficie (km²)",
		KeyMin:              "Mín",
		KeyMax:              "Máx",
		KeyExpression:       "Expresión avanzada",
		KeyExpressionHint:   `p. ej. population > 1000000 && area < 50000.0`,
		KeySortBy:           "Ordenar por:",
		KeySortAscending:    "Ordenar ascendente",
		KeySortDescending:   "Ordenar descendente",
		KeyShowStats:        "Mostrar estadísticas",
		KeyStatsTitle:       "Estadísticas Globales",
		KeyStatsHeading:     "Estadísticas de Países",
		KeyMostPopulated:    "País más poblado:",
		KeyLeastPopulated:   "País menos poblado:",
		KeyMeanPopulation:   "Promedio de población:",
		KeyMeanArea:         "Promedio de superficie:",
		KeyByContinent:      "Países por continente",
		KeyCredits:          "Créditos",
		KeyCreditsText:      "Programa de Visor de Datos de Países\n\nHecho por:\n- Genaro Senatore\n- Exequiel Castro",
		KeyRevealDataFile:   "Mostrar archivo de datos",
		KeyOpenDataFile:     "Abrir archivo de datos",
		KeyColName:          "Nombre",
		KeyColPopulation:    "Población",
		KeyColArea:          "Superficie",
		KeyColContinent:     "Continente",
		KeyRowsShown:        "%d de %d países",
		KeyNotice:           "Aviso",
		KeyWarning:          "Aviso",
		KeyError:            "Error",
		KeyInputError:       "Error de entrada",
		KeyDataError:        "Error de datos",
		KeyNoData:           "No hay datos cargados.",
		KeyNoSearchMatches:  "No se encontraron países que comiencen con '%s'.",
		KeyNoFilterMatches:  "No se encontraron países que cumplan con todos los criterios de filtro.",
		KeyNoStats:          "No hay países con datos numéricos válidos para calcular estadísticas.",
		KeyNoSortColumn:     "Por favor, selecciona un criterio para ordenar.",
		KeyInvalidNumber:    "Por favor, introduce números válidos. Usa '.' solo como separador de miles.",
		KeyErrorOpeningFile: "Error al abrir el archivo",
	}
}
