package config

import (
	"slices"

	"fyne.io/fyne/v2"

	"github.com/ytget/countries/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyDataDir        = "data_directory"
	KeyLanguage       = "app_language"
	KeySortColumn     = "sort_column"
	KeySortDescending = "sort_descending"
)

// Default values
const (
	DefaultLanguage   = "system"
	DefaultSortColumn = model.ColName
)

// Settings manages viewer preferences
type Settings struct {
	app        fyne.App
	defaultDir string
}

// NewSettings creates a new settings manager. defaultDir is used while no
// data directory has been saved.
func NewSettings(app fyne.App, defaultDir string) *Settings {
	return &Settings{app: app, defaultDir: defaultDir}
}

// GetDataDirectory returns the directory holding the region and merged files
func (s *Settings) GetDataDirectory() string {
	return s.app.Preferences().StringWithFallback(KeyDataDir, s.defaultDir)
}

// SetDataDirectory sets the data directory. Empty resets to the default.
func (s *Settings) SetDataDirectory(dir string) {
	if dir == "" {
		s.app.Preferences().RemoveValue(KeyDataDir)
		return
	}
	s.app.Preferences().SetString(KeyDataDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetSortColumn returns the last column the table was sorted by
func (s *Settings) GetSortColumn() string {
	col := s.app.Preferences().String(KeySortColumn)
	if !slices.Contains(model.DisplayColumns, col) {
		return DefaultSortColumn
	}
	return col
}

// SetSortColumn remembers the sort column. Unknown columns are ignored.
func (s *Settings) SetSortColumn(col string) {
	if !slices.Contains(model.DisplayColumns, col) {
		return
	}
	s.app.Preferences().SetString(KeySortColumn, col)
}

// GetSortDescending returns the last sort direction
func (s *Settings) GetSortDescending() bool {
	return s.app.Preferences().BoolWithFallback(KeySortDescending, false)
}

// SetSortDescending remembers the sort direction
func (s *Settings) SetSortDescending(desc bool) {
	s.app.Preferences().SetBool(KeySortDescending, desc)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"es":     "Español",
	}
}
