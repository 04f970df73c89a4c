package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/countries/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, "Continentes")

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestDataDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, "Continentes")

	// Test default value
	if dir := settings.GetDataDirectory(); dir != "Continentes" {
		t.Errorf("Expected default data directory Continentes, got %s", dir)
	}

	// Test setting custom value
	customDir := "/custom/data"
	settings.SetDataDirectory(customDir)
	if dir := settings.GetDataDirectory(); dir != customDir {
		t.Errorf("Expected data directory %s, got %s", customDir, dir)
	}

	// Empty resets to default
	settings.SetDataDirectory("")
	if dir := settings.GetDataDirectory(); dir != "Continentes" {
		t.Errorf("Expected reset data directory Continentes, got %s", dir)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, "")

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("es")
	if got := settings.GetLanguage(); got != "es" {
		t.Errorf("Expected language es, got %s", got)
	}
}

func TestSortColumn(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, "")

	if col := settings.GetSortColumn(); col != DefaultSortColumn {
		t.Errorf("Expected default sort column %s, got %s", DefaultSortColumn, col)
	}

	settings.SetSortColumn(model.ColPopulation)
	if col := settings.GetSortColumn(); col != model.ColPopulation {
		t.Errorf("Expected sort column %s, got %s", model.ColPopulation, col)
	}

	// Unknown columns are ignored
	settings.SetSortColumn("gdp")
	if col := settings.GetSortColumn(); col != model.ColPopulation {
		t.Errorf("Expected sort column to stay %s, got %s", model.ColPopulation, col)
	}
}

func TestSortDescending(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, "")

	if settings.GetSortDescending() {
		t.Error("Sort should default to ascending")
	}

	settings.SetSortDescending(true)
	if !settings.GetSortDescending() {
		t.Error("Sort descending should be remembered")
	}
}

func TestLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, "")

	options := settings.GetLanguageOptions()
	for _, lang := range []string{"system", "en", "es"} {
		if _, ok := options[lang]; !ok {
			t.Errorf("Language option %s should be available", lang)
		}
	}
}
