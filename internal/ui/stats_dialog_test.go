package ui

import (
	"testing"

	"github.com/go-logr/logr"

	"github.com/ytget/countries/internal/dataset"
)

func TestSummaryLines(t *testing.T) {
	st, err := sampleStore().Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}

	loc := NewLocalization()
	loc.SetLanguage(LangSpanish)
	lines := SummaryLines(loc, st)

	if lines[0].Label != "País más poblado:" || lines[0].Value != "España (47.351.567)" {
		t.Errorf("Unexpected max line %+v", lines[0])
	}
	if lines[1].Value != "Armenia (2.963.234)" {
		t.Errorf("Unexpected min line %+v", lines[1])
	}
	if lines[2].Value != "24.791.323" {
		t.Errorf("Unexpected mean population %q", lines[2].Value)
	}
	if lines[3].Value != "874.292,25 km²" {
		t.Errorf("Unexpected mean area %q", lines[3].Value)
	}
}

func TestContinentLines(t *testing.T) {
	st := &dataset.Stats{ByContinent: []dataset.ContinentCount{{Continent: "Americas", Count: 2}, {Continent: "Asia", Count: 1}}}
	lines := ContinentLines(st)
	if len(lines) != 2 || lines[0].Label != "Americas:" || lines[0].Value != "2" {
		t.Errorf("Unexpected continent lines %+v", lines)
	}
}

func TestNewStatsContent(t *testing.T) {
	st, err := sampleStore().Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if NewStatsContent(NewLocalization(), st, logr.Discard()) == nil {
		t.Error("Stats content should not be nil")
	}
}
