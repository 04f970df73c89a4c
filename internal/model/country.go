package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Column keys as they appear in the CSV headers
const (
	ColName         = "name_common"
	ColOfficialName = "name_official"
	ColCapital      = "capital"
	ColRegion       = "region"
	ColPopulation   = "population"
	ColArea         = "area"
	ColContinent    = "continent"
)

// Placeholder written when a text field is missing from the API response
const NotAvailable = "N/A"

// RegionColumns is the fixed schema of a per-region CSV file
var RegionColumns = []string{ColName, ColOfficialName, ColCapital, ColRegion, ColPopulation, ColArea}

// MergedColumns is the schema of the merged CSV file
var MergedColumns = append(append([]string{}, RegionColumns...), ColContinent)

// DisplayColumns is the projection shown in the table
var DisplayColumns = []string{ColName, ColPopulation, ColArea, ColContinent}

// Country is one row of the dataset. Numeric fields keep the text read from
// disk; use the accessors to interpret them.
type Country struct {
	NameCommon   string `json:"name_common"`
	NameOfficial string `json:"name_official"`
	Capital      string `json:"capital"`
	Region       string `json:"region"`
	Population   string `json:"population"`
	Area         string `json:"area"`
	Continent    string `json:"continent"`
}

// Field returns the value stored under a column key, or "" for unknown keys
func (c Country) Field(key string) string {
	switch key {
	case ColName:
		return c.NameCommon
	case ColOfficialName:
		return c.NameOfficial
	case ColCapital:
		return c.Capital
	case ColRegion:
		return c.Region
	case ColPopulation:
		return c.Population
	case ColArea:
		return c.Area
	case ColContinent:
		return c.Continent
	default:
		return ""
	}
}

// SetField stores value under a column key. Unknown keys are ignored.
func (c *Country) SetField(key, value string) {
	switch key {
	case ColName:
		c.NameCommon = value
	case ColOfficialName:
		c.NameOfficial = value
	case ColCapital:
		c.Capital = value
	case ColRegion:
		c.Region = value
	case ColPopulation:
		c.Population = value
	case ColArea:
		c.Area = value
	case ColContinent:
		c.Continent = value
	}
}

// Values returns the fields in the order of columns
func (c Country) Values(columns []string) []string {
	out := make([]string, len(columns))
	for i, col := range columns {
		out[i] = c.Field(col)
	}
	return out
}

// PopulationValue parses the population. Empty means 0.
func (c Country) PopulationValue() (int64, error) {
	s := strings.TrimSpace(c.Population)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("population of %q: %w", c.NameCommon, err)
	}
	return v, nil
}

// AreaValue parses the area. Empty means 0.
func (c Country) AreaValue() (float64, error) {
	s := strings.TrimSpace(c.Area)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("area of %q: %w", c.NameCommon, err)
	}
	return v, nil
}

// PopulationOrZero returns the population as a float, 0 when empty or malformed
func (c Country) PopulationOrZero() float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(c.Population), 64)
	if err != nil {
		return 0
	}
	return v
}

// AreaOrZero returns the area, 0 when empty or malformed
func (c Country) AreaOrZero() float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(c.Area), 64)
	if err != nil {
		return 0
	}
	return v
}

// HasValidNumbers reports whether population and area parse cleanly
func (c Country) HasValidNumbers() bool {
	if _, err := c.PopulationValue(); err != nil {
		return false
	}
	if _, err := c.AreaValue(); err != nil {
		return false
	}
	return true
}
