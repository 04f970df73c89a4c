package dataset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ytget/countries/internal/model"
)

// ErrInvalidNumber is returned when a filter bound is not a number
var ErrInvalidNumber = errors.New("invalid number")

// AllContinents is the continent selector value that leaves continent unconstrained
const AllContinents = "All"

// ThousandsSeparator is stripped from bound text before parsing
const ThousandsSeparator = "."

// FilterInput is the raw text collected by the filter dialog or CLI flags
type FilterInput struct {
	Continent     string
	MinPopulation string
	MaxPopulation string
	MinArea       string
	MaxArea       string
}

// Criteria is a parsed filter. Nil bounds are unconstrained.
type Criteria struct {
	Continent     string
	MinPopulation *int64
	MaxPopulation *int64
	MinArea       *float64
	MaxArea       *float64
}

// IsEmpty reports whether the criteria constrain nothing
func (c Criteria) IsEmpty() bool {
	return c.Continent == "" && c.MinPopulation == nil && c.MaxPopulation == nil &&
		c.MinArea == nil && c.MaxArea == nil
}

// ParseCriteria validates the raw input. Bounds may use "." as a thousands separator.
func ParseCriteria(in FilterInput) (Criteria, error) {
	var c Criteria

	continent := strings.TrimSpace(in.Continent)
	if continent != AllContinents {
		c.Continent = continent
	}

	var err error
	if c.MinPopulation, err = parseIntBound("minimum population", in.MinPopulation); err != nil {
		return Criteria{}, err
	}
	if c.MaxPopulation, err = parseIntBound("maximum population", in.MaxPopulation); err != nil {
		return Criteria{}, err
	}
	if c.MinArea, err = parseFloatBound("minimum area", in.MinArea); err != nil {
		return Criteria{}, err
	}
	if c.MaxArea, err = parseFloatBound("maximum area", in.MaxArea); err != nil {
		return Criteria{}, err
	}
	return c, nil
}

func cleanBound(text string) string {
	return strings.ReplaceAll(strings.TrimSpace(text), ThousandsSeparator, "")
}

func parseIntBound(name, text string) (*int64, error) {
	s := cleanBound(text)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q", ErrInvalidNumber, name, text)
	}
	return &v, nil
}

func parseFloatBound(name, text string) (*float64, error) {
	s := cleanBound(text)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q", ErrInvalidNumber, name, text)
	}
	return &v, nil
}

// Match reports whether rec satisfies every supplied constraint. Bounds are
// inclusive. Both numeric fields of rec are parsed whatever the constraints;
// a malformed one is an error.
func (c Criteria) Match(rec model.Country) (bool, error) {
	pop, err := rec.PopulationValue()
	if err != nil {
		return false, err
	}
	area, err := rec.AreaValue()
	if err != nil {
		return false, err
	}
	if c.IsEmpty() {
		return true, nil
	}

	switch {
	case c.Continent != "" && rec.Continent != c.Continent:
		return false, nil
	case c.MinPopulation != nil && pop < *c.MinPopulation:
		return false, nil
	case c.MaxPopulation != nil && pop > *c.MaxPopulation:
		return false, nil
	case c.MinArea != nil && area < *c.MinArea:
		return false, nil
	case c.MaxArea != nil && area > *c.MaxArea:
		return false, nil
	}
	return true, nil
}

// Filter returns the records matching c in current order. The first record
// with malformed data aborts the whole filter.
func (s *Store) Filter(c Criteria) ([]model.Country, error) {
	out := make([]model.Country, 0)
	for _, rec := range s.records {
		ok, err := c.Match(rec)
		if err != nil {
			return nil, fmt.Errorf("filter: %w", err)
		}
		if ok {
			out = append(out, rec)
		}
	}
	return out, nil
}
