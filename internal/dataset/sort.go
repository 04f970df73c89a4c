package dataset

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/ytget/countries/internal/model"
)

// ErrUnknownColumn is returned when sorting by a column that does not exist
var ErrUnknownColumn = errors.New("unknown column")

// SortColumns lists the columns offered for sorting, in menu order
var SortColumns = model.DisplayColumns

// sortKey is a value interpreted as a number when possible, text otherwise
type sortKey struct {
	num   float64
	isNum bool
	text  string
}

func newSortKey(value string) sortKey {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err == nil && !math.IsNaN(v) {
		return sortKey{num: v, isNum: true}
	}
	return sortKey{text: fold(value)}
}

// compareKeys orders numbers before text, numbers numerically and text
// lexically after case folding.
func compareKeys(a, b sortKey) int {
	switch {
	case a.isNum && b.isNum:
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		}
		return 0
	case a.isNum:
		return -1
	case b.isNum:
		return 1
	}
	return strings.Compare(a.text, b.text)
}

// IsColumn reports whether key names a dataset column
func IsColumn(key string) bool {
	return slices.Contains(model.MergedColumns, key)
}

// Sort reorders the store in place by column key. The sort is stable in both
// directions: records with equal keys keep their relative order.
func (s *Store) Sort(key string, descending bool) error {
	if !IsColumn(key) {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, key)
	}

	slices.SortStableFunc(s.records, func(a, b model.Country) int {
		c := compareKeys(newSortKey(a.Field(key)), newSortKey(b.Field(key)))
		if descending {
			return -c
		}
		return c
	})
	return nil
}
