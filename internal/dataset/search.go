package dataset

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/ytget/countries/internal/model"
)

// fold case-normalizes s for comparisons
func fold(s string) string {
	return cases.Fold().String(s)
}

// NormalizeQuery trims and case-folds a search query
func NormalizeQuery(query string) string {
	return fold(strings.TrimSpace(query))
}

// Search returns the records whose common name starts with query, ignoring
// case. An empty query returns every record in current order.
func (s *Store) Search(query string) []model.Country {
	q := NormalizeQuery(query)
	if q == "" {
		return s.Records()
	}

	out := make([]model.Country, 0)
	for _, rec := range s.records {
		if strings.HasPrefix(fold(rec.NameCommon), q) {
			out = append(out, rec)
		}
	}
	return out
}
