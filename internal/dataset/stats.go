package dataset

import (
	"errors"
	"sort"

	"github.com/ytget/countries/internal/model"
)

// ErrNoQualifyingRecords is returned by Stats when no record has a positive
// population and a non-negative area
var ErrNoQualifyingRecords = errors.New("no qualifying records")

// ContinentCount is the number of qualifying records on one continent
type ContinentCount struct {
	Continent string
	Count     int
}

// Stats summarizes the qualifying records of a store
type Stats struct {
	Count          int
	MaxPopulation  model.Country
	MinPopulation  model.Country
	MeanPopulation float64
	MeanArea       float64
	ByContinent    []ContinentCount
}

func qualifies(rec model.Country) bool {
	return rec.PopulationOrZero() > 0 && rec.AreaOrZero() >= 0
}

// Stats computes statistics over the whole store. Ties on population keep
// the first record encountered.
func (s *Store) Stats() (*Stats, error) {
	var (
		st      Stats
		maxPop  float64
		minPop  float64
		sumPop  float64
		sumArea float64
		counts  = make(map[string]int)
	)

	for _, rec := range s.records {
		if !qualifies(rec) {
			continue
		}
		pop := rec.PopulationOrZero()
		if st.Count == 0 || pop > maxPop {
			maxPop = pop
			st.MaxPopulation = rec
		}
		if st.Count == 0 || pop < minPop {
			minPop = pop
			st.MinPopulation = rec
		}
		sumPop += pop
		sumArea += rec.AreaOrZero()
		counts[rec.Continent]++
		st.Count++
	}

	if st.Count == 0 {
		return nil, ErrNoQualifyingRecords
	}

	st.MeanPopulation = sumPop / float64(st.Count)
	st.MeanArea = sumArea / float64(st.Count)

	st.ByContinent = make([]ContinentCount, 0, len(counts))
	for continent, n := range counts {
		st.ByContinent = append(st.ByContinent, ContinentCount{Continent: continent, Count: n})
	}
	sort.Slice(st.ByContinent, func(i, j int) bool {
		return st.ByContinent[i].Continent < st.ByContinent[j].Continent
	})
	return &st, nil
}
