package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/ytget/countries/internal/model"
)

// ErrDataFileNotFound is returned by Load when the merged file does not exist
var ErrDataFileNotFound = errors.New("data file not found")

// Store is the in-memory dataset. Record order is the file read order until
// Sort is called.
type Store struct {
	records []model.Country
	path    string
	invalid int
}

// NewStore wraps records in a store. The slice is owned by the store afterwards.
func NewStore(records []model.Country) *Store {
	s := &Store{records: records}
	for _, rec := range records {
		if !rec.HasValidNumbers() {
			s.invalid++
		}
	}
	return s
}

// Load reads the whole merged CSV at path. Columns are matched by header name,
// so their order does not matter; absent columns read as "".
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDataFileNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	records, err := readRecords(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	s := NewStore(records)
	s.path = path
	return s, nil
}

func readRecords(r io.Reader) ([]model.Country, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var records []model.Country
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		var rec model.Country
		for i, col := range header {
			if i < len(row) {
				rec.SetField(col, row[i])
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// Path returns the file the store was loaded from, if any
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of records
func (s *Store) Len() int {
	return len(s.records)
}

// InvalidCount returns how many records carry a malformed population or area
func (s *Store) InvalidCount() int {
	return s.invalid
}

// Records returns a copy of the records in current order
func (s *Store) Records() []model.Country {
	out := make([]model.Country, len(s.records))
	copy(out, s.records)
	return out
}

// Continents returns the distinct non-empty continent values, sorted
func (s *Store) Continents() []string {
	seen := make(map[string]bool)
	var out []string
	for _, rec := range s.records {
		if rec.Continent != "" && !seen[rec.Continent] {
			seen[rec.Continent] = true
			out = append(out, rec.Continent)
		}
	}
	sort.Strings(out)
	return out
}

// DisplayRow projects a record onto the table columns
func DisplayRow(rec model.Country) []string {
	return rec.Values(model.DisplayColumns)
}
