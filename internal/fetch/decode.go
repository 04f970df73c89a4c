package fetch

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ytget/countries/internal/model"
)

// Translation language whose names are written to the CSV
const TranslationLanguage = "spa"

// CapitalSeparator joins multiple capitals into one field
const CapitalSeparator = ", "

// apiCountry is the subset of the API country object that is consumed
type apiCountry struct {
	Translations map[string]apiTranslation `json:"translations"`
	Capital      *[]string                 `json:"capital"`
	Region       *string                   `json:"region"`
	Population   *float64                  `json:"population"`
	Area         *float64                  `json:"area"`
}

type apiTranslation struct {
	Common   *string `json:"common"`
	Official *string `json:"official"`
}

// decodeCountries parses a JSON array of country objects
func decodeCountries(r io.Reader) ([]apiCountry, error) {
	var countries []apiCountry
	if err := json.NewDecoder(r).Decode(&countries); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return countries, nil
}

// toRecord flattens an API country into the per-region CSV schema
func (c apiCountry) toRecord() model.Country {
	rec := model.Country{
		NameCommon:   model.NotAvailable,
		NameOfficial: model.NotAvailable,
		Capital:      model.NotAvailable,
		Region:       model.NotAvailable,
		Population:   "0",
		Area:         "0",
	}

	if tr, ok := c.Translations[TranslationLanguage]; ok {
		if tr.Common != nil {
			rec.NameCommon = *tr.Common
		}
		if tr.Official != nil {
			rec.NameOfficial = *tr.Official
		}
	}
	if c.Capital != nil {
		rec.Capital = strings.Join(*c.Capital, CapitalSeparator)
	}
	if c.Region != nil {
		rec.Region = *c.Region
	}
	if c.Population != nil {
		rec.Population = strconv.FormatInt(int64(*c.Population), 10)
	}
	if c.Area != nil {
		// area is truncated toward zero, e.g. 2780400.9 -> 2780400
		rec.Area = strconv.FormatInt(int64(*c.Area), 10)
	}
	return rec
}
