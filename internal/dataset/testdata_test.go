package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ytget/countries/internal/model"
)

func country(name, population, area, continent string) model.Country {
	return model.Country{
		NameCommon: name,
		Population: population,
		Area:       area,
		Continent:  continent,
	}
}

func names(rows []model.Country) []string {
	out := make([]string, len(rows))
	for i, rec := range rows {
		out[i] = rec.NameCommon
	}
	return out
}

func sampleStore() *Store {
	return NewStore([]model.Country{
		country("Uruguay", "3473727", "181034", "Americas"),
		country("Argentina", "45376763", "2780400", "Americas"),
		country("España", "47351567", "505992", "Europe"),
		country("Armenia", "2963234", "29743", "Asia"),
		country("Islas Malvinas", "2563", "12173", "Americas"),
	})
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "all.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
