package stats

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const header = "Entity,Code,Year,Population - Sex: all - Age: all - Variant: estimates\n"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "writing fixture")
	return path
}

func writeCSV(t *testing.T, rows ...string) string {
	t.Helper()
	return writeFile(t, "population.csv", header+strings.Join(rows, "\n")+"\n")
}

func obs(country string, year int, pop float64) Observation {
	return Observation{Country: country, Year: year, Population: pop}
}

func find(t *testing.T, rows []Observation, country string, year int) Observation {
	t.Helper()
	for _, o := range rows {
		if o.Country == country && o.Year == year {
			return o
		}
	}
	t.Fatalf("no observation for %s %d", country, year)
	return Observation{}
}
