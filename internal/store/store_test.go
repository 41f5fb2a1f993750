package store

import (
	"os"
	"path/filepath"
	"testing"

	"eladk/pension-match/internal/logging"
	"eladk/pension-match/internal/models"

	"github.com/stretchr/testify/assert"
)

func testLogger() logging.Logger {
	return logging.NewLogrusAdapter("error", "text")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	err := os.WriteFile(path, []byte(content), 0600)
	assert.NoError(t, err)
}

func fp(v float64) *float64 {
	return &v
}

func TestNewTaxonomyStore(t *testing.T) {
	s := NewTaxonomyStore("taxonomy.yaml", testLogger())
	assert.Equal(t, "taxonomy.yaml", s.TaxonomyFile)
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	testFile := filepath.Join(dir, "taxonomy.yaml")
	writeFile(t, testFile, "products: []")

	s := NewTaxonomyStore("", testLogger())

	file, err := s.FindConfigFile(testFile)
	assert.NoError(t, err)
	assert.Equal(t, testFile, file)

	_, err = s.FindConfigFile(filepath.Join(dir, "nonexistent.yaml"))
	assert.Error(t, err)
}

func TestLoadRowsMissingFileIsNotAnError(t *testing.T) {
	s := NewTaxonomyStore(filepath.Join(t.TempDir(), "nope.csv"), testLogger())

	rows, err := s.LoadRows()
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestLoadRowsCSV(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "taxonomy.csv")
	writeFile(t, file, `company,category,old_track_name,new_track_name,product_number,exposure_foreign_currency,exposure_foreign_investments,exposure_israel,exposure_stocks,exposure_bonds,exposure_illiquid_assets,asset_composition
הראל,קרן פנסיה,מניות,מסלול מניות,5551234,,,,80,15,,
מגדל,קופת גמל,,מסלול כללי,,,,,,,,
`)

	s := NewTaxonomyStore(file, testLogger())
	rows, err := s.LoadRows()
	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	assert.Equal(t, "הראל", rows[0].Company)
	assert.Equal(t, "מסלול מניות", rows[0].NewTrackName)
	assert.Equal(t, 80.0, *rows[0].ExposureStocks)
	assert.Equal(t, 15.0, *rows[0].ExposureBonds)
	assert.Nil(t, rows[0].ExposureIsrael, "empty cell stays nil, not zero")

	assert.Nil(t, rows[1].ExposureStocks)
}

func TestLoadRowsYAML(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "taxonomy.yaml")
	writeFile(t, file, `products:
  - company: הראל
    category: קרן פנסיה
    new_track_name: מסלול מניות
    product_number: "5551234"
    exposure_stocks: 80
`)

	s := NewTaxonomyStore(file, testLogger())
	rows, err := s.LoadRows()
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "5551234", rows[0].ProductNumber)
	assert.Equal(t, 80.0, *rows[0].ExposureStocks)
}

func TestLoadRowsYAMLBareList(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "taxonomy.yml")
	writeFile(t, file, `- company: מגדל
  category: קופת גמל
  new_track_name: מסלול כללי
`)

	s := NewTaxonomyStore(file, testLogger())
	rows, err := s.LoadRows()
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "מגדל", rows[0].Company)
}

func TestSaveAndReloadRows(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "taxonomy.yaml")

	rows := []models.TaxonomyRow{
		{
			Company:        "הראל",
			Category:       "קרן פנסיה",
			NewTrackName:   "מסלול מניות",
			ProductNumber:  "5551234",
			ExposureStocks: fp(80),
		},
	}

	s := NewTaxonomyStore(file, testLogger())
	assert.NoError(t, s.SaveRows(rows))

	loaded, err := s.LoadRows()
	assert.NoError(t, err)
	assert.Len(t, loaded, 1)
	assert.Equal(t, rows[0].Company, loaded[0].Company)
	assert.Equal(t, *rows[0].ExposureStocks, *loaded[0].ExposureStocks)
	assert.Nil(t, loaded[0].ExposureBonds)
}
