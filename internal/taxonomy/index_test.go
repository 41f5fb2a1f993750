package taxonomy

import (
	"testing"

	"eladk/pension-match/internal/models"

	"github.com/stretchr/testify/assert"
)

func fp(v float64) *float64 {
	return &v
}

func testRows() []models.TaxonomyRow {
	return []models.TaxonomyRow{
		{
			Company:        "הראל",
			Category:       "קרן פנסיה",
			NewTrackName:   "מסלול מניות",
			OldTrackName:   "מניות",
			ProductNumber:  "5551234",
			ExposureStocks: fp(80),
			ExposureBonds:  fp(15),
		},
		{
			Company:       "הראל",
			Category:      "קרן פנסיה",
			NewTrackName:  "מסלול כללי",
			ProductNumber: "5551235",
		},
		{
			Company:       "מגדל",
			Category:      "קרן פנסיה",
			NewTrackName:  "מסלול כללי",
			ProductNumber: "7771111",
		},
		{
			Company:      "מגדל",
			Category:     "קופת גמל",
			OldTrackName: "כללי",
		},
	}
}

func TestBuildIndexSkipsMalformedRows(t *testing.T) {
	rows := []models.TaxonomyRow{
		{Company: "", Category: "קרן פנסיה"},
		{Company: "הראל", Category: ""},
		{Company: "הראל", Category: "קרן פנסיה", NewTrackName: "מסלול כללי"},
	}
	idx := BuildIndex(rows, nil)
	assert.Equal(t, 1, idx.Len())
}

func TestBuildIndexDuplicateProductNumberKeepsLast(t *testing.T) {
	rows := []models.TaxonomyRow{
		{Company: "הראל", Category: "קרן פנסיה", NewTrackName: "א", ProductNumber: "123"},
		{Company: "מגדל", Category: "קרן פנסיה", NewTrackName: "ב", ProductNumber: "123"},
	}
	idx := BuildIndex(rows, nil)

	row, ok := idx.ByProductNumber("123")
	assert.True(t, ok)
	assert.Equal(t, "מגדל", row.Company)
}

func TestByProductNumber(t *testing.T) {
	idx := BuildIndex(testRows(), nil)

	row, ok := idx.ByProductNumber("5551234")
	assert.True(t, ok)
	assert.Equal(t, "הראל", row.Company)
	assert.Equal(t, "מסלול מניות", row.NewTrackName)

	_, ok = idx.ByProductNumber("0000000")
	assert.False(t, ok)

	// Empty code never matches, even if a row had an empty product number
	_, ok = idx.ByProductNumber("")
	assert.False(t, ok)
}

func TestByCompanyAndTrack(t *testing.T) {
	idx := BuildIndex(testRows(), nil)

	row, ok := idx.ByCompanyAndTrack("הראל", "מסלול מניות")
	assert.True(t, ok)
	assert.Equal(t, "5551234", row.ProductNumber)

	// Track falls back to the old name when no new name exists
	row, ok = idx.ByCompanyAndTrack("מגדל", "כללי")
	assert.True(t, ok)
	assert.Equal(t, "קופת גמל", row.Category)

	_, ok = idx.ByCompanyAndTrack("הראל", "לא קיים")
	assert.False(t, ok)
}

func TestFindByFields(t *testing.T) {
	idx := BuildIndex(testRows(), nil)

	// Matches on the new track name
	row, ok := idx.FindByFields("הראל", "קרן פנסיה", "מסלול מניות")
	assert.True(t, ok)
	assert.Equal(t, "5551234", row.ProductNumber)

	// Matches on the old track name too
	row, ok = idx.FindByFields("הראל", "קרן פנסיה", "מניות")
	assert.True(t, ok)
	assert.Equal(t, "5551234", row.ProductNumber)

	// Company and category must both match exactly
	_, ok = idx.FindByFields("מגדל", "קרן פנסיה", "מסלול מניות")
	assert.False(t, ok)
}

func TestIndexEnumerations(t *testing.T) {
	idx := BuildIndex(testRows(), nil)

	assert.Equal(t, []string{"קרן פנסיה", "קופת גמל"}, idx.Categories())
	assert.Equal(t, []string{"הראל", "מגדל"}, idx.Companies())
	assert.Equal(t, []string{"מסלול מניות", "מסלול כללי"}, idx.SubCategories("קרן פנסיה"))
	assert.Equal(t, []string{"מסלול מניות", "מסלול כללי"}, idx.AllSubCategories())

	// Old-name-only rows have no sub-category entry
	assert.Empty(t, idx.SubCategories("קופת גמל"))
}

func TestTracksForAndCompaniesFor(t *testing.T) {
	idx := BuildIndex(testRows(), nil)

	assert.Equal(t, []string{"מסלול מניות", "מסלול כללי"}, idx.TracksFor("קרן פנסיה", "הראל"))
	assert.Equal(t, []string{"מסלול כללי"}, idx.TracksFor("קרן פנסיה", "מגדל"))
	// Old-name tracks still appear in TracksFor
	assert.Equal(t, []string{"כללי"}, idx.TracksFor("קופת גמל", "מגדל"))
	assert.Nil(t, idx.TracksFor("לא קיים", "הראל"))

	assert.Equal(t, []string{"הראל", "מגדל"}, idx.CompaniesFor("קרן פנסיה", "מסלול כללי"))
	assert.Nil(t, idx.CompaniesFor("קופת גמל", "מסלול כללי"))
}

func TestEmptyIndex(t *testing.T) {
	idx := BuildIndex(nil, nil)
	assert.Equal(t, 0, idx.Len())
	assert.Empty(t, idx.Categories())
	assert.Empty(t, idx.AllSubCategories())
	_, ok := idx.ByProductNumber("123")
	assert.False(t, ok)
}
