// Package taxonomy holds the in-memory index over the canonical product
// taxonomy and the fuzzy matchers that resolve free-text labels against it.
package taxonomy

import (
	"eladk/pension-match/internal/logging"
	"eladk/pension-match/internal/models"
)

// Index is an immutable set of lookup structures built once from the full
// reference taxonomy. A reload builds a fresh Index and swaps it wholesale;
// a live Index is never mutated.
type Index struct {
	rows []models.TaxonomyRow

	byProductNumber map[string]int
	byCompanyTrack  map[string][]int

	categories []string
	companies  []string

	subCategoriesByCategory map[string][]string
	tracksByCategoryCompany map[string]map[string][]string
	companiesByCategoryTrack map[string]map[string][]string

	allSubCategories []string
}

// BuildIndex constructs an Index from taxonomy rows in a single pass.
// Rows with an empty company or category are malformed exports and are
// skipped. Duplicate product numbers keep the last row seen; collisions are
// reported so the taxonomy source can be fixed rather than silently losing
// data.
func BuildIndex(rows []models.TaxonomyRow, logger logging.Logger) *Index {
	idx := &Index{
		byProductNumber:          make(map[string]int),
		byCompanyTrack:           make(map[string][]int),
		subCategoriesByCategory:  make(map[string][]string),
		tracksByCategoryCompany:  make(map[string]map[string][]string),
		companiesByCategoryTrack: make(map[string]map[string][]string),
	}

	seenCategory := make(map[string]bool)
	seenCompany := make(map[string]bool)
	seenSubByCategory := make(map[string]map[string]bool)
	seenTrack := make(map[string]map[string]map[string]bool)
	seenCompanyBySub := make(map[string]map[string]map[string]bool)
	seenAllSub := make(map[string]bool)

	for _, row := range rows {
		if row.Company == "" || row.Category == "" {
			if logger != nil {
				logger.Debug("Skipping malformed taxonomy row",
					logging.Field{Key: logging.FieldCompany, Value: row.Company},
					logging.Field{Key: logging.FieldCategory, Value: row.Category})
			}
			continue
		}

		idx.rows = append(idx.rows, row)
		i := len(idx.rows) - 1

		if row.ProductNumber != "" {
			if prev, dup := idx.byProductNumber[row.ProductNumber]; dup && logger != nil {
				logger.Warn("Duplicate product number in taxonomy, keeping last",
					logging.Field{Key: logging.FieldProductNumber, Value: row.ProductNumber},
					logging.Field{Key: "previous_company", Value: idx.rows[prev].Company},
					logging.Field{Key: logging.FieldCompany, Value: row.Company})
			}
			idx.byProductNumber[row.ProductNumber] = i
		}

		track := row.TrackName()
		key := companyTrackKey(row.Company, track)
		idx.byCompanyTrack[key] = append(idx.byCompanyTrack[key], i)

		if !seenCategory[row.Category] {
			seenCategory[row.Category] = true
			idx.categories = append(idx.categories, row.Category)
		}
		if !seenCompany[row.Company] {
			seenCompany[row.Company] = true
			idx.companies = append(idx.companies, row.Company)
		}

		if row.NewTrackName != "" {
			if seenSubByCategory[row.Category] == nil {
				seenSubByCategory[row.Category] = make(map[string]bool)
			}
			if !seenSubByCategory[row.Category][row.NewTrackName] {
				seenSubByCategory[row.Category][row.NewTrackName] = true
				idx.subCategoriesByCategory[row.Category] = append(idx.subCategoriesByCategory[row.Category], row.NewTrackName)
			}
			if !seenAllSub[row.NewTrackName] {
				seenAllSub[row.NewTrackName] = true
				idx.allSubCategories = append(idx.allSubCategories, row.NewTrackName)
			}

			if seenCompanyBySub[row.Category] == nil {
				seenCompanyBySub[row.Category] = make(map[string]map[string]bool)
				idx.companiesByCategoryTrack[row.Category] = make(map[string][]string)
			}
			if seenCompanyBySub[row.Category][row.NewTrackName] == nil {
				seenCompanyBySub[row.Category][row.NewTrackName] = make(map[string]bool)
			}
			if !seenCompanyBySub[row.Category][row.NewTrackName][row.Company] {
				seenCompanyBySub[row.Category][row.NewTrackName][row.Company] = true
				idx.companiesByCategoryTrack[row.Category][row.NewTrackName] = append(idx.companiesByCategoryTrack[row.Category][row.NewTrackName], row.Company)
			}
		}

		if track != "" {
			if seenTrack[row.Category] == nil {
				seenTrack[row.Category] = make(map[string]map[string]bool)
				idx.tracksByCategoryCompany[row.Category] = make(map[string][]string)
			}
			if seenTrack[row.Category][row.Company] == nil {
				seenTrack[row.Category][row.Company] = make(map[string]bool)
			}
			if !seenTrack[row.Category][row.Company][track] {
				seenTrack[row.Category][row.Company][track] = true
				idx.tracksByCategoryCompany[row.Category][row.Company] = append(idx.tracksByCategoryCompany[row.Category][row.Company], track)
			}
		}
	}

	if logger != nil {
		logger.Info("Taxonomy index built",
			logging.Field{Key: "rows", Value: len(idx.rows)},
			logging.Field{Key: "categories", Value: len(idx.categories)},
			logging.Field{Key: "companies", Value: len(idx.companies)})
	}

	return idx
}

func companyTrackKey(company, track string) string {
	return company + ":" + track
}

// Len returns the number of rows held by the index.
func (idx *Index) Len() int {
	return len(idx.rows)
}

// ByProductNumber returns the row carrying the given product code.
func (idx *Index) ByProductNumber(code string) (*models.TaxonomyRow, bool) {
	if code == "" {
		return nil, false
	}
	i, ok := idx.byProductNumber[code]
	if !ok {
		return nil, false
	}
	return &idx.rows[i], true
}

// ByCompanyAndTrack returns the first row registered under the exact
// (company, track) pair.
func (idx *Index) ByCompanyAndTrack(company, track string) (*models.TaxonomyRow, bool) {
	indices, ok := idx.byCompanyTrack[companyTrackKey(company, track)]
	if !ok || len(indices) == 0 {
		return nil, false
	}
	return &idx.rows[indices[0]], true
}

// FindByFields is the linear fallback scan: company AND category must match
// exactly, and the track must match either the new or the old track name.
func (idx *Index) FindByFields(company, category, track string) (*models.TaxonomyRow, bool) {
	for i := range idx.rows {
		row := &idx.rows[i]
		if row.Company != company || row.Category != category {
			continue
		}
		if row.NewTrackName == track || row.OldTrackName == track {
			return row, true
		}
	}
	return nil, false
}

// Categories returns all distinct categories in taxonomy order.
func (idx *Index) Categories() []string {
	return idx.categories
}

// Companies returns all distinct companies in taxonomy order.
func (idx *Index) Companies() []string {
	return idx.companies
}

// SubCategories returns the sub-category (new track name) values known under
// a category.
func (idx *Index) SubCategories(category string) []string {
	return idx.subCategoriesByCategory[category]
}

// AllSubCategories returns every distinct sub-category across the taxonomy,
// used for the global fallback match.
func (idx *Index) AllSubCategories() []string {
	return idx.allSubCategories
}

// TracksFor returns the track labels known for a (category, company) pair.
func (idx *Index) TracksFor(category, company string) []string {
	byCompany, ok := idx.tracksByCategoryCompany[category]
	if !ok {
		return nil
	}
	return byCompany[company]
}

// CompaniesFor returns the companies offering a given sub-category within a
// category.
func (idx *Index) CompaniesFor(category, subCategory string) []string {
	bySub, ok := idx.companiesByCategoryTrack[category]
	if !ok {
		return nil
	}
	return bySub[subCategory]
}
