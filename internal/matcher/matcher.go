// Package matcher orchestrates product identification: it runs a priority
// cascade of identification strategies over an imported record's free-text
// labels and resolves the winning identity to exposure data.
package matcher

import (
	"regexp"
	"strings"

	"eladk/pension-match/internal/exposure"
	"eladk/pension-match/internal/logging"
	"eladk/pension-match/internal/models"
	"eladk/pension-match/internal/taxonomy"
)

// MatchedVia records which cascade step produced the final identity, so
// callers and tests can assert on why a match succeeded, not just that it did.
type MatchedVia string

const (
	ViaCode       MatchedVia = "code"
	ViaScopedCode MatchedVia = "scoped-code"
	ViaScoped     MatchedVia = "scoped"
	ViaFallback   MatchedVia = "fallback"
	ViaNone       MatchedVia = "none"
)

// ResolvedMatch is the outcome of the identification cascade. Category,
// SubCategory and Company are canonical taxonomy values where a match was
// found and the original free text otherwise. Exposure fields stay nil when
// no taxonomy row was resolved or the row carries no figure.
type ResolvedMatch struct {
	Category      string
	SubCategory   string
	Company       string
	ProductNumber string

	ExposureStocks             *float64
	ExposureBonds              *float64
	ExposureForeignCurrency    *float64
	ExposureForeignInvestments *float64
	ExposureIsrael             *float64
	ExposureIlliquidAssets     *float64
	AssetComposition           string

	MatchedVia    MatchedVia
	CategoryScore float64
	CompanyScore  float64
}

// HasExposure reports whether the match resolved to a taxonomy row.
func (m ResolvedMatch) HasExposure() bool {
	return m.MatchedVia != ViaNone
}

// ProductMatcher runs the identification cascade against an injected
// taxonomy index. It is query-only: it never mutates the index and keeps no
// per-call state, so one instance can serve a whole import.
type ProductMatcher struct {
	index     *taxonomy.Index
	resolver  *exposure.Resolver
	threshold float64
	logger    logging.Logger
}

// New creates a ProductMatcher over the given index. A threshold of 0 falls
// back to taxonomy.DefaultThreshold.
func New(index *taxonomy.Index, logger logging.Logger, threshold float64) *ProductMatcher {
	if threshold <= 0 {
		threshold = taxonomy.DefaultThreshold
	}
	return &ProductMatcher{
		index:     index,
		resolver:  exposure.NewResolver(index, logger),
		threshold: threshold,
		logger:    logger,
	}
}

var digitRun = regexp.MustCompile(`\d+`)

// Match resolves a raw imported record to a canonical product identity plus
// exposure data. The cascade, highest confidence first:
//
//  1. use the explicit product number, or extract one from the sub-category
//     then the category text
//  2. direct code lookup - authoritative, overrides all free-text fields
//  3. fuzzy-match category and company against the full taxonomy
//  4. within a matched (category, company), find a track whose label contains
//     the number
//  5. within a matched (category, company), fuzzy-match the track label
//  6. when category or company did not match, fall back to a global track
//     match across the whole taxonomy
//
// Every path returns a usable record: with no taxonomy at all the raw text
// is echoed back and all exposure fields stay nil.
func (m *ProductMatcher) Match(rawCategory, rawSubCategory, rawCompany, productNumber string) ResolvedMatch {
	number := productNumber
	if number == "" {
		number = firstDigitRun(rawSubCategory)
	}
	if number == "" {
		number = firstDigitRun(rawCategory)
	}

	// Step 2: a known product code identifies the row outright, regardless
	// of how garbled the surrounding text is.
	if number != "" {
		if row, ok := m.index.ByProductNumber(number); ok {
			m.logStep(ViaCode, row)
			return m.fromRow(row, ViaCode, 1, 1)
		}
	}

	// Step 3: semantic category and company match.
	category, categoryScore, categoryMatched := m.matchField(rawCategory, m.index.Categories())
	company, companyScore, companyMatched := m.matchField(rawCompany, m.index.Companies())

	if categoryMatched && companyMatched {
		// Step 4: a track label that contains the number is a stronger
		// signal than fuzzy text similarity.
		if number != "" {
			for _, track := range m.index.TracksFor(category, company) {
				if strings.Contains(track, number) {
					if row, ok := m.resolver.Resolve(company, category, track, number); ok {
						m.logStep(ViaScopedCode, row)
						return m.withExposure(category, track, company, number, row, ViaScopedCode, categoryScore, companyScore)
					}
				}
			}
		}

		// Step 5: fuzzy track match scoped to the (category, company) pair.
		sub := taxonomy.MatchSubCategory(rawSubCategory, m.index.TracksFor(category, company), m.threshold)
		if row, ok := m.resolver.Resolve(company, category, sub, number); ok {
			m.logStep(ViaScoped, row)
			return m.withExposure(category, sub, company, number, row, ViaScoped, categoryScore, companyScore)
		}

		return ResolvedMatch{
			Category:      category,
			SubCategory:   sub,
			Company:       company,
			ProductNumber: number,
			MatchedVia:    ViaNone,
			CategoryScore: categoryScore,
			CompanyScore:  companyScore,
		}
	}

	// Step 6: global fallback across every known sub-category, resolved with
	// whatever category/company were determined (possibly still raw text).
	sub := taxonomy.MatchSubCategory(rawSubCategory, m.index.AllSubCategories(), m.threshold)
	if row, ok := m.resolver.Resolve(company, category, sub, number); ok {
		m.logStep(ViaFallback, row)
		return m.withExposure(category, sub, company, number, row, ViaFallback, categoryScore, companyScore)
	}

	return ResolvedMatch{
		Category:      category,
		SubCategory:   sub,
		Company:       company,
		ProductNumber: number,
		MatchedVia:    ViaNone,
		CategoryScore: categoryScore,
		CompanyScore:  companyScore,
	}
}

// matchField fuzzy-matches one free-text field against its candidate list.
// The returned bool is true only when a candidate cleared the threshold;
// otherwise the raw input is kept verbatim.
func (m *ProductMatcher) matchField(input string, candidates []string) (string, float64, bool) {
	if strings.TrimSpace(input) == "" {
		return "", 0, false
	}
	best, score := taxonomy.MatchScore(input, candidates)
	if score >= m.threshold {
		return best, score, true
	}
	return input, score, false
}

// fromRow builds a result entirely from a taxonomy row. Used by the code
// path, where the row is authoritative and overrides all supplied text.
func (m *ProductMatcher) fromRow(row *models.TaxonomyRow, via MatchedVia, categoryScore, companyScore float64) ResolvedMatch {
	return m.withExposure(row.Category, row.TrackName(), row.Company, row.ProductNumber, row, via, categoryScore, companyScore)
}

// withExposure builds a result from the matched identity, copying only the
// exposure figures from the resolved row.
func (m *ProductMatcher) withExposure(category, subCategory, company, number string, row *models.TaxonomyRow, via MatchedVia, categoryScore, companyScore float64) ResolvedMatch {
	return ResolvedMatch{
		Category:      category,
		SubCategory:   subCategory,
		Company:       company,
		ProductNumber: number,

		ExposureStocks:             cloneFloat(row.ExposureStocks),
		ExposureBonds:              cloneFloat(row.ExposureBonds),
		ExposureForeignCurrency:    cloneFloat(row.ExposureForeignCurrency),
		ExposureForeignInvestments: cloneFloat(row.ExposureForeignInvestments),
		ExposureIsrael:             cloneFloat(row.ExposureIsrael),
		ExposureIlliquidAssets:     cloneFloat(row.ExposureIlliquidAssets),
		AssetComposition:           row.AssetComposition,

		MatchedVia:    via,
		CategoryScore: categoryScore,
		CompanyScore:  companyScore,
	}
}

func (m *ProductMatcher) logStep(via MatchedVia, row *models.TaxonomyRow) {
	if m.logger == nil {
		return
	}
	m.logger.Debug("Product identified",
		logging.Field{Key: logging.FieldMatchedVia, Value: string(via)},
		logging.Field{Key: logging.FieldCompany, Value: row.Company},
		logging.Field{Key: logging.FieldCategory, Value: row.Category},
		logging.Field{Key: logging.FieldTrack, Value: row.TrackName()})
}

// firstDigitRun returns the first run of digits in s, or "".
func firstDigitRun(s string) string {
	return digitRun.FindString(s)
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
