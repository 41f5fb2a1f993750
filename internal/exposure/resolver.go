// Package exposure resolves a product identity to the asset-exposure
// percentages stored in the taxonomy.
package exposure

import (
	"eladk/pension-match/internal/logging"
	"eladk/pension-match/internal/models"
	"eladk/pension-match/internal/taxonomy"
)

// Resolver looks up taxonomy rows for a product identity. It is a read-only
// view over an injected Index; callers own the index lifetime.
type Resolver struct {
	index  *taxonomy.Index
	logger logging.Logger
}

// NewResolver creates a Resolver over the given taxonomy index.
func NewResolver(index *taxonomy.Index, logger logging.Logger) *Resolver {
	return &Resolver{index: index, logger: logger}
}

// Resolve finds the taxonomy row for a (company, category, track) triple
// and/or an explicit product code. The cascade runs highest-confidence first:
//
//  1. direct product-number lookup - authoritative, bypasses the triple
//  2. exact (company, track) lookup
//  3. linear scan on company AND category AND (new or old track name)
//
// Exposure fields on the returned row are left exactly as stored: a nil
// field means the taxonomy has no figure, and must not be read as zero.
func (r *Resolver) Resolve(company, category, track, productNumber string) (*models.TaxonomyRow, bool) {
	if productNumber != "" {
		if row, ok := r.index.ByProductNumber(productNumber); ok {
			r.debug("Exposure resolved by product number", row)
			return row, true
		}
	}

	if row, ok := r.index.ByCompanyAndTrack(company, track); ok {
		r.debug("Exposure resolved by company and track", row)
		return row, true
	}

	if row, ok := r.index.FindByFields(company, category, track); ok {
		r.debug("Exposure resolved by field scan", row)
		return row, true
	}

	return nil, false
}

func (r *Resolver) debug(msg string, row *models.TaxonomyRow) {
	if r.logger == nil {
		return
	}
	r.logger.Debug(msg,
		logging.Field{Key: logging.FieldCompany, Value: row.Company},
		logging.Field{Key: logging.FieldCategory, Value: row.Category},
		logging.Field{Key: logging.FieldTrack, Value: row.TrackName()},
		logging.Field{Key: logging.FieldProductNumber, Value: row.ProductNumber})
}

// CopyToProduct copies the row's exposure figures onto a resolved product.
// Pointer values are cloned so the product never aliases index memory.
func CopyToProduct(row *models.TaxonomyRow, p *models.SelectedProduct) {
	p.ExposureStocks = clone(row.ExposureStocks)
	p.ExposureBonds = clone(row.ExposureBonds)
	p.ExposureForeignCurrency = clone(row.ExposureForeignCurrency)
	p.ExposureForeignInvestments = clone(row.ExposureForeignInvestments)
	p.ExposureIsrael = clone(row.ExposureIsrael)
	p.ExposureIlliquidAssets = clone(row.ExposureIlliquidAssets)
}

func clone(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
