// Package pipeline turns raw imported records into resolved, exposure-
// enriched SelectedProduct records for the report layer.
package pipeline

import (
	"eladk/pension-match/internal/logging"
	"eladk/pension-match/internal/matcher"
	"eladk/pension-match/internal/models"

	"github.com/google/uuid"
)

// Processor resolves imported records through the product matcher.
type Processor struct {
	matcher *matcher.ProductMatcher
	logger  logging.Logger
}

// NewProcessor creates a Processor over the given matcher.
func NewProcessor(m *matcher.ProductMatcher, logger logging.Logger) *Processor {
	return &Processor{matcher: m, logger: logger}
}

// Process resolves each record and returns the canonical products. Records
// that fail to match still produce a displayable product carrying the
// original text; the import never drops a row.
func (p *Processor) Process(records []models.ImportedProductRecord, productType models.ProductType) []models.SelectedProduct {
	products := make([]models.SelectedProduct, 0, len(records))
	matched := 0

	for _, rec := range records {
		m := p.matcher.Match(rec.ProductType, rec.PlanName, rec.Manufacturer, rec.ProductNumber)
		if m.HasExposure() {
			matched++
		}

		product := models.SelectedProduct{
			ID:                          uuid.NewString(),
			Category:                    m.Category,
			SubCategory:                 m.SubCategory,
			Company:                     m.Company,
			Amount:                      rec.Amount,
			ManagementFeeOnDeposit:      rec.DepositFee,
			ManagementFeeOnAccumulation: rec.AccumulationFee,
			InvestmentTrack:             m.SubCategory,
			Type:                        productType,
			ProductNumber:               m.ProductNumber,

			ExposureStocks:             m.ExposureStocks,
			ExposureBonds:              m.ExposureBonds,
			ExposureForeignCurrency:    m.ExposureForeignCurrency,
			ExposureForeignInvestments: m.ExposureForeignInvestments,
			ExposureIsrael:             m.ExposureIsrael,
			ExposureIlliquidAssets:     m.ExposureIlliquidAssets,
		}
		product.IncludeExposureData = product.HasExposureData()

		p.logger.Debug("Record resolved",
			logging.Field{Key: logging.FieldMatchedVia, Value: string(m.MatchedVia)},
			logging.Field{Key: logging.FieldCompany, Value: product.Company},
			logging.Field{Key: logging.FieldCategory, Value: product.Category})

		products = append(products, product)
	}

	p.logger.Info("Import processed",
		logging.Field{Key: "records", Value: len(records)},
		logging.Field{Key: "matched", Value: matched})

	return products
}
