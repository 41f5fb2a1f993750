// Package models defines the data structures shared by the import, matching,
// and reporting layers.
package models

import (
	"github.com/shopspring/decimal"
)

// TaxonomyRow is one canonical product definition from the reference taxonomy.
// Exposure fields are pointers: a nil value means the taxonomy does not carry
// that figure for the row, which is distinct from an explicit zero.
type TaxonomyRow struct {
	Company       string `csv:"company" yaml:"company"`
	Category      string `csv:"category" yaml:"category"`
	OldTrackName  string `csv:"old_track_name" yaml:"old_track_name"`
	NewTrackName  string `csv:"new_track_name" yaml:"new_track_name"`
	ProductNumber string `csv:"product_number" yaml:"product_number"`

	ExposureForeignCurrency    *float64 `csv:"exposure_foreign_currency" yaml:"exposure_foreign_currency"`
	ExposureForeignInvestments *float64 `csv:"exposure_foreign_investments" yaml:"exposure_foreign_investments"`
	ExposureIsrael             *float64 `csv:"exposure_israel" yaml:"exposure_israel"`
	ExposureStocks             *float64 `csv:"exposure_stocks" yaml:"exposure_stocks"`
	ExposureBonds              *float64 `csv:"exposure_bonds" yaml:"exposure_bonds"`
	ExposureIlliquidAssets     *float64 `csv:"exposure_illiquid_assets" yaml:"exposure_illiquid_assets"`

	AssetComposition string `csv:"asset_composition" yaml:"asset_composition"`
}

// TrackName returns the canonical track label for the row: the new track name
// when present, otherwise the historical one.
func (r TaxonomyRow) TrackName() string {
	if r.NewTrackName != "" {
		return r.NewTrackName
	}
	return r.OldTrackName
}

// ImportedProductRecord is a raw row extracted from an external file
// (agent spreadsheet, clearinghouse XML) before matching. The Kind tag
// records which source schema produced the row; it only drives deduplication
// keys and is never consulted by the matching core.
type ImportedProductRecord struct {
	Kind            RecordKind      `csv:"-"`
	ProductType     string          `csv:"product_type"`
	ProductName     string          `csv:"product_name"`
	PlanName        string          `csv:"plan_name"`
	Manufacturer    string          `csv:"manufacturer"`
	Amount          decimal.Decimal `csv:"amount"`
	DepositFee      float64         `csv:"deposit_fee"`
	AccumulationFee float64         `csv:"accumulation_fee"`
	ProductNumber   string          `csv:"product_number"`
	PolicyNumber    string          `csv:"policy_number"`
}

// SelectedProduct is the resolved, canonical record the report layer consumes.
type SelectedProduct struct {
	ID                          string          `csv:"id"`
	Category                    string          `csv:"category"`
	SubCategory                 string          `csv:"sub_category"`
	Company                     string          `csv:"company"`
	Amount                      decimal.Decimal `csv:"amount"`
	ManagementFeeOnDeposit      float64         `csv:"management_fee_on_deposit"`
	ManagementFeeOnAccumulation float64         `csv:"management_fee_on_accumulation"`
	InvestmentTrack             string          `csv:"investment_track"`
	Type                        ProductType     `csv:"type"`
	ProductNumber               string          `csv:"product_number"`

	ExposureStocks             *float64 `csv:"exposure_stocks"`
	ExposureBonds              *float64 `csv:"exposure_bonds"`
	ExposureForeignCurrency    *float64 `csv:"exposure_foreign_currency"`
	ExposureForeignInvestments *float64 `csv:"exposure_foreign_investments"`
	ExposureIsrael             *float64 `csv:"exposure_israel"`
	ExposureIlliquidAssets     *float64 `csv:"exposure_illiquid_assets"`

	IncludeExposureData bool   `csv:"include_exposure_data"`
	Notes               string `csv:"notes"`
}

// HasExposureData reports whether at least one exposure field is defined and
// non-zero. It is used to derive IncludeExposureData.
func (p SelectedProduct) HasExposureData() bool {
	for _, v := range []*float64{
		p.ExposureStocks,
		p.ExposureBonds,
		p.ExposureForeignCurrency,
		p.ExposureForeignInvestments,
		p.ExposureIsrael,
		p.ExposureIlliquidAssets,
	} {
		if v != nil && *v != 0 {
			return true
		}
	}
	return false
}
