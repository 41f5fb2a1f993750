// Package csvimport parses agent spreadsheet exports (CSV) into raw product
// records.
package csvimport

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"eladk/pension-match/internal/importer"
	"eladk/pension-match/internal/logging"
	"eladk/pension-match/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// csvRow maps one spreadsheet line. Numeric columns are read as strings so
// unparsable cells degrade to 0 instead of failing the whole import.
type csvRow struct {
	ProductType     string `csv:"product_type"`
	ProductName     string `csv:"product_name"`
	PlanName        string `csv:"plan_name"`
	Manufacturer    string `csv:"manufacturer"`
	Amount          string `csv:"amount"`
	DepositFee      string `csv:"deposit_fee"`
	AccumulationFee string `csv:"accumulation_fee"`
	ProductNumber   string `csv:"product_number"`
	PolicyNumber    string `csv:"policy_number"`
}

// Parser reads one CSV export. The record kind is fixed per file: an export
// covers either savings products or insurance policies.
type Parser struct {
	kind   models.RecordKind
	logger logging.Logger
}

var _ importer.RecordParser = (*Parser)(nil)

// NewParser creates a CSV parser producing records of the given kind.
func NewParser(kind models.RecordKind, logger logging.Logger) *Parser {
	return &Parser{kind: kind, logger: logger}
}

// Parse reads all rows from r and returns deduplicated product records.
func (p *Parser) Parse(r io.Reader) ([]models.ImportedProductRecord, error) {
	var rows []csvRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("error parsing import CSV: %w", err)
	}

	records := make([]models.ImportedProductRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, models.ImportedProductRecord{
			Kind:            p.kind,
			ProductType:     strings.TrimSpace(row.ProductType),
			ProductName:     strings.TrimSpace(row.ProductName),
			PlanName:        strings.TrimSpace(row.PlanName),
			Manufacturer:    strings.TrimSpace(row.Manufacturer),
			Amount:          parseAmount(row.Amount),
			DepositFee:      parseRate(row.DepositFee),
			AccumulationFee: parseRate(row.AccumulationFee),
			ProductNumber:   strings.TrimSpace(row.ProductNumber),
			PolicyNumber:    strings.TrimSpace(row.PolicyNumber),
		})
	}

	deduped := importer.Deduplicate(records)
	p.logger.Info("Parsed import CSV",
		logging.Field{Key: "rows", Value: len(rows)},
		logging.Field{Key: "records", Value: len(deduped)})
	return deduped, nil
}

// parseAmount parses a monetary cell, tolerating thousands separators.
// Unparsable values become zero, never an error.
func parseAmount(s string) decimal.Decimal {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseRate parses a percentage cell, tolerating a trailing percent sign.
func parseRate(s string) float64 {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
