// Package importer defines the boundary between the file-parsing layer and
// the matching core: parsers yield ImportedProductRecord rows, and shared
// deduplication merges rows describing the same holding.
package importer

import (
	"io"

	"eladk/pension-match/internal/models"
)

// RecordParser reads an external export and yields raw product records.
// Implementations understand one source format (agent CSV, clearinghouse
// XML) and normalize it to the common record shape; the matching core never
// branches on source format.
type RecordParser interface {
	Parse(r io.Reader) ([]models.ImportedProductRecord, error)
}

// Deduplicate merges records that describe the same holding. Savings rows
// (gemel, pension) key on product+plan+manufacturer+policy; insurance rows
// key on type+manufacturer+product+policy. On duplicates, numeric fields
// keep the maximum and string fields keep the first non-empty value. Order
// of first appearance is preserved.
func Deduplicate(records []models.ImportedProductRecord) []models.ImportedProductRecord {
	byKey := make(map[string]int)
	var result []models.ImportedProductRecord

	for _, rec := range records {
		key := dedupKey(rec)
		i, seen := byKey[key]
		if !seen {
			byKey[key] = len(result)
			result = append(result, rec)
			continue
		}
		result[i] = merge(result[i], rec)
	}

	return result
}

func dedupKey(rec models.ImportedProductRecord) string {
	if rec.Kind == models.RecordKindInsurance {
		return rec.ProductType + "|" + rec.Manufacturer + "|" + rec.ProductName + "|" + rec.PolicyNumber
	}
	return rec.ProductName + "|" + rec.PlanName + "|" + rec.Manufacturer + "|" + rec.PolicyNumber
}

func merge(a, b models.ImportedProductRecord) models.ImportedProductRecord {
	if a.Amount.LessThan(b.Amount) {
		a.Amount = b.Amount
	}
	if b.DepositFee > a.DepositFee {
		a.DepositFee = b.DepositFee
	}
	if b.AccumulationFee > a.AccumulationFee {
		a.AccumulationFee = b.AccumulationFee
	}

	a.ProductType = firstNonEmpty(a.ProductType, b.ProductType)
	a.ProductName = firstNonEmpty(a.ProductName, b.ProductName)
	a.PlanName = firstNonEmpty(a.PlanName, b.PlanName)
	a.Manufacturer = firstNonEmpty(a.Manufacturer, b.Manufacturer)
	a.ProductNumber = firstNonEmpty(a.ProductNumber, b.ProductNumber)
	a.PolicyNumber = firstNonEmpty(a.PolicyNumber, b.PolicyNumber)

	return a
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
