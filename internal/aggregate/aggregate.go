// Package aggregate provides the numeric summaries the report layer shows
// for groups of resolved products: simple and weighted averages and signed
// percentage differences.
package aggregate

import (
	"eladk/pension-match/internal/models"

	"github.com/shopspring/decimal"
)

// WeightedValue pairs a value with its weight, typically a fee percentage
// weighted by the product's accumulated amount.
type WeightedValue struct {
	Value  float64
	Weight float64
}

// Average returns the arithmetic mean. An empty input yields 0, never NaN.
func Average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// WeightedAverage returns sum(value*weight)/sum(weight). When all weights
// are zero the result is 0, never NaN.
func WeightedAverage(pairs []WeightedValue) float64 {
	var weightedSum, totalWeight float64
	for _, p := range pairs {
		weightedSum += p.Value * p.Weight
		totalWeight += p.Weight
	}
	if totalWeight == 0 {
		return 0
	}
	return weightedSum / totalWeight
}

// PercentDifference returns the signed difference b-a. Callers format sign
// and rounding for display.
func PercentDifference(a, b float64) float64 {
	return b - a
}

// TotalAmount sums the amounts of a product group with decimal precision.
func TotalAmount(products []models.SelectedProduct) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Amount)
	}
	return total
}

// AverageAccumulationFee returns the accumulation management fee averaged
// across the group, weighted by each product's amount.
func AverageAccumulationFee(products []models.SelectedProduct) float64 {
	pairs := make([]WeightedValue, 0, len(products))
	for _, p := range products {
		pairs = append(pairs, WeightedValue{
			Value:  p.ManagementFeeOnAccumulation,
			Weight: p.Amount.InexactFloat64(),
		})
	}
	return WeightedAverage(pairs)
}

// AverageStockExposure returns the stock exposure averaged across the group,
// weighted by amount. Products without a stock exposure figure are excluded
// rather than counted as zero.
func AverageStockExposure(products []models.SelectedProduct) float64 {
	var pairs []WeightedValue
	for _, p := range products {
		if p.ExposureStocks == nil {
			continue
		}
		pairs = append(pairs, WeightedValue{
			Value:  *p.ExposureStocks,
			Weight: p.Amount.InexactFloat64(),
		})
	}
	return WeightedAverage(pairs)
}
