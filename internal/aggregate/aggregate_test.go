package aggregate

import (
	"testing"

	"eladk/pension-match/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func fp(v float64) *float64 {
	return &v
}

func TestAverage(t *testing.T) {
	assert.Equal(t, 0.0, Average(nil))
	assert.Equal(t, 0.0, Average([]float64{}))
	assert.Equal(t, 2.0, Average([]float64{1, 2, 3}))
	assert.Equal(t, -1.5, Average([]float64{-1, -2}))
}

func TestWeightedAverage(t *testing.T) {
	assert.Equal(t, 0.0, WeightedAverage(nil))

	// All-zero weights must yield 0, not NaN
	assert.Equal(t, 0.0, WeightedAverage([]WeightedValue{{5, 0}, {10, 0}}))

	got := WeightedAverage([]WeightedValue{{1, 100}, {3, 300}})
	assert.InDelta(t, 2.5, got, 1e-9)

	// A single pair returns its value regardless of weight magnitude
	assert.Equal(t, 7.0, WeightedAverage([]WeightedValue{{7, 0.001}}))
}

func TestPercentDifference(t *testing.T) {
	assert.Equal(t, 1.5, PercentDifference(0.5, 2.0))
	assert.Equal(t, -1.5, PercentDifference(2.0, 0.5))
	assert.Equal(t, 0.0, PercentDifference(1.0, 1.0))
}

func TestTotalAmount(t *testing.T) {
	products := []models.SelectedProduct{
		{Amount: decimal.NewFromFloat(100.50)},
		{Amount: decimal.NewFromFloat(200.25)},
	}
	assert.True(t, decimal.NewFromFloat(300.75).Equal(TotalAmount(products)))
	assert.True(t, decimal.Zero.Equal(TotalAmount(nil)))
}

func TestAverageAccumulationFee(t *testing.T) {
	products := []models.SelectedProduct{
		{Amount: decimal.NewFromInt(100), ManagementFeeOnAccumulation: 0.5},
		{Amount: decimal.NewFromInt(300), ManagementFeeOnAccumulation: 1.0},
	}
	assert.InDelta(t, 0.875, AverageAccumulationFee(products), 1e-9)

	// Zero amounts degrade to 0
	assert.Equal(t, 0.0, AverageAccumulationFee([]models.SelectedProduct{
		{ManagementFeeOnAccumulation: 0.5},
	}))
}

func TestAverageStockExposure(t *testing.T) {
	products := []models.SelectedProduct{
		{Amount: decimal.NewFromInt(100), ExposureStocks: fp(80)},
		{Amount: decimal.NewFromInt(100), ExposureStocks: fp(40)},
		// No exposure figure: excluded, not counted as zero
		{Amount: decimal.NewFromInt(1000)},
	}
	assert.InDelta(t, 60.0, AverageStockExposure(products), 1e-9)

	assert.Equal(t, 0.0, AverageStockExposure(nil))
}
