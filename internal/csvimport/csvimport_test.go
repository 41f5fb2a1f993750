package csvimport

import (
	"strings"
	"testing"

	"eladk/pension-match/internal/logging"
	"eladk/pension-match/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testLogger() logging.Logger {
	return logging.NewLogrusAdapter("error", "text")
}

const sampleCSV = `product_type,product_name,plan_name,manufacturer,amount,deposit_fee,accumulation_fee,product_number,policy_number
קרן פנסיה,פנסיה מקיפה,מסלול כללי,הראל,"12,345.67",1.5%,0.25,5551234,987
קופת גמל,גמל להשקעה,מסלול מניות, מגדל ,5000,,not-a-number,,111
`

func TestParse(t *testing.T) {
	p := NewParser(models.RecordKindGemel, testLogger())

	records, err := p.Parse(strings.NewReader(sampleCSV))
	assert.NoError(t, err)
	assert.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, models.RecordKindGemel, first.Kind)
	assert.Equal(t, "קרן פנסיה", first.ProductType)
	assert.Equal(t, "מסלול כללי", first.PlanName)
	assert.True(t, decimal.NewFromFloat(12345.67).Equal(first.Amount), "thousands separators are tolerated")
	assert.Equal(t, 1.5, first.DepositFee, "trailing percent sign is tolerated")
	assert.Equal(t, 0.25, first.AccumulationFee)
	assert.Equal(t, "5551234", first.ProductNumber)

	second := records[1]
	assert.Equal(t, "מגדל", second.Manufacturer, "cells are trimmed")
	assert.Equal(t, 0.0, second.DepositFee, "empty cell degrades to zero")
	assert.Equal(t, 0.0, second.AccumulationFee, "unparsable cell degrades to zero")
}

func TestParseDeduplicates(t *testing.T) {
	csv := `product_type,product_name,plan_name,manufacturer,amount,deposit_fee,accumulation_fee,product_number,policy_number
קרן פנסיה,א,מסלול כללי,הראל,100,0,0,,1
קרן פנסיה,א,מסלול כללי,הראל,300,0,0,,1
`
	p := NewParser(models.RecordKindPension, testLogger())

	records, err := p.Parse(strings.NewReader(csv))
	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.True(t, decimal.NewFromInt(300).Equal(records[0].Amount))
}

func TestParseInvalidCSV(t *testing.T) {
	p := NewParser(models.RecordKindGemel, testLogger())

	_, err := p.Parse(strings.NewReader(`"unterminated`))
	assert.Error(t, err)
}

func TestParseAmount(t *testing.T) {
	assert.True(t, decimal.NewFromFloat(12345.67).Equal(parseAmount("12,345.67")))
	assert.True(t, decimal.Zero.Equal(parseAmount("")))
	assert.True(t, decimal.Zero.Equal(parseAmount("abc")))
}

func TestParseRate(t *testing.T) {
	assert.Equal(t, 1.5, parseRate("1.5%"))
	assert.Equal(t, 0.25, parseRate(" 0.25 "))
	assert.Equal(t, 0.0, parseRate(""))
	assert.Equal(t, 0.0, parseRate("n/a"))
}
