// Package mislaka parses pension-clearinghouse XML exports into raw product
// records. The clearinghouse ships three block variants (gemel, pension,
// insurance) that share field names; this parser normalizes all of them to
// the common record shape before the matching core sees them.
package mislaka

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"eladk/pension-match/internal/importer"
	"eladk/pension-match/internal/logging"
	"eladk/pension-match/internal/models"

	"github.com/shopspring/decimal"
	"gopkg.in/xmlpath.v2"
)

// XPath expressions for the clearinghouse schema. Product blocks repeat
// under the report root; the field paths are relative to one block.
var (
	productPath = xmlpath.MustCompile("//mutzar")

	productTypePath   = xmlpath.MustCompile("sug-mutzar")
	productNamePath   = xmlpath.MustCompile("shem-mutzar")
	trackNamePath     = xmlpath.MustCompile("shem-maslul")
	manufacturerPath  = xmlpath.MustCompile("shem-yatzran")
	amountPath        = xmlpath.MustCompile("schum-tzvira")
	depositFeePath    = xmlpath.MustCompile("dmei-nihul-hafkada")
	accumFeePath      = xmlpath.MustCompile("dmei-nihul-tzvira")
	productNumberPath = xmlpath.MustCompile("mispar-mutzar")
	policyNumberPath  = xmlpath.MustCompile("mispar-polisa")
)

// Parser reads one clearinghouse XML export.
type Parser struct {
	logger logging.Logger
}

var _ importer.RecordParser = (*Parser)(nil)

// NewParser creates a clearinghouse XML parser.
func NewParser(logger logging.Logger) *Parser {
	return &Parser{logger: logger}
}

// Parse extracts all product blocks from r and returns deduplicated records.
func (p *Parser) Parse(r io.Reader) ([]models.ImportedProductRecord, error) {
	root, err := xmlpath.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing clearinghouse XML: %w", err)
	}

	var records []models.ImportedProductRecord
	iter := productPath.Iter(root)
	for iter.Next() {
		node := iter.Node()

		productType := text(productTypePath, node)
		records = append(records, models.ImportedProductRecord{
			Kind:            kindFromType(productType),
			ProductType:     productType,
			ProductName:     text(productNamePath, node),
			PlanName:        text(trackNamePath, node),
			Manufacturer:    text(manufacturerPath, node),
			Amount:          parseAmount(text(amountPath, node)),
			DepositFee:      parseRate(text(depositFeePath, node)),
			AccumulationFee: parseRate(text(accumFeePath, node)),
			ProductNumber:   text(productNumberPath, node),
			PolicyNumber:    text(policyNumberPath, node),
		})
	}

	deduped := importer.Deduplicate(records)
	p.logger.Info("Parsed clearinghouse XML",
		logging.Field{Key: "blocks", Value: len(records)},
		logging.Field{Key: "records", Value: len(deduped)})
	return deduped, nil
}

// kindFromType maps the clearinghouse product-type label to a record kind.
// Unknown labels default to insurance, the broadest dedup key.
func kindFromType(productType string) models.RecordKind {
	switch {
	case strings.Contains(productType, "גמל"), strings.Contains(productType, "השתלמות"):
		return models.RecordKindGemel
	case strings.Contains(productType, "פנסיה"):
		return models.RecordKindPension
	default:
		return models.RecordKindInsurance
	}
}

func text(path *xmlpath.Path, node *xmlpath.Node) string {
	if value, ok := path.String(node); ok {
		return strings.TrimSpace(value)
	}
	return ""
}

func parseAmount(s string) decimal.Decimal {
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func parseRate(s string) float64 {
	s = strings.TrimSuffix(s, "%")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
