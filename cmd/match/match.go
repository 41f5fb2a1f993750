// Package match handles single-product resolution commands
package match

import (
	"eladk/pension-match/cmd/root"
	"eladk/pension-match/internal/matcher"

	"github.com/spf13/cobra"
)

var (
	category      string
	track         string
	company       string
	productNumber string
	describe      string
)

// Cmd represents the match command
var Cmd = &cobra.Command{
	Use:   "match",
	Short: "Resolve one product against the taxonomy",
	Long: `Resolve a single product given its free-text category, track and company,
or a numeric product code. With --describe, the fields are first extracted
from a free-text description using the AI service.`,
	Run: matchFunc,
}

func matchFunc(cmd *cobra.Command, args []string) {
	if describe != "" {
		client := root.App.GetAIClient()
		if client == nil {
			root.Log.Fatal("AI extraction is disabled, set PENSION_AI_ENABLED=true and GEMINI_API_KEY")
		}

		details, err := client.ExtractProduct(cmd.Context(), describe)
		if err != nil {
			root.Log.Fatalf("Error extracting product details: %v", err)
		}
		if category == "" {
			category = details.Category
		}
		if track == "" {
			track = details.Track
		}
		if company == "" {
			company = details.Company
		}
		if productNumber == "" {
			productNumber = details.ProductNumber
		}
	}

	m := root.App.GetMatcher().Match(category, track, company, productNumber)

	root.Log.Infof("Matched via: %s", m.MatchedVia)
	root.Log.Infof("Category: %s (score %.2f)", m.Category, m.CategoryScore)
	root.Log.Infof("Company: %s (score %.2f)", m.Company, m.CompanyScore)
	root.Log.Infof("Track: %s", m.SubCategory)
	if m.ProductNumber != "" {
		root.Log.Infof("Product number: %s", m.ProductNumber)
	}

	if m.MatchedVia == matcher.ViaNone {
		root.Log.Warn("No taxonomy row resolved, exposure data unavailable")
		return
	}
	if !m.HasExposure() {
		root.Log.Info("Resolved row carries no exposure data")
		return
	}

	printExposure("Stocks", m.ExposureStocks)
	printExposure("Bonds", m.ExposureBonds)
	printExposure("Foreign currency", m.ExposureForeignCurrency)
	printExposure("Foreign investments", m.ExposureForeignInvestments)
	printExposure("Israel", m.ExposureIsrael)
	printExposure("Illiquid assets", m.ExposureIlliquidAssets)
}

func printExposure(label string, value *float64) {
	if value == nil {
		return
	}
	root.Log.Infof("Exposure %s: %.2f%%", label, *value)
}

func init() {
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Product category (free text)")
	Cmd.Flags().StringVarP(&track, "track", "t", "", "Investment track name (free text)")
	Cmd.Flags().StringVarP(&company, "company", "m", "", "Managing company name (free text)")
	Cmd.Flags().StringVarP(&productNumber, "number", "n", "", "Numeric product code")
	Cmd.Flags().StringVarP(&describe, "describe", "d", "", "Free-text product description to extract fields from")
}
