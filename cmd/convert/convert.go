// Package convert handles import-file conversion commands
package convert

import (
	"os"

	"eladk/pension-match/cmd/root"
	"eladk/pension-match/internal/container"
	"eladk/pension-match/internal/models"
	"eladk/pension-match/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	source      string
	productType string
)

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert an import file to a resolved products CSV",
	Long: `Convert an agent CSV export or a clearinghouse XML file into a CSV of
resolved products, enriched with exposure data where the taxonomy matches.`,
	Run: convertFunc,
}

func convertFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" || root.SharedFlags.Output == "" {
		root.Log.Fatal("Both --input and --output are required")
	}
	root.Log.Infof("Input file: %s", root.SharedFlags.Input)
	root.Log.Infof("Output file: %s", root.SharedFlags.Output)

	parser, err := root.App.GetParser(container.SourceType(source))
	if err != nil {
		root.Log.Fatalf("Error getting parser: %v", err)
	}

	file, err := os.Open(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error opening input file: %v", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			root.Log.Warnf("Failed to close input file: %v", err)
		}
	}()

	records, err := parser.Parse(file)
	if err != nil {
		root.Log.Fatalf("Error parsing input file: %v", err)
	}

	pt := models.ProductTypeCurrent
	if productType == string(models.ProductTypeRecommended) {
		pt = models.ProductTypeRecommended
	}

	products := root.App.GetPipeline().Process(records, pt)

	if err := pipeline.WriteProductsToCSV(products, root.SharedFlags.Output, root.App.GetLogger()); err != nil {
		root.Log.Fatalf("Error writing output CSV: %v", err)
	}
	root.Log.Info("Conversion completed successfully!")
}

func init() {
	Cmd.Flags().StringVarP(&source, "source", "s", string(container.CSVSavings),
		"Input source type: csv, csv-insurance or mislaka")
	Cmd.Flags().StringVarP(&productType, "type", "t", string(models.ProductTypeCurrent),
		"Product type to tag records with: current or recommended")
}
