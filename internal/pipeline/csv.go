package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"eladk/pension-match/internal/logging"
	"eladk/pension-match/internal/models"

	"github.com/gocarina/gocsv"
)

// WriteProductsToCSV writes resolved products to a CSV file in the format
// the report layer consumes, creating the parent directory if needed.
func WriteProductsToCSV(products []models.SelectedProduct, csvFile string, logger logging.Logger) error {
	if products == nil {
		return fmt.Errorf("cannot write nil products to CSV")
	}

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := gocsv.MarshalFile(&products, file); err != nil {
		return fmt.Errorf("error writing products CSV: %w", err)
	}

	logger.Info("Wrote resolved products",
		logging.Field{Key: "count", Value: len(products)},
		logging.Field{Key: "file", Value: csvFile})
	return nil
}
