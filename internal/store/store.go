// Package store loads and saves the reference product taxonomy.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"eladk/pension-match/internal/logging"
	"eladk/pension-match/internal/models"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

// TaxonomyStore manages loading and saving of taxonomy rows. The backing
// file may be CSV (the format the relational export produces) or YAML.
type TaxonomyStore struct {
	TaxonomyFile string
	logger       logging.Logger
}

// taxonomyConfig is the YAML document shape: a top-level "products" key.
type taxonomyConfig struct {
	Products []models.TaxonomyRow `yaml:"products"`
}

// NewTaxonomyStore creates a store for the given taxonomy file.
func NewTaxonomyStore(taxonomyFile string, logger logging.Logger) *TaxonomyStore {
	return &TaxonomyStore{
		TaxonomyFile: taxonomyFile,
		logger:       logger,
	}
}

// FindConfigFile looks for a configuration file in standard locations.
func (s *TaxonomyStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,                            // Current directory
		filepath.Join("config", filename),   // ./config/ directory
		filepath.Join("database", filename), // ./database/ directory
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "pension-match", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadRows reads the full taxonomy. A missing file is not an error: the
// matching layer degrades to echoing input back, so an empty taxonomy must
// keep the import usable.
func (s *TaxonomyStore) LoadRows() ([]models.TaxonomyRow, error) {
	filename := s.TaxonomyFile
	if filename == "" {
		filename = "taxonomy.csv"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) || err == os.ErrNotExist {
			s.logger.Warn("Taxonomy file not found, matching will echo input back",
				logging.Field{Key: "file", Value: filename})
			return []models.TaxonomyRow{}, nil
		}
		return nil, fmt.Errorf("error resolving taxonomy file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return s.loadYAML(filePath)
	default:
		return s.loadCSV(filePath)
	}
}

func (s *TaxonomyStore) loadCSV(filePath string) ([]models.TaxonomyRow, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening taxonomy file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	var rows []models.TaxonomyRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("error parsing taxonomy CSV: %w", err)
	}

	s.logger.Debug("Loaded taxonomy rows from CSV",
		logging.Field{Key: "count", Value: len(rows)},
		logging.Field{Key: "file", Value: filePath})
	return rows, nil
}

func (s *TaxonomyStore) loadYAML(filePath string) ([]models.TaxonomyRow, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading taxonomy file: %w", err)
	}

	// Preferred shape: a "products" key. Fall back to a bare list for older
	// exports.
	var config taxonomyConfig
	if err := yaml.Unmarshal(data, &config); err == nil && len(config.Products) > 0 {
		s.logger.Debug("Loaded taxonomy rows from YAML",
			logging.Field{Key: "count", Value: len(config.Products)},
			logging.Field{Key: "file", Value: filePath})
		return config.Products, nil
	}

	var rows []models.TaxonomyRow
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("error parsing taxonomy YAML: %w", err)
	}

	s.logger.Debug("Loaded taxonomy rows from YAML list",
		logging.Field{Key: "count", Value: len(rows)},
		logging.Field{Key: "file", Value: filePath})
	return rows, nil
}

// SaveRows writes the taxonomy back to a YAML file, creating the parent
// directory if needed. Used by admin flows that upsert taxonomy rows.
func (s *TaxonomyStore) SaveRows(rows []models.TaxonomyRow) error {
	filename := s.TaxonomyFile
	if filename == "" {
		filename = "taxonomy.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil && err != os.ErrNotExist {
		return fmt.Errorf("error resolving taxonomy file: %w", err)
	}
	if err == os.ErrNotExist {
		if !filepath.IsAbs(filename) {
			filePath = filepath.Join("database", filename)
		} else {
			filePath = filename
		}
	}

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	data, err := yaml.Marshal(taxonomyConfig{Products: rows})
	if err != nil {
		return fmt.Errorf("error marshaling taxonomy: %w", err)
	}

	if err := os.WriteFile(filePath, data, models.PermissionReportFile); err != nil {
		return fmt.Errorf("error writing taxonomy: %w", err)
	}

	s.logger.Debug("Saved taxonomy rows",
		logging.Field{Key: "count", Value: len(rows)},
		logging.Field{Key: "file", Value: filePath})
	return nil
}
