// Package container provides dependency injection for the pension-match
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"context"
	"fmt"

	"eladk/pension-match/internal/ai"
	"eladk/pension-match/internal/config"
	"eladk/pension-match/internal/csvimport"
	"eladk/pension-match/internal/exposure"
	"eladk/pension-match/internal/importer"
	"eladk/pension-match/internal/logging"
	"eladk/pension-match/internal/matcher"
	"eladk/pension-match/internal/mislaka"
	"eladk/pension-match/internal/models"
	"eladk/pension-match/internal/pipeline"
	"eladk/pension-match/internal/store"
	"eladk/pension-match/internal/taxonomy"
)

// SourceType defines the import sources available.
type SourceType string

const (
	CSVSavings   SourceType = "csv"
	CSVInsurance SourceType = "csv-insurance"
	Mislaka      SourceType = "mislaka"
)

// Container holds all application dependencies and provides methods to
// access them. It is immutable after creation; dependencies are reached
// only through getter methods.
type Container struct {
	logger   logging.Logger
	config   *config.Config
	store    *store.TaxonomyStore
	index    *taxonomy.Index
	matcher  *matcher.ProductMatcher
	resolver *exposure.Resolver
	pipeline *pipeline.Processor
	aiClient ai.Client

	parsers map[SourceType]importer.RecordParser
}

// NewContainer creates and wires all application dependencies. The taxonomy
// file is loaded once here; every component shares the resulting index.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	// Create logger first as it's needed by other components
	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	taxonomyStore := store.NewTaxonomyStore(cfg.Taxonomy.File, logger)

	rows, err := taxonomyStore.LoadRows()
	if err != nil {
		return nil, fmt.Errorf("failed to load taxonomy: %w", err)
	}
	index := taxonomy.BuildIndex(rows, logger)

	productMatcher := matcher.New(index, logger, cfg.Matching.Threshold)
	resolver := exposure.NewResolver(index, logger)
	processor := pipeline.NewProcessor(productMatcher, logger)

	var aiClient ai.Client
	if cfg.AI.Enabled && cfg.AI.APIKey != "" {
		client, err := ai.NewGeminiClient(ctx, cfg.AI.APIKey, cfg.AI.Model, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create AI client: %w", err)
		}
		aiClient = client
		logger.Info("AI extraction enabled")
	} else {
		logger.Debug("AI extraction disabled")
	}

	parsers := map[SourceType]importer.RecordParser{
		CSVSavings:   csvimport.NewParser(models.RecordKindGemel, logger),
		CSVInsurance: csvimport.NewParser(models.RecordKindInsurance, logger),
		Mislaka:      mislaka.NewParser(logger),
	}

	logger.Info("Container initialized successfully",
		logging.Field{Key: "taxonomy_rows", Value: index.Len()},
		logging.Field{Key: "ai_enabled", Value: cfg.AI.Enabled})

	return &Container{
		logger:   logger,
		config:   cfg,
		store:    taxonomyStore,
		index:    index,
		matcher:  productMatcher,
		resolver: resolver,
		pipeline: processor,
		aiClient: aiClient,
		parsers:  parsers,
	}, nil
}

// GetParser returns a record parser for the given source type.
func (c *Container) GetParser(st SourceType) (importer.RecordParser, error) {
	p, ok := c.parsers[st]
	if !ok {
		return nil, fmt.Errorf("unknown source type: %s", st)
	}
	return p, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetIndex returns the shared taxonomy index.
func (c *Container) GetIndex() *taxonomy.Index {
	return c.index
}

// GetMatcher returns the product matcher.
func (c *Container) GetMatcher() *matcher.ProductMatcher {
	return c.matcher
}

// GetResolver returns the exposure resolver.
func (c *Container) GetResolver() *exposure.Resolver {
	return c.resolver
}

// GetPipeline returns the import pipeline processor.
func (c *Container) GetPipeline() *pipeline.Processor {
	return c.pipeline
}

// GetStore returns the taxonomy store.
func (c *Container) GetStore() *store.TaxonomyStore {
	return c.store
}

// GetAIClient returns the AI extraction client, or nil if AI is disabled.
func (c *Container) GetAIClient() ai.Client {
	return c.aiClient
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	if closer, ok := c.aiClient.(*ai.GeminiClient); ok {
		if err := closer.Close(); err != nil {
			return err
		}
	}
	c.logger.Debug("Container closed")
	return nil
}
