// Package ai extracts structured product details from free-text
// descriptions (speech or AI transcription input) using the Gemini API.
// The service is consumed as an opaque request/response call; failures
// degrade to an empty extraction, never a failed import.
package ai

import (
	"context"
	"fmt"
	"strings"

	"eladk/pension-match/internal/logging"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ProductDetails is the structured result of a free-text extraction. Empty
// fields mean the model could not identify that attribute.
type ProductDetails struct {
	Category      string
	Track         string
	Company       string
	ProductNumber string
}

// Client extracts product details from a free-text description.
type Client interface {
	ExtractProduct(ctx context.Context, description string) (ProductDetails, error)
}

// GeminiClient implements Client against the Google Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
	logger logging.Logger
}

var _ Client = (*GeminiClient)(nil)

// NewGeminiClient creates a Gemini-backed extraction client.
func NewGeminiClient(ctx context.Context, apiKey, modelName string, logger logging.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  client.GenerativeModel(modelName),
		logger: logger,
	}, nil
}

// Close releases the underlying API client.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// ExtractProduct asks the model to pull product attributes out of a
// free-text description. The response is parsed leniently: missing lines
// simply leave fields empty for the fuzzy matcher to work with.
func (c *GeminiClient) ExtractProduct(ctx context.Context, description string) (ProductDetails, error) {
	prompt := fmt.Sprintf(`Extract the financial product details from the following description.
The description may be in Hebrew or English and may come from a speech transcription.

Description: %s

Respond in this format:
Category: [product family, e.g. pension fund, study fund, or empty]
Track: [investment track name, or empty]
Company: [managing company name, or empty]
ProductNumber: [numeric product code if present, or empty]`, description)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return ProductDetails{}, fmt.Errorf("Gemini API error: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return ProductDetails{}, fmt.Errorf("no response from Gemini API")
	}

	responseText := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	details := parseResponse(responseText)

	c.logger.Debug("Extracted product details",
		logging.Field{Key: logging.FieldCategory, Value: details.Category},
		logging.Field{Key: logging.FieldCompany, Value: details.Company},
		logging.Field{Key: logging.FieldProductNumber, Value: details.ProductNumber})

	return details, nil
}

// parseResponse reads the "Key: value" lines from the model response.
func parseResponse(response string) ProductDetails {
	var details ProductDetails
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Category:"):
			details.Category = cleanValue(strings.TrimPrefix(line, "Category:"))
		case strings.HasPrefix(line, "Track:"):
			details.Track = cleanValue(strings.TrimPrefix(line, "Track:"))
		case strings.HasPrefix(line, "Company:"):
			details.Company = cleanValue(strings.TrimPrefix(line, "Company:"))
		case strings.HasPrefix(line, "ProductNumber:"):
			details.ProductNumber = cleanValue(strings.TrimPrefix(line, "ProductNumber:"))
		}
	}
	return details
}

func cleanValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "[]")
	if strings.EqualFold(s, "empty") || strings.EqualFold(s, "none") {
		return ""
	}
	return s
}
