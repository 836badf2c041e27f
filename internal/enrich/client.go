package enrich

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"github.com/scholarmatch/scholarship-sync/internal/config"
)

// Client wraps the Gen AI SDK for scholarship enrichment. One reference
// string goes in; a loosely-typed field set comes out. Network errors,
// malformed payloads and quota errors are all surfaced uniformly as an
// error for that one reference.
type Client struct {
	client *genai.Client
	model string
}

// NewClient creates an enrichment client.
//
// Credentials and backend selection follow the SDK's env vars:
//   - GEMINI_API_KEY for the Gemini developer API
//   - GOOGLE_GENAI_USE_VERTEXAI / GOOGLE_CLOUD_PROJECT / GOOGLE_CLOUD_LOCATION
//     for Vertex AI
func NewClient(ctx context.Context, cfg config.Config) (*Client, error) {
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("enrich: create genai client: %w", err)
	}
	return &Client{client: gc, model: cfg.ModelName}, nil
}

// Enrich asks the model for structured information about one scholarship
// reference. The result is the raw decoded JSON object; normalization and
// validation happen downstream.
func (c *Client) Enrich(ctx context.Context, reference string) (map[string]any, error) {
	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: buildEnrichmentPrompt(reference)},
			},
		},
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("enrich: generate content: %w", err)
	}

	rawText := resp.Text()
	if rawText == "" {
		return nil, fmt.Errorf("enrich: empty response from model")
	}

	// Clean up Markdown fences / extra text if the model ignored instructions.
	clean := cleanModelJSON(rawText)

	var fields map[string]any
	if err := json.Unmarshal([]byte(clean), &fields); err != nil {
		return nil, fmt.Errorf("enrich: unmarshal JSON: %w\nraw response: %s", err, rawText)
	}
	return fields, nil
}
