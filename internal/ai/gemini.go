// README: Gemini-backed issue triage classifier.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Categories an issue report can be filed under. "other" is the catch-all and
// also what an unrecognized model answer is coerced to.
var issueCategories = []string{"billing", "driver", "route", "app", "other"}

// GeminiClassifier tags issue reports with a category using Gemini.
type GeminiClassifier struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClassifier initializes a Gemini client. apiKey comes from the
// environment.
func NewGeminiClassifier(ctx context.Context, apiKey string) (*GeminiClassifier, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Flash keeps triage latency and cost negligible.
	model := client.GenerativeModel("gemini-2.0-flash")
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0.1)

	return &GeminiClassifier{client: client, model: model}, nil
}

// Close cleans up the Gemini client resources.
func (c *GeminiClassifier) Close() {
	c.client.Close()
}

type classifyResult struct {
	Category string `json:"category"`
}

// ClassifyIssue returns one of the known issue categories for a report
// description.
func (c *GeminiClassifier) ClassifyIssue(ctx context.Context, description string) (string, error) {
	prompt := fmt.Sprintf(`You categorize support tickets for a ride-booking app.
Pick exactly one category from: %s.
Respond as JSON: {"category": "<category>"}.

Ticket: %s`, strings.Join(issueCategories, ", "), description)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	var result classifyResult
	if err := json.Unmarshal([]byte(cleanJSONString(responseText.String())), &result); err != nil {
		return "", fmt.Errorf("failed to parse JSON response: %w", err)
	}

	for _, cat := range issueCategories {
		if result.Category == cat {
			return cat, nil
		}
	}
	return "other", nil
}

// cleanJSONString removes markdown code fences if present.
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
