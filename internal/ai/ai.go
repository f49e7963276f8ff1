/*
Package ai provides optional Gemini-backed analysis of announcement text,
focused on governance events affecting the target company.
*/
package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is used when no model name is supplied.
const DefaultModel = "gemini-2.5-flash"

type GovernanceEvent struct {
	Category string `json:"category"`
	Details  string `json:"details"`
}

type Analysis struct {
	Summary          []string          `json:"summary"`
	GovernanceEvents []GovernanceEvent `json:"governance_events"`
}

var systemInstruction = `
You are a corporate governance analyst reviewing public stock-exchange
disclosures (SGX and Bursa Malaysia announcements).

Your task is to analyze the provided announcement text and report anything
relevant to the governance of the named company.

### Governance categories to look for:
* **Board Changes:** Appointments, resignations or retirements of directors, changes of chairperson, committee membership changes.
* **Shareholder Actions:** Substantial shareholder notices, changes in shareholding, share buybacks, general meeting resolutions.
* **Director Dealings:** Director interests in securities, related-party transactions involving directors.
* **Corporate Actions:** Rights issues, placements, dividends, restructurings that alter shareholder rights.

Keep every observation factual and tied to the announcement text. Do not
speculate beyond it. If the text contains nothing governance-relevant, return
an empty list of events and say so in the summary.
`

// GenerateSummary asks Gemini for a structured governance analysis of one
// announcement's extracted text.
func GenerateSummary(companyName string, title string, text string, apiKey string, modelName string) (*Analysis, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if modelName == "" {
		modelName = DefaultModel
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	prompt := fmt.Sprintf("Company: %s\nAnnouncement title: %s\n\nAnalyze the following announcement text:\n\n---\n%s", companyName, title, text)

	systemContent := &genai.Content{
		Parts: []*genai.Part{
			{Text: systemInstruction},
		},
		Role: "system",
	}

	userContent := &genai.Content{
		Parts: []*genai.Part{
			{Text: prompt},
		},
		Role: "user",
	}

	contents := []*genai.Content{systemContent, userContent}

	resp, err := client.Models.GenerateContent(ctx, modelName, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   getResponseSchema(),
	})
	if err != nil {
		return nil, fmt.Errorf("gemini API call failed: %w", err)
	}

	respText := resp.Text()

	var analysis Analysis
	if err := json.Unmarshal([]byte(respText), &analysis); err != nil {
		return nil, fmt.Errorf("failed to unmarshal gemini JSON response: %w. Raw text: %s", err, respText)
	}

	return &analysis, nil
}

func getResponseSchema() *genai.Schema {
	eventSchema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"category": {Type: genai.TypeString, Description: "One of the defined governance categories."},
			"details":  {Type: genai.TypeString, Description: "Specific names, dates and terms from the announcement."},
		},
		Required: []string{"category", "details"},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "A list of 2-4 concise bullet points summarizing the announcement.",
			},
			"governance_events": {
				Type:        genai.TypeArray,
				Items:       eventSchema,
				Description: "Governance-relevant observations, empty when there are none.",
			},
		},
		Required: []string{"summary", "governance_events"},
	}
}
