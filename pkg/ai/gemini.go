package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"
)

const reviewSystemPrompt = `You are a proofreader and SEO reviewer for a Chinese-language CMS.
Review the article and report every problem you find: punctuation and
character-width mistakes, wrong homographs, informal register, numeric
formatting, heading structure, and SEO weaknesses.

Respond with JSON only, in this exact shape:
{"issues":[{"rule_id":"...","category":"...","severity":"info|warning|error|critical",
"message":"...","suggestion":"...","confidence":0.0,
"can_auto_fix":false,"blocks_publish":false,"evidence":"...","offset":0,"length":0}]}

Rules:
- rule_id, severity, message, and confidence are required on every issue.
- evidence is the exact text span from the article that triggered the issue.
- confidence is your own certainty in [0,1].
- blocks_publish only for hard publishing requirement violations, and
  only together with severity error or critical.`

// GeminiReviewer is a Collaborator backed by the Gemini API with JSON
// response enforcement.
type GeminiReviewer struct {
	client *genai.Client
	model  string
}

func NewGeminiReviewer(ctx context.Context, apiKey, model string) (*GeminiReviewer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiReviewer{client: client, model: model}, nil
}

func (g *GeminiReviewer) Model() string {
	return g.model
}

func (g *GeminiReviewer) Review(ctx context.Context, req ReviewRequest) ([]byte, error) {
	userPayload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal review request: %w", err)
	}

	resp, err := g.client.Models.GenerateContent(ctx,
		g.model,
		genai.Text(string(userPayload)),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(reviewSystemPrompt, genai.RoleUser),
			ResponseMIMEType:  "application/json",
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini review failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("gemini returned no completion")
	}
	return []byte(text), nil
}
