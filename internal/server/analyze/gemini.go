package analyze

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const reportTemperature float32 = 0.6

// ReportGenerator produces a markdown hiring report for one candidate.
type ReportGenerator interface {
	GenerateReport(ctx context.Context, jobDescription, resumeText string) (string, error)
}

// GeminiGenerator generates reports with the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) GenerateReport(ctx context.Context, jobDescription, resumeText string) (string, error) {
	temperature := reportTemperature
	config := &genai.GenerateContentConfig{
		Temperature: &temperature,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text(buildPrompt(jobDescription, resumeText)), config)
	if err != nil {
		return "", fmt.Errorf("generate report: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty model response")
	}
	return text, nil
}
