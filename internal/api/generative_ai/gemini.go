package generativeAI

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"
)

// AIClient wraps the Gemini API for document-extraction prompts.
type AIClient struct {
	client *genai.Client
	model  string
}

// NewAIClient creates a Gemini client. The API key comes from the
// GOOGLE_GEMINI_API_KEY environment variable.
func NewAIClient(ctx context.Context, model string) (*AIClient, error) {
	apiKey := os.Getenv("GOOGLE_GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GOOGLE_GEMINI_API_KEY environment variable is not set")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &AIClient{
		client: client,
		model:  model,
	}, nil
}

// GenerateContent sends the prompt to the model and returns the generated
// text.
func (ai *AIClient) GenerateContent(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	result, err := ai.client.Models.GenerateContent(ctx, ai.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return result.Text(), nil
}
