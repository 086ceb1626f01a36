package ai

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// SystemPrompt frames every assistant exchange around the dashboard domain.
const SystemPrompt = `You are the WorkBindr assistant, a helpful collaborator embedded in a
business productivity dashboard. Users ask you about their projects, tasks,
micro-apps, transactions and governance proposals.

Key rules:
1. Answer concisely and in plain language
2. When asked about platform features, describe what the dashboard offers
3. Never invent data about the user's account; suggest where to look instead`

// Client wraps the Gemini API behind the assistant interface.
type Client struct {
	client *genai.Client
}

// NewClient connects to the Gemini API with the given key.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Client{client: client}, nil
}

// Generate sends the prompt to the named model and returns the reply text.
func (c *Client) Generate(ctx context.Context, model, prompt string) (string, error) {
	genModel := c.client.GenerativeModel(model)
	genModel.SystemInstruction = genai.NewUserContent(genai.Text(SystemPrompt))
	genModel.GenerationConfig.ResponseMIMEType = "text/plain"

	resp, err := genModel.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from model %s", model)
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response part from model %s", model)
	}
	return string(text), nil
}

// Close releases the underlying API connection.
func (c *Client) Close() error {
	return c.client.Close()
}
