package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sashabaranov/go-openai"

	domai "github.com/visionlane/vision-board/internal/domain/ai"
	"github.com/visionlane/vision-board/internal/infra/ai/prompt"
)

const (
	shortMaxTokens         = 1000
	comprehensiveMaxTokens = 3000
	temperature            = 0.7
)

type Client struct {
	*openai.Client
	Model              string
	ComprehensiveModel string
}

func NewClient(apiKey, model, comprehensiveModel string) *Client {
	return &Client{Client: openai.NewClient(apiKey), Model: model, ComprehensiveModel: comprehensiveModel}
}

// ShortAnalysis generates the concise summary shown right after the
// questionnaire completes.
func (c *Client) ShortAnalysis(ctx context.Context, formattedAnswers string) (string, error) {
	model := c.Model
	if model == "" {
		model = openai.GPT4oMini
	}
	return c.complete(ctx, model, prompt.GetShortSystemPrompt(), formattedAnswers, shortMaxTokens)
}

// ComprehensiveAnalysis generates the long report variant with the
// fixed section outline used for the emailed PDF.
func (c *Client) ComprehensiveAnalysis(ctx context.Context, formattedAnswers string) (string, error) {
	model := c.ComprehensiveModel
	if model == "" {
		model = openai.GPT4o
	}
	return c.complete(ctx, model, prompt.GetComprehensiveSystemPrompt(), formattedAnswers, comprehensiveMaxTokens)
}

func (c *Client) complete(ctx context.Context, model, system, user string, maxTokens int) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	}

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return "", domai.ErrQuotaExceeded
		}
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
