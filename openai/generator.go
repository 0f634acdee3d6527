// Package openai implements card generation against OpenAI-compatible chat
// completion APIs, including local servers such as Ollama and LM Studio.
package openai

import (
	"context"

	"github.com/fwojciec/cardmill"
	openai "github.com/sashabaranov/go-openai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

const systemMessage = "You are an expert tutor who writes spaced repetition flashcards. Follow the card format in the prompt exactly."

// Client is the subset of the go-openai client used by the Generator.
// Declaring it here keeps the Generator testable without a live API.
type Client interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Ensure Generator implements cardmill.Generator at compile time.
var _ cardmill.Generator = (*Generator)(nil)

// Generator implements cardmill.Generator using an OpenAI-compatible API.
type Generator struct {
	client Client
	model  string
}

// NewGenerator creates a new Generator. An empty model selects DefaultModel.
func NewGenerator(client Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// NewClient creates a go-openai client. A non-empty baseURL points the
// client at a compatible server instead of api.openai.com.
func NewClient(apiKey, baseURL string) *openai.Client {
	if baseURL == "" {
		return openai.NewClient(apiKey)
	}
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL
	return openai.NewClientWithConfig(config)
}

// Generate produces card candidates from a prepared prompt.
func (g *Generator) Generate(ctx context.Context, prompt string) ([]cardmill.CardCandidate, error) {
	if prompt == "" {
		return nil, cardmill.Errorf(cardmill.EINVALID, "prompt required")
	}

	req := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemMessage},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.4,
		N:           1,
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, cardmill.Errorf(cardmill.EINTERNAL, "model returned no choices")
	}

	return cardmill.ParseCards(resp.Choices[0].Message.Content)
}
