// Package gemini implements card generation using Google Gemini.
package gemini

import (
	"context"

	"github.com/fwojciec/cardmill"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

const systemInstruction = "You are an expert tutor who writes spaced repetition flashcards. Follow the card format in the prompt exactly."

// Ensure Generator implements cardmill.Generator at compile time.
var _ cardmill.Generator = (*Generator)(nil)

// Generator implements cardmill.Generator using Google Gemini.
type Generator struct {
	client *genai.Client
	model  string
}

// NewGenerator creates a new Generator. An empty model selects DefaultModel.
func NewGenerator(client *genai.Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// Generate produces card candidates from a prepared prompt.
func (g *Generator) Generate(ctx context.Context, prompt string) ([]cardmill.CardCandidate, error) {
	if prompt == "" {
		return nil, cardmill.Errorf(cardmill.EINVALID, "prompt required")
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, cardmill.Errorf(cardmill.EINTERNAL, "gemini returned nil result")
	}

	return cardmill.ParseCards(result.Text())
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
		Temperature: &temp,
	}
}
