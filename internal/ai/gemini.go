// Package ai wraps the Gemini backend and the prompt and response plumbing
// around it. Everything here degrades: callers treat any error as a signal to
// use curated fallback content.
package ai

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

// ErrUnavailable is returned when no client was configured or the backend
// returned an empty completion.
var ErrUnavailable = errors.New("assistant unavailable")

// Gemini implements the assistant port on top of the Gemini API. A nil
// receiver or a client built without an API key reports ErrUnavailable from
// every Generate call, so the rest of the application never branches on
// whether AI is configured.
type Gemini struct {
	client *genai.Client
	model  string
	logger zerolog.Logger
}

// NewGemini builds the assistant. An empty apiKey yields a disabled
// assistant rather than an error.
func NewGemini(ctx context.Context, apiKey, model string, logger zerolog.Logger) (*Gemini, error) {
	g := &Gemini{model: model, logger: logger}
	if apiKey == "" {
		logger.Warn().Msg("gemini api key not set, assistant disabled")
		return g, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	g.client = client
	logger.Info().Str("model", model).Msg("gemini assistant initialized")
	return g, nil
}

func (g *Gemini) Model() string {
	return g.model
}

func (g *Gemini) Generate(ctx context.Context, prompt, systemInstruction string) (string, error) {
	if g == nil || g.client == nil {
		return "", ErrUnavailable
	}

	var config *genai.GenerateContentConfig
	if systemInstruction != "" {
		config = &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: systemInstruction}},
			},
		}
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), config)
	if err != nil {
		g.logger.Warn().Err(err).Str("model", g.model).Msg("gemini generate failed")
		return "", err
	}

	text := result.Text()
	if text == "" {
		return "", ErrUnavailable
	}
	return text, nil
}
