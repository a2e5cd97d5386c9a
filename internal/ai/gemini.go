package ai

import (
	"context"
	"errors"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/ShadyGEE/slideshow-agent/internal/config"
)

// Gemini talks to the Google Generative AI API.
type Gemini struct {
	key         string
	model       string
	temperature float32
}

func NewGemini(settings config.ProviderSettings) (*Gemini, error) {
	if settings.Key == "" {
		return nil, ErrNoCredential
	}
	model := settings.Model
	if model == "" {
		model = "gemini-2.5-flash-preview-09-2025"
	}
	return &Gemini{
		key:         settings.Key,
		model:       model,
		temperature: float32(settings.Temperature),
	}, nil
}

func (g *Gemini) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(g.key))
	if err != nil {
		return "", &UpstreamError{Provider: "gemini", Err: err}
	}
	defer client.Close()

	model := client.GenerativeModel(g.model)
	if maxTokens > 0 {
		model.SetMaxOutputTokens(int32(maxTokens))
	}
	if g.temperature > 0 {
		model.SetTemperature(g.temperature)
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &UpstreamError{Provider: "gemini", Err: err}
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", &UpstreamError{Provider: "gemini", Err: errors.New("empty response")}
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", &UpstreamError{Provider: "gemini", Err: errors.New("no text parts in response")}
	}
	return sb.String(), nil
}
