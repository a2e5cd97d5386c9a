package ai

import (
	"context"
	"errors"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/ShadyGEE/slideshow-agent/internal/config"
)

// OpenAI implements Completer using the official openai-go SDK (chat
// completions). With an endpoint override it also covers OpenAI-compatible
// APIs such as Groq.
type OpenAI struct {
	name  string
	model string
	opts  []option.RequestOption
}

func NewOpenAI(settings config.ProviderSettings) (*OpenAI, error) {
	if settings.Key == "" {
		return nil, ErrNoCredential
	}
	model := settings.Model
	if model == "" {
		model = "gpt-4o-mini"
	}
	opts := []option.RequestOption{option.WithAPIKey(settings.Key)}
	if settings.Endpoint != "" {
		opts = append(opts, option.WithBaseURL(settings.Endpoint))
	}
	return &OpenAI{name: settings.Driver, model: model, opts: opts}, nil
}

func (o *OpenAI) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	client := openai.NewClient(o.opts...)

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	}
	if maxTokens > 0 {
		params.MaxTokens = openai.Int(int64(maxTokens))
	}

	resp, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", &UpstreamError{Provider: o.name, Err: err}
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &UpstreamError{Provider: o.name, Err: errors.New("empty choices")}
	}
	return resp.Choices[0].Message.Content, nil
}
