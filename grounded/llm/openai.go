package llm

import (
	"context"

	"github.com/openai/openai-go"
)

// OpenAIOptions configures the OpenAI-backed Model, grounded on the
// teacher's model/openai.Options.
type OpenAIOptions struct {
	Model       string
	Temperature float64
}

// OpenAIModel wraps the OpenAI Chat Completions API as a single-turn Model.
type OpenAIModel struct {
	client *openai.Client
	opts   OpenAIOptions
}

// NewOpenAIModel constructs an OpenAIModel using the official SDK client,
// grounded on model/openai.NewModel.
func NewOpenAIModel(optFns ...func(o *OpenAIOptions)) *OpenAIModel {
	client := openai.NewClient()
	opts := OpenAIOptions{Model: openai.ChatModelGPT4oMini, Temperature: 0.7}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &OpenAIModel{client: &client, opts: opts}
}

// Generate sends prompt as the sole user message and returns the first
// choice's text.
func (m *OpenAIModel) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := m.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: m.opts.Model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(m.opts.Temperature),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// Info implements Model.
func (m *OpenAIModel) Info() Info {
	return Info{Name: m.opts.Model, Provider: "openai"}
}
