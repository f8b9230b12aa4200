package openai

import (
	"context"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"

	"github.com/skosovsky/promptrun"
	"github.com/skosovsky/promptrun/adapter"
)

// defaultTemperature is sent with every request outside the newer model
// families, which reject the parameter.
const defaultTemperature = 0.7

// Adapter implements adapter.Completer for the OpenAI Chat Completions API.
type Adapter struct {
	client openai.Client
}

// New returns an Adapter authenticated with the given API key. The key is
// not validated here; a bad key surfaces as a ProviderError on Complete.
func New(apiKey string) *Adapter {
	return &Adapter{client: openai.NewClient(option.WithAPIKey(apiKey))}
}

// Complete issues one synchronous Chat Completions request and returns the
// first choice's message content. No retry on failure.
func (a *Adapter) Complete(ctx context.Context, req adapter.Request) (string, error) {
	completion, err := a.client.Chat.Completions.New(ctx, params(req))
	if err != nil {
		return "", &adapter.ProviderError{Provider: promptrun.ProviderOpenAI, Err: err}
	}
	return firstChoiceText(completion), nil
}

// completionTokenFamily reports whether the model takes the newer request
// shape: a completion-token cap and no sampling temperature. Matching is
// substring-based, mirroring provider detection.
func completionTokenFamily(model string) bool {
	return strings.Contains(model, "gpt-5") || strings.Contains(model, "o1")
}

// params builds the Chat Completions request: the system prompt (if any) as
// a leading system-role message, then one user-role message with the full
// prompt text.
func params(req adapter.Request) openai.ChatCompletionNewParams {
	var messages []openai.ChatCompletionMessageParamUnion
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	messages = append(messages, openai.UserMessage(req.Prompt))
	p := openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(req.Model),
		Messages: messages,
	}
	if completionTokenFamily(req.Model) {
		p.MaxCompletionTokens = openai.Int(adapter.MaxTokens)
	} else {
		p.MaxTokens = openai.Int(adapter.MaxTokens)
		p.Temperature = openai.Float(defaultTemperature)
	}
	return p
}

// firstChoiceText returns the first choice's message content, or an empty
// string when the response has no choices or no content. Absence of content
// is not an error.
func firstChoiceText(completion *openai.ChatCompletion) string {
	if len(completion.Choices) == 0 {
		return ""
	}
	return completion.Choices[0].Message.Content
}

// Compile-time check that Adapter implements adapter.Completer.
var _ adapter.Completer = (*Adapter)(nil)
