package anthropic

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/skosovsky/promptrun"
	"github.com/skosovsky/promptrun/adapter"
)

// Adapter implements adapter.Completer for the Anthropic Messages API.
type Adapter struct {
	client anthropic.Client
}

// New returns an Adapter authenticated with the given API key. The key is
// not validated here; a bad key surfaces as a ProviderError on Complete.
func New(apiKey string) *Adapter {
	return &Adapter{client: anthropic.NewClient(option.WithAPIKey(apiKey))}
}

// Complete issues one synchronous Messages request and returns the
// concatenated text of the response. No retry on failure.
func (a *Adapter) Complete(ctx context.Context, req adapter.Request) (string, error) {
	msg, err := a.client.Messages.New(ctx, params(req))
	if err != nil {
		return "", &adapter.ProviderError{Provider: promptrun.ProviderAnthropic, Err: err}
	}
	return extractText(msg), nil
}

// params builds the Messages request: one user turn with the full prompt,
// the system prompt (if any) as a top-level instruction, and the fixed
// token ceiling.
func params(req adapter.Request) anthropic.MessageNewParams {
	p := anthropic.MessageNewParams{
		Model:     anthropic.Model(req.Model),
		MaxTokens: adapter.MaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}
	if req.System != "" {
		p.System = []anthropic.TextBlockParam{{Text: req.System}}
	}
	return p
}

// extractText joins the text blocks of the response with newlines. Blocks
// without text content contribute nothing; an empty content sequence yields
// an empty string, not an error.
func extractText(msg *anthropic.Message) string {
	var parts []string
	for _, block := range msg.Content {
		if block.Type == "text" {
			parts = append(parts, block.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// Compile-time check that Adapter implements adapter.Completer.
var _ adapter.Completer = (*Adapter)(nil)
