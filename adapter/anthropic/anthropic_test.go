package anthropic

import (
	"testing"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/skosovsky/promptrun/adapter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestParams_UserTurnOnly(t *testing.T) {
	t.Parallel()
	p := params(adapter.Request{Prompt: "Hello", Model: "claude-sonnet-4-20250514"})
	assert.Equal(t, anthropic.Model("claude-sonnet-4-20250514"), p.Model)
	assert.Equal(t, adapter.MaxTokens, p.MaxTokens)
	require.Len(t, p.Messages, 1)
	assert.Equal(t, anthropic.MessageParamRoleUser, p.Messages[0].Role)
	require.Len(t, p.Messages[0].Content, 1)
	require.NotNil(t, p.Messages[0].Content[0].OfText)
	assert.Equal(t, "Hello", p.Messages[0].Content[0].OfText.Text)
	assert.Empty(t, p.System)
}

func TestParams_SystemIsTopLevel(t *testing.T) {
	t.Parallel()
	p := params(adapter.Request{Prompt: "Hi", System: "You are a helper.", Model: "claude-sonnet-4-20250514"})
	require.Len(t, p.System, 1)
	assert.Equal(t, "You are a helper.", p.System[0].Text)
	// The system prompt never becomes a conversation turn.
	require.Len(t, p.Messages, 1)
	assert.Equal(t, anthropic.MessageParamRoleUser, p.Messages[0].Role)
}

func TestExtractText_JoinsTextBlocks(t *testing.T) {
	t.Parallel()
	msg := &anthropic.Message{Content: []anthropic.ContentBlockUnion{
		{Type: "text", Text: "first"},
		{Type: "text", Text: "second"},
	}}
	assert.Equal(t, "first\nsecond", extractText(msg))
}

func TestExtractText_IgnoresNonTextBlocks(t *testing.T) {
	t.Parallel()
	msg := &anthropic.Message{Content: []anthropic.ContentBlockUnion{
		{Type: "tool_use"},
		{Type: "text", Text: "only"},
		{Type: "thinking"},
	}}
	assert.Equal(t, "only", extractText(msg))
}

func TestExtractText_EmptyContent(t *testing.T) {
	t.Parallel()
	assert.Empty(t, extractText(&anthropic.Message{}))
}
