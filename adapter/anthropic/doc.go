// Package anthropic implements adapter.Completer for the Anthropic Messages
// API. Requests carry exactly one user turn; the system prompt, when present,
// goes into the top-level System field rather than a conversation turn.
// Text content blocks of the response are joined with newlines; other block
// kinds contribute nothing.
package anthropic
