// Package openai implements adapter.Completer for the OpenAI Chat
// Completions API. The system prompt, when present, is prepended as a
// system-role message ahead of the single user message.
//
// Newer model families (gpt-5, o1) take a completion-token cap and must not
// receive a sampling temperature; all other models get max_tokens together
// with a fixed temperature of 0.7.
package openai
