package adapter

import (
	"context"
	"fmt"

	"github.com/skosovsky/promptrun"
)

// MaxTokens is the fixed response-size ceiling applied by both providers.
// It is not user-configurable.
const MaxTokens int64 = 4096

// Request is the provider-agnostic completion request. Model must already be
// the canonical identifier (see promptrun.Normalize). System, when non-empty,
// is attached per provider convention and never merged into Prompt.
type Request struct {
	Prompt string
	System string
	Model  string
}

// Completer issues exactly one synchronous completion request and returns the
// response text. Implementations do not retry; an empty provider response
// yields an empty string, not an error.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// ProviderError wraps any transport or API-level failure from a provider
// call, carrying the original message. Callers should use errors.As.
type ProviderError struct {
	Provider promptrun.Provider
	Err      error
}

// Error implements error.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s API error: %v", e.Provider, e.Err)
}

// Unwrap returns the wrapped error for errors.Is/errors.As.
func (e *ProviderError) Unwrap() error { return e.Err }

// Compile-time check that ProviderError implements error.
var _ error = (*ProviderError)(nil)
