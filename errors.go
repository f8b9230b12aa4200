package promptrun

import "errors"

// Sentinel errors for credential and usage failures.
// All use prefix "promptrun:" for identification. Callers should use errors.Is.
var (
	// ErrNoCredentials means neither provider has a configured API key, so no
	// request could ever be dispatched. Surfaced at startup, before any
	// network attempt.
	ErrNoCredentials = errors.New("promptrun: no API credentials available")

	// ErrMissingCredential means the provider the model resolved to has no
	// configured API key. The other provider is never used as a fallback.
	ErrMissingCredential = errors.New("promptrun: no credential configured for provider")

	// ErrEmptyPrompt means no prompt text reached the executor.
	ErrEmptyPrompt = errors.New("promptrun: prompt text must not be empty")
)
