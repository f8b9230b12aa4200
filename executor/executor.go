package executor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/skosovsky/promptrun"
	"github.com/skosovsky/promptrun/adapter"
	"github.com/skosovsky/promptrun/adapter/anthropic"
	"github.com/skosovsky/promptrun/adapter/openai"
)

const (
	// timestampLayout yields filesystem-safe second-resolution names.
	timestampLayout = "2006-01-02_15-04-05"
	outputExt       = ".txt"
)

// Config holds the provider credentials read at startup. A provider with an
// empty key is unusable for the lifetime of the Executor.
type Config struct {
	AnthropicAPIKey string
	OpenAIAPIKey    string
}

// Job is one prompt execution: what to send and where to write the result.
type Job struct {
	Prompt     string
	System     string
	Model      string
	OutputDir  string
	OutputName string // without extension; empty selects timestamp naming
}

// Executor routes a prompt to the provider owning the requested model and
// persists the response text. Construct with New; the zero value is not
// usable.
type Executor struct {
	completers map[promptrun.Provider]adapter.Completer
	now        func() time.Time
}

// Option configures an Executor.
type Option func(*Executor)

// WithCompleter replaces the adapter used for a provider. Mainly useful in
// tests; the completer must not be nil.
func WithCompleter(p promptrun.Provider, c adapter.Completer) Option {
	return func(e *Executor) { e.completers[p] = c }
}

// New builds an Executor with one adapter per configured credential.
// Returns promptrun.ErrNoCredentials when no provider is usable: execution
// could never succeed, so construction fails before any network attempt.
func New(cfg Config, opts ...Option) (*Executor, error) {
	e := &Executor{
		completers: make(map[promptrun.Provider]adapter.Completer, 2),
		now:        time.Now,
	}
	if cfg.AnthropicAPIKey != "" {
		e.completers[promptrun.ProviderAnthropic] = anthropic.New(cfg.AnthropicAPIKey)
	}
	if cfg.OpenAIAPIKey != "" {
		e.completers[promptrun.ProviderOpenAI] = openai.New(cfg.OpenAIAPIKey)
	}
	for _, opt := range opts {
		opt(e)
	}
	if len(e.completers) == 0 {
		return nil, promptrun.ErrNoCredentials
	}
	return e, nil
}

// Execute resolves the model, performs the single provider call, and writes
// the response to <OutputDir>/<name>.txt, overwriting any existing file.
// It returns the path of the written file. An empty response text is not an
// error; it produces an empty file.
func (e *Executor) Execute(ctx context.Context, job Job) (string, error) {
	if job.Prompt == "" {
		return "", promptrun.ErrEmptyPrompt
	}
	provider := promptrun.DetectProvider(job.Model)
	completer, ok := e.completers[provider]
	if !ok {
		return "", fmt.Errorf("%w %s", promptrun.ErrMissingCredential, provider)
	}
	text, err := completer.Complete(ctx, adapter.Request{
		Prompt: job.Prompt,
		System: job.System,
		Model:  promptrun.Normalize(job.Model),
	})
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(job.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("executor: create output directory: %w", err)
	}
	name := job.OutputName
	if name == "" {
		name = e.now().Format(timestampLayout)
	}
	path := filepath.Join(job.OutputDir, name+outputExt)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("executor: write output file: %w", err)
	}
	return path, nil
}
