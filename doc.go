// Package promptrun routes a single text prompt to one of two remote LLM
// providers (Anthropic, OpenAI) selected by model name. It holds the model
// alias table, provider detection, and the shared error sentinels; the
// provider calls themselves live in adapter subpackages and are orchestrated
// by the executor package.
package promptrun
