// Package adapter defines the Completer interface that both provider
// adapters implement, plus the shared request type and the ProviderError
// wrapper. Implementations live in provider-specific subpackages.
package adapter
