package promptrun

import "strings"

// modelAliases maps short human-friendly model names to the exact identifiers
// the provider APIs expect. Keys are unique; names not present here pass
// through Normalize unchanged.
var modelAliases = map[string]string{
	"claude-opus-4-1":   "claude-opus-4-1-20250805",
	"claude-opus-4.1":   "claude-opus-4-1-20250805",
	"claude-sonnet-4":   "claude-sonnet-4-20250514",
	"claude-haiku-3-5":  "claude-3-5-haiku-20241022",
	"claude-haiku-3.5":  "claude-3-5-haiku-20241022",
	"claude-sonnet-3-5": "claude-3-5-sonnet-20241022",
	"claude-sonnet-3.5": "claude-3-5-sonnet-20241022",

	"gpt5":       "gpt-5",
	"gpt5-mini":  "gpt-5-mini",
	"gpt5-nano":  "gpt-5-nano",
	"gpt4o":      "gpt-4o",
	"gpt4o-mini": "gpt-4o-mini",
}

// Keyword sets for provider detection, tested in priority order (Anthropic
// first). Matching is substring-based on the lowercased normalized name;
// whole-token matching is intentionally not used, so a name that merely
// embeds a keyword still matches.
var (
	anthropicKeywords = []string{"claude", "sonnet", "opus", "haiku"}
	openaiKeywords    = []string{"gpt", "o1", "davinci", "curie", "babbage", "ada"}
)

// Normalize maps a short model alias to its canonical API identifier.
// Lookup is exact-match only: no case folding, no fuzzy matching. Names not
// in the alias table are returned unchanged; they are assumed to already be
// canonical and fail at the provider boundary otherwise.
func Normalize(model string) string {
	if canonical, ok := modelAliases[model]; ok {
		return canonical
	}
	return model
}

// DetectProvider reports which provider owns the given model name. The name
// is normalized and lowercased first. Names matching neither keyword set
// route to ProviderOpenAI: an unrecognized model is dispatched rather than
// rejected here, and the provider decides whether it exists.
func DetectProvider(model string) Provider {
	name := strings.ToLower(Normalize(model))
	for _, kw := range anthropicKeywords {
		if strings.Contains(name, kw) {
			return ProviderAnthropic
		}
	}
	for _, kw := range openaiKeywords {
		if strings.Contains(name, kw) {
			return ProviderOpenAI
		}
	}
	return ProviderOpenAI
}

// ModelInfo is one entry of the static model catalog used by listing modes.
type ModelInfo struct {
	Alias       string
	Canonical   string
	Provider    Provider
	Description string
}

// Models returns the static model catalog, Anthropic entries first.
// The slice is freshly allocated on each call; callers may modify it.
func Models() []ModelInfo {
	return []ModelInfo{
		{Alias: "claude-opus-4-1", Canonical: "claude-opus-4-1-20250805", Provider: ProviderAnthropic, Description: "Claude Opus 4.1, most powerful"},
		{Alias: "claude-sonnet-4", Canonical: "claude-sonnet-4-20250514", Provider: ProviderAnthropic, Description: "Claude Sonnet 4, balanced"},
		{Alias: "claude-haiku-3-5", Canonical: "claude-3-5-haiku-20241022", Provider: ProviderAnthropic, Description: "Claude Haiku 3.5, fast and efficient"},
		{Alias: "claude-sonnet-3-5", Canonical: "claude-3-5-sonnet-20241022", Provider: ProviderAnthropic, Description: "previous Sonnet generation"},
		{Alias: "gpt5", Canonical: "gpt-5", Provider: ProviderOpenAI, Description: "GPT-5, most advanced"},
		{Alias: "gpt5-mini", Canonical: "gpt-5-mini", Provider: ProviderOpenAI, Description: "GPT-5 Mini, lighter and faster (default)"},
		{Alias: "gpt5-nano", Canonical: "gpt-5-nano", Provider: ProviderOpenAI, Description: "GPT-5 Nano, ultra light"},
		{Alias: "gpt4o", Canonical: "gpt-4o", Provider: ProviderOpenAI, Description: "GPT-4 optimized"},
		{Alias: "gpt4o-mini", Canonical: "gpt-4o-mini", Provider: ProviderOpenAI, Description: "GPT-4 optimized mini"},
		{Alias: "o1", Canonical: "o1", Provider: ProviderOpenAI, Description: "reasoning model"},
		{Alias: "o1-mini", Canonical: "o1-mini", Provider: ProviderOpenAI, Description: "smaller reasoning model"},
	}
}
