package promptrun

// Provider identifies one of the two remote completion services a request can
// be routed to. The set is closed: every model name resolves to exactly one
// provider, with ProviderOpenAI as the fallback for unrecognized names.
type Provider string

// The two supported providers.
const (
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
)

// String implements fmt.Stringer.
func (p Provider) String() string { return string(p) }
