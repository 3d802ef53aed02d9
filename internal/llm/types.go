package llm

type LLMRequest struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// Usage is the token count reported by the provider. Zero when the provider
// does not report it.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

type LLMResponse struct {
	Content    string
	StopReason string
	Model      string
	Usage      Usage
}
