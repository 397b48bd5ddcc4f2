package providers

import (
	"context"
	"fmt"

	"github.com/critique-dev/critique/internal/analyzer"
)

// maxReviewTokens caps the completion length of a single review.
const maxReviewTokens = 8192

// Snippet is the unit of review: a block of code and the language it is
// written in. The code must already be redacted.
type Snippet struct {
	Language analyzer.Language
	Code     string
}

// ReviewOutput carries the raw model response for a snippet.
type ReviewOutput struct {
	Content    string
	TokensUsed int
}

// Reviewer is implemented by each model backend. Repair re-prompts the
// model with a previous response that did not parse.
type Reviewer interface {
	Review(ctx context.Context, snip Snippet) (ReviewOutput, error)
	Repair(ctx context.Context, previous, reason string) (ReviewOutput, error)
	Name() string
}

// New creates a backend by name. The "heuristic" pseudo-provider is
// handled by the review package and never reaches this factory.
func New(provider, model string) (Reviewer, error) {
	switch provider {
	case "anthropic":
		return NewAnthropic(model)
	case "openai":
		return NewOpenAI(model)
	case "ollama", "lmstudio":
		return NewOllama(model)
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}
