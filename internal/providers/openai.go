package providers

import (
	"fmt"
	"net/http"
	"os"
	"time"
)

const defaultOpenAIURL = "https://api.openai.com/v1/chat/completions"

// OpenAI reviews snippets through the OpenAI chat completions API.
type OpenAI struct {
	chatClient
}

// NewOpenAI builds the OpenAI backend. CRITIQUE_OPENAI_BASE_URL points it
// at a compatible gateway instead of the public endpoint.
func NewOpenAI(model string) (*OpenAI, error) {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
	}
	url := os.Getenv("CRITIQUE_OPENAI_BASE_URL")
	if url == "" {
		url = defaultOpenAIURL
	}
	return &OpenAI{chatClient{
		name:   "openai",
		model:  model,
		url:    url,
		apiKey: key,
		httpc:  &http.Client{Timeout: 120 * time.Second},
	}}, nil
}
