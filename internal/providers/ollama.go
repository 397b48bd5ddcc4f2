package providers

import (
	"net/http"
	"os"
	"strings"
	"time"
)

const defaultOllamaHost = "http://localhost:11434"

// Ollama reviews snippets through an Ollama or LM Studio server. Both
// expose the OpenAI-compatible chat completions wire format.
type Ollama struct {
	chatClient
}

// NewOllama builds the Ollama backend. OLLAMA_HOST selects the server;
// a key from CRITIQUE_OLLAMA_API_KEY is sent only when present, for
// servers such as LM Studio that require one.
func NewOllama(model string) (*Ollama, error) {
	host := os.Getenv("OLLAMA_HOST")
	if host == "" {
		host = defaultOllamaHost
	}
	return &Ollama{chatClient{
		name:   "ollama",
		model:  model,
		url:    chatCompletionsURL(host),
		apiKey: os.Getenv("CRITIQUE_OLLAMA_API_KEY"),
		httpc:  &http.Client{Timeout: 300 * time.Second},
	}}, nil
}

// chatCompletionsURL accepts a bare host, a /v1 base, or a full
// completions URL and returns the completions endpoint.
func chatCompletionsURL(host string) string {
	host = strings.TrimRight(host, "/")
	host = strings.TrimSuffix(host, "/v1/chat/completions")
	host = strings.TrimSuffix(host, "/v1")
	return host + "/v1/chat/completions"
}
