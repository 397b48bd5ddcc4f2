package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	anthropicAPIURL     = "https://api.anthropic.com/v1/messages"
	anthropicAPIVersion = "2023-06-01"
)

// Anthropic reviews snippets through the Anthropic messages API.
type Anthropic struct {
	apiKey string
	model  string
	httpc  *http.Client
}

// NewAnthropic builds the Anthropic backend from ANTHROPIC_API_KEY.
func NewAnthropic(model string) (*Anthropic, error) {
	key := os.Getenv("ANTHROPIC_API_KEY")
	if key == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable is not set")
	}
	return &Anthropic{
		apiKey: key,
		model:  model,
		httpc:  &http.Client{Timeout: 120 * time.Second},
	}, nil
}

func (a *Anthropic) Name() string { return "anthropic" }

func (a *Anthropic) Review(ctx context.Context, snip Snippet) (ReviewOutput, error) {
	return a.send(ctx, userMessage(snip))
}

func (a *Anthropic) Repair(ctx context.Context, previous, reason string) (ReviewOutput, error) {
	return a.send(ctx, repairMessage(previous, reason))
}

func (a *Anthropic) send(ctx context.Context, user string) (ReviewOutput, error) {
	payload, err := json.Marshal(messagesRequest{
		Model:     a.model,
		MaxTokens: maxReviewTokens,
		System:    reviewSystemPrompt,
		Messages:  []turn{{Role: "user", Content: user}},
	})
	if err != nil {
		return ReviewOutput{}, fmt.Errorf("encoding messages request: %w", err)
	}

	var out ReviewOutput
	err = retryWithBackoff(ctx, 3, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicAPIURL, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("building messages request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-api-key", a.apiKey)
		req.Header.Set("anthropic-version", anthropicAPIVersion)

		resp, err := a.httpc.Do(req)
		if err != nil {
			return fmt.Errorf("calling anthropic: %w", err)
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading anthropic response: %w", err)
		}
		if err := statusToError(resp.StatusCode, raw); err != nil {
			return err
		}

		var reply messagesReply
		if err := json.Unmarshal(raw, &reply); err != nil {
			return fmt.Errorf("decoding anthropic response: %w", err)
		}

		var content strings.Builder
		for _, block := range reply.Content {
			if block.Type == "text" {
				content.WriteString(block.Text)
			}
		}
		out = ReviewOutput{
			Content:    content.String(),
			TokensUsed: reply.Usage.InputTokens + reply.Usage.OutputTokens,
		}
		return nil
	})

	return out, err
}

type messagesRequest struct {
	Model     string `json:"model"`
	MaxTokens int    `json:"max_tokens"`
	System    string `json:"system,omitempty"`
	Messages  []turn `json:"messages"`
}

type turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesReply struct {
	Content []textBlock   `json:"content"`
	Usage   messagesUsage `json:"usage"`
}

type textBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type messagesUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}
