package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// chatClient speaks the OpenAI-compatible chat completions wire format.
// The OpenAI and Ollama backends are both thin constructors over it.
type chatClient struct {
	name   string
	model  string
	url    string
	apiKey string
	httpc  *http.Client
}

func (c *chatClient) Name() string { return c.name }

func (c *chatClient) Review(ctx context.Context, snip Snippet) (ReviewOutput, error) {
	return c.send(ctx, userMessage(snip))
}

func (c *chatClient) Repair(ctx context.Context, previous, reason string) (ReviewOutput, error) {
	return c.send(ctx, repairMessage(previous, reason))
}

func (c *chatClient) send(ctx context.Context, user string) (ReviewOutput, error) {
	payload, err := json.Marshal(chatRequest{
		Model:     c.model,
		MaxTokens: maxReviewTokens,
		Messages: []chatMessage{
			{Role: "system", Content: reviewSystemPrompt},
			{Role: "user", Content: user},
		},
	})
	if err != nil {
		return ReviewOutput{}, fmt.Errorf("encoding chat request: %w", err)
	}

	var out ReviewOutput
	err = retryWithBackoff(ctx, 3, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("building chat request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}

		resp, err := c.httpc.Do(req)
		if err != nil {
			return fmt.Errorf("calling %s: %w", c.name, err)
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading %s response: %w", c.name, err)
		}
		if err := statusToError(resp.StatusCode, raw); err != nil {
			return err
		}

		var reply chatReply
		if err := json.Unmarshal(raw, &reply); err != nil {
			return fmt.Errorf("decoding %s response: %w", c.name, err)
		}
		if len(reply.Choices) == 0 || reply.Choices[0].Message.Content == "" {
			return fmt.Errorf("%s returned no completion text", c.name)
		}

		out = ReviewOutput{
			Content:    reply.Choices[0].Message.Content,
			TokensUsed: reply.Usage.TotalTokens,
		}
		return nil
	})

	return out, err
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatReply struct {
	Choices []chatChoice `json:"choices"`
	Usage   chatUsage    `json:"usage"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

type chatUsage struct {
	TotalTokens int `json:"total_tokens"`
}
