package review

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/critique-dev/critique/internal/analyzer"
	"github.com/critique-dev/critique/internal/cache"
	"github.com/critique-dev/critique/internal/config"
	"github.com/critique-dev/critique/internal/providers"
	"github.com/critique-dev/critique/internal/redact"
)

// Run executes a review of the given snippet. The configured provider
// decides the path: the "heuristic" pseudo-provider (or an empty provider)
// runs the pattern engine directly, anything else calls out to an LLM and
// falls back to the pattern engine when the provider fails.
func Run(ctx context.Context, req analyzer.Request, cfg config.Config) (*Review, error) {
	start := time.Now()

	if strings.TrimSpace(req.Code) == "" {
		return nil, fmt.Errorf("code is empty")
	}
	if len(req.Code) < cfg.MinCodeLen {
		return nil, fmt.Errorf("code is shorter than the minimum of %d bytes", cfg.MinCodeLen)
	}

	lang := analyzer.Normalize(req.Language)

	if cfg.Provider == "" || cfg.Provider == EngineHeuristic || cfg.Provider == "none" {
		return heuristicReview(lang, req.Code, start), nil
	}

	// Redact secrets from the snippet before it leaves the machine. The
	// heuristic path above works on the original text and never needs this.
	code := req.Code
	if cfg.Privacy.RedactSecrets {
		code = redact.Secrets(code)
	}

	result, engine, err := providerReview(ctx, lang, code, cfg)
	if err != nil {
		log.Printf("provider review failed, falling back to heuristics: %v", err)
		return heuristicReview(lang, req.Code, start), nil
	}

	return &Review{
		Result:    *result,
		Language:  string(lang),
		Engine:    engine,
		Model:     cfg.Model,
		ElapsedMs: time.Since(start).Milliseconds(),
	}, nil
}

func heuristicReview(lang analyzer.Language, code string, start time.Time) *Review {
	res := analyzer.Review(lang, code)
	return &Review{
		Result:    *res,
		Language:  string(lang),
		Engine:    EngineHeuristic,
		ElapsedMs: time.Since(start).Milliseconds(),
	}
}

func providerReview(ctx context.Context, lang analyzer.Language, code string, cfg config.Config) (*analyzer.Result, string, error) {
	provider, err := providers.New(cfg.Provider, cfg.Model)
	if err != nil {
		return nil, "", fmt.Errorf("creating provider: %w", err)
	}

	c, err := cache.New(cfg.Cache.Enabled, cfg.Cache.Dir, cfg.Cache.TTLSeconds)
	if err != nil {
		return nil, "", fmt.Errorf("opening cache: %w", err)
	}

	key := cache.Key{Provider: cfg.Provider, Model: cfg.Model, Language: string(lang), Code: code}
	if result, ok := c.Get(key); ok {
		return result, provider.Name(), nil
	}

	out, err := provider.Review(ctx, providers.Snippet{Language: lang, Code: code})
	if err != nil {
		return nil, "", fmt.Errorf("provider review: %w", err)
	}

	result, err := parseResult(out.Content, code)
	if err != nil {
		// One repair pass: hand the malformed response back to the model.
		out2, err2 := provider.Repair(ctx, out.Content, err.Error())
		if err2 != nil {
			return nil, "", fmt.Errorf("repair pass failed: %w (original error: %w)", err2, err)
		}
		result, err = parseResult(out2.Content, code)
		if err != nil {
			return nil, "", fmt.Errorf("response validation failed after repair: %w", err)
		}
	}

	if err := c.Put(key, result); err != nil {
		log.Printf("caching review: %v", err)
	}

	return result, provider.Name(), nil
}

// parseResult decodes an LLM response into a result, tolerating markdown
// code fences around the JSON object. Missing fields are filled with the
// same defaults the pattern engine uses.
func parseResult(content, code string) (*analyzer.Result, error) {
	content = strings.TrimSpace(content)

	// Strip markdown code fences if present
	if strings.HasPrefix(content, "```") {
		lines := strings.Split(content, "\n")
		if len(lines) >= 2 {
			// Remove first line (```json) and last line (```)
			start := 1
			end := len(lines)
			if strings.TrimSpace(lines[end-1]) == "```" {
				end = end - 1
			}
			content = strings.Join(lines[start:end], "\n")
		}
	}

	var result analyzer.Result
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("invalid JSON object: %w", err)
	}

	if len(result.PotentialIssues.Items) == 0 {
		result.PotentialIssues.Items = []string{analyzer.NoIssuesMessage}
	}
	if result.Improvements.Items == nil {
		result.Improvements.Items = []string{}
	}
	if result.SuggestedFix == "" {
		result.SuggestedFix = code
	}

	return &result, nil
}
