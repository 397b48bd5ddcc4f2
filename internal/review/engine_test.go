package review

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/critique-dev/critique/internal/analyzer"
	"github.com/critique-dev/critique/internal/config"
)

func heuristicConfig() config.Config {
	cfg := config.Default()
	cfg.Provider = "heuristic"
	cfg.Cache.Enabled = false
	return cfg
}

func TestRun_HeuristicCleanCode(t *testing.T) {
	rev, err := Run(context.Background(), analyzer.Request{
		Language: "java",
		Code:     "int x = 5;",
	}, heuristicConfig())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if rev.Engine != EngineHeuristic {
		t.Errorf("Engine = %q, want %q", rev.Engine, EngineHeuristic)
	}
	if rev.Language != "java" {
		t.Errorf("Language = %q, want %q", rev.Language, "java")
	}
	if !rev.Clean() {
		t.Errorf("expected placeholder issues, got %v", rev.PotentialIssues.Items)
	}
	if rev.SuggestedFix != "int x = 5;" {
		t.Errorf("SuggestedFix = %q", rev.SuggestedFix)
	}
}

func TestRun_HeuristicFindsIssues(t *testing.T) {
	rev, err := Run(context.Background(), analyzer.Request{
		Language: "JavaScript",
		Code:     "x = 5",
	}, heuristicConfig())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if rev.Clean() {
		t.Fatal("expected a diagnostic for the missing semicolon")
	}
	if rev.SuggestedFix != "x = 5;" {
		t.Errorf("SuggestedFix = %q, want %q", rev.SuggestedFix, "x = 5;")
	}
	// Language is normalized on the way through.
	if rev.Language != "javascript" {
		t.Errorf("Language = %q, want %q", rev.Language, "javascript")
	}
}

func TestRun_EmptyProviderIsHeuristic(t *testing.T) {
	cfg := heuristicConfig()
	cfg.Provider = ""

	rev, err := Run(context.Background(), analyzer.Request{Language: "go", Code: "x := 5"}, cfg)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if rev.Engine != EngineHeuristic {
		t.Errorf("Engine = %q, want %q", rev.Engine, EngineHeuristic)
	}
}

func TestRun_RejectsBlankCode(t *testing.T) {
	for _, code := range []string{"", "   ", "\n\t\n"} {
		if _, err := Run(context.Background(), analyzer.Request{Language: "go", Code: code}, heuristicConfig()); err == nil {
			t.Errorf("Run(%q) expected error", code)
		}
	}
}

func TestRun_RejectsCodeBelowMinimum(t *testing.T) {
	cfg := heuristicConfig()
	cfg.MinCodeLen = 10

	if _, err := Run(context.Background(), analyzer.Request{Language: "go", Code: "x := 5"}, cfg); err == nil {
		t.Fatal("expected error for code below the configured minimum")
	}
}

func TestRun_FallsBackWhenProviderUnavailable(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	cfg := heuristicConfig()
	cfg.Provider = "openai"
	cfg.Model = "gpt-4o"

	rev, err := Run(context.Background(), analyzer.Request{Language: "java", Code: "x = 5"}, cfg)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if rev.Engine != EngineHeuristic {
		t.Errorf("Engine = %q, want fallback to %q", rev.Engine, EngineHeuristic)
	}
	if rev.SuggestedFix != "x = 5;" {
		t.Errorf("SuggestedFix = %q", rev.SuggestedFix)
	}
}

// chatResponse builds an OpenAI-compatible chat completion body whose
// assistant message is the given content.
func chatResponse(content string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
		"usage": map[string]any{"total_tokens": 42},
	}
}

func TestRun_ProviderPath(t *testing.T) {
	reviewJSON := `{
		"potentialIssues": {"items": ["Variable x is never used."]},
		"improvements": {"items": ["Add a unit test."]},
		"complexity": {"time": "O(1)", "space": "O(1)", "notes": "straight-line code"},
		"suggestedFix": "int x = 5;"
	}`

	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(chatResponse(reviewJSON))
	}))
	defer server.Close()

	t.Setenv("OLLAMA_HOST", server.URL)
	t.Setenv("CRITIQUE_OLLAMA_API_KEY", "")

	cfg := config.Default()
	cfg.Provider = "ollama"
	cfg.Model = "llama3"
	cfg.Cache.Enabled = true
	cfg.Cache.Dir = t.TempDir()

	req := analyzer.Request{Language: "java", Code: "int x = 5;"}

	rev, err := Run(context.Background(), req, cfg)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if rev.Engine != "ollama" {
		t.Errorf("Engine = %q, want %q", rev.Engine, "ollama")
	}
	if rev.Model != "llama3" {
		t.Errorf("Model = %q, want %q", rev.Model, "llama3")
	}
	if len(rev.PotentialIssues.Items) != 1 || rev.PotentialIssues.Items[0] != "Variable x is never used." {
		t.Errorf("PotentialIssues = %v", rev.PotentialIssues.Items)
	}
	if rev.Complexity.Time != "O(1)" {
		t.Errorf("Complexity.Time = %q", rev.Complexity.Time)
	}

	// Second run with the same inputs is served from the cache and carries
	// the same parsed review.
	cached, err := Run(context.Background(), req, cfg)
	if err != nil {
		t.Fatalf("second Run error: %v", err)
	}
	if calls != 1 {
		t.Errorf("provider called %d times, want 1 (cache hit expected)", calls)
	}
	if cached.SuggestedFix != rev.SuggestedFix || len(cached.PotentialIssues.Items) != 1 {
		t.Errorf("cached review = %+v, want the first result", cached.Result)
	}
}

func TestRun_ProviderGarbageFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chatResponse("I cannot review this snippet."))
	}))
	defer server.Close()

	t.Setenv("OLLAMA_HOST", server.URL)
	t.Setenv("CRITIQUE_OLLAMA_API_KEY", "")

	cfg := config.Default()
	cfg.Provider = "ollama"
	cfg.Model = "llama3"
	cfg.Cache.Enabled = false

	rev, err := Run(context.Background(), analyzer.Request{Language: "java", Code: "x = 5"}, cfg)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if rev.Engine != EngineHeuristic {
		t.Errorf("Engine = %q, want fallback to %q", rev.Engine, EngineHeuristic)
	}
}

func TestParseResult_ValidObject(t *testing.T) {
	input := `{
		"potentialIssues": {"items": ["line 1: possible missing semicolon"]},
		"improvements": {"items": ["Use descriptive names."]},
		"complexity": {"time": "O(n)", "space": "O(1)", "notes": "single loop"},
		"suggestedFix": "x = 5;"
	}`

	result, err := parseResult(input, "x = 5")
	if err != nil {
		t.Fatalf("parseResult error: %v", err)
	}
	if len(result.PotentialIssues.Items) != 1 {
		t.Errorf("got %d issues, want 1", len(result.PotentialIssues.Items))
	}
	if result.Complexity.Time != "O(n)" {
		t.Errorf("Complexity.Time = %q", result.Complexity.Time)
	}
	if result.SuggestedFix != "x = 5;" {
		t.Errorf("SuggestedFix = %q", result.SuggestedFix)
	}
}

func TestParseResult_StripsCodeFences(t *testing.T) {
	input := "```json\n" + `{"potentialIssues":{"items":["a"]},"improvements":{"items":[]},"complexity":{"time":"O(1)","space":"O(1)","notes":"n"},"suggestedFix":"x"}` + "\n```"

	result, err := parseResult(input, "x")
	if err != nil {
		t.Fatalf("parseResult error: %v", err)
	}
	if len(result.PotentialIssues.Items) != 1 || result.PotentialIssues.Items[0] != "a" {
		t.Errorf("PotentialIssues = %v", result.PotentialIssues.Items)
	}
}

func TestParseResult_FillsDefaults(t *testing.T) {
	result, err := parseResult(`{"complexity":{"time":"O(1)","space":"O(1)","notes":"n"}}`, "original code")
	if err != nil {
		t.Fatalf("parseResult error: %v", err)
	}
	if len(result.PotentialIssues.Items) != 1 || result.PotentialIssues.Items[0] != analyzer.NoIssuesMessage {
		t.Errorf("PotentialIssues = %v, want the placeholder", result.PotentialIssues.Items)
	}
	if result.Improvements.Items == nil {
		t.Error("Improvements.Items should not be nil")
	}
	if result.SuggestedFix != "original code" {
		t.Errorf("SuggestedFix = %q, want the original snippet", result.SuggestedFix)
	}
}

func TestParseResult_InvalidJSON(t *testing.T) {
	for _, input := range []string{"", "not json", "[1,2,3", "```\nnope\n```"} {
		if _, err := parseResult(input, "x"); err == nil {
			t.Errorf("parseResult(%q) expected error", input)
		}
	}
}

func TestReview_JSONShape(t *testing.T) {
	rev, err := Run(context.Background(), analyzer.Request{Language: "python", Code: "print('hi')"}, heuristicConfig())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	data, err := json.Marshal(rev)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	for _, key := range []string{`"potentialIssues"`, `"improvements"`, `"complexity"`, `"suggestedFix"`, `"language"`, `"engine"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("marshaled review missing %s: %s", key, data)
		}
	}
}
