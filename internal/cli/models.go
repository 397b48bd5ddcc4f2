package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/critique-dev/critique/internal/analyzer"
	"github.com/critique-dev/critique/internal/config"
	"github.com/critique-dev/critique/internal/providers"
	"github.com/spf13/cobra"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Provider and model management",
}

// modelCatalog lists models known to work well for snippet review, in the
// order they are displayed. It is informational only: any model name the
// provider accepts can be configured.
var modelCatalog = []struct {
	provider string
	models   []string
}{
	{"heuristic", []string{"(built-in pattern engine, no model)"}},
	{"anthropic", []string{"claude-sonnet-4-20250514", "claude-3-5-haiku-latest"}},
	{"openai", []string{"gpt-4o", "gpt-4o-mini", "o3-mini"}},
	{"ollama", []string{"llama3.3", "llama3.2", "codellama", "qwen2.5-coder", "deepseek-coder-v2"}},
}

var flagDoctorProvider string

func init() {
	doctor := &cobra.Command{
		Use:   "doctor",
		Short: "Validate provider credentials with a tiny round trip",
		RunE:  runModelsDoctor,
	}
	doctor.Flags().StringVar(&flagDoctorProvider, "provider", "", "Provider to check")

	modelsCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List known providers and models",
			Run:   runModelsList,
		},
		doctor,
	)
}

func runModelsList(cmd *cobra.Command, args []string) {
	for _, row := range modelCatalog {
		fmt.Fprintf(os.Stdout, "%-10s %s\n", row.provider, strings.Join(row.models, ", "))
	}
}

func runModelsDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(buildOverrides())
	if err != nil {
		return err
	}

	name := cfg.Provider
	if flagDoctorProvider != "" {
		name = flagDoctorProvider
	}
	if name == "" || name == "heuristic" || name == "none" {
		fmt.Fprintln(os.Stdout, "OK: the heuristic engine needs no credentials")
		return nil
	}

	fmt.Fprintf(os.Stdout, "Checking %s...\n", name)

	p, err := providers.New(name, cfg.Model)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
		exitCode = ExitAuthError
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ping := providers.Snippet{Language: analyzer.LangGo, Code: "x := 1"}
	if _, err := p.Review(ctx, ping); err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
		if providers.IsAuthError(err) {
			exitCode = ExitAuthError
		} else {
			exitCode = ExitRuntimeError
		}
		return nil
	}

	fmt.Fprintf(os.Stdout, "OK: %s is configured and responding\n", name)
	return nil
}
