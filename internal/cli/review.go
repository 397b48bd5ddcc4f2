package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/critique-dev/critique/internal/analyzer"
	"github.com/critique-dev/critique/internal/config"
	"github.com/critique-dev/critique/internal/output"
	"github.com/critique-dev/critique/internal/providers"
	"github.com/critique-dev/critique/internal/review"
	"github.com/spf13/cobra"
)

var (
	flagLang     string
	flagProvider string
	flagModel    string
	flagFormat   string
	flagOut      string
	flagNoRedact bool
	flagStrict   bool
)

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagProvider != "" {
		m["provider"] = flagProvider
	}
	if flagModel != "" {
		m["model"] = flagModel
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	return m
}

var reviewCmd = &cobra.Command{
	Use:   "review [file]",
	Short: "Review a code snippet from a file or stdin",
	Long: `Review a code snippet and print potential issues, improvement
suggestions, a complexity estimate, and a suggested fix.

The snippet is read from the named file, or from stdin when no file is
given. The language is taken from --lang, falling back to the file
extension.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReview,
}

func runReview(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(buildOverrides())
	if err != nil {
		return err
	}

	code, lang, err := readSnippet(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitUsageError
		return nil
	}

	if flagNoRedact {
		cfg.Privacy.RedactSecrets = false
		fmt.Fprintln(os.Stderr, "WARNING: secret redaction is disabled")
	}

	rev, err := review.Run(context.Background(), analyzer.Request{
		Language: lang,
		Code:     code,
	}, cfg)
	if err != nil {
		if providers.IsAuthError(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitAuthError
			return nil
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return nil
	}

	if err := output.WriteReview(rev, cfg.Format, flagOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
		return nil
	}

	if flagStrict && !rev.Clean() {
		exitCode = ExitIssues
	}
	return nil
}

// readSnippet loads the code to review and resolves its language from the
// --lang flag or the file extension.
func readSnippet(args []string) (code, lang string, err error) {
	lang = flagLang

	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		if lang == "" {
			return "", "", fmt.Errorf("--lang is required when reading from stdin")
		}
		return string(data), lang, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	if lang == "" {
		detected := analyzer.DetectLanguage(args[0])
		if detected == "" {
			return "", "", fmt.Errorf("cannot detect language of %s; pass --lang", args[0])
		}
		lang = string(detected)
	}
	return string(data), lang, nil
}

func init() {
	reviewCmd.Flags().StringVar(&flagLang, "lang", "", "Snippet language (cpp, java, python, javascript, typescript, go)")
	reviewCmd.Flags().StringVar(&flagProvider, "provider", "", "Review engine (heuristic, anthropic, openai, ollama)")
	reviewCmd.Flags().StringVar(&flagModel, "model", "", "Model name for LLM providers")
	reviewCmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json, markdown)")
	reviewCmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	reviewCmd.Flags().BoolVar(&flagNoRedact, "no-redact", false, "Disable secret redaction (use with caution)")
	reviewCmd.Flags().BoolVar(&flagStrict, "strict", false, "Exit with code 1 when issues are found")
}
