package cli

import (
	"fmt"
	"os"

	"github.com/critique-dev/critique/internal/config"
	"github.com/critique-dev/critique/internal/server"
	"github.com/spf13/cobra"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the browser review UI",
	Long:  "Serve the single-page review UI and the JSON API on the configured address.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address (host:port)")
	serveCmd.Flags().StringVar(&flagProvider, "provider", "", "Review engine (heuristic, anthropic, openai, ollama)")
	serveCmd.Flags().StringVar(&flagModel, "model", "", "Model name for LLM providers")
}

func runServe(cmd *cobra.Command, args []string) error {
	overrides := buildOverrides()
	if flagAddr != "" {
		overrides["addr"] = flagAddr
	}
	cfg, err := config.Load(overrides)
	if err != nil {
		return err
	}

	srv, err := server.New(cfg)
	if err != nil {
		return err
	}
	if err := srv.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
	}
	return nil
}
