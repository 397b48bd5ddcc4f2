package cli

import (
	"fmt"
	"os"

	"github.com/critique-dev/critique/internal/analyzer"
	"github.com/spf13/cobra"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages",
	Run: func(cmd *cobra.Command, args []string) {
		for _, lang := range analyzer.Supported {
			note := ""
			if lang.UsesTerminator() {
				note = " (semicolon checks active)"
			}
			fmt.Fprintf(os.Stdout, "%-12s %s%s\n", lang, lang.DisplayName(), note)
		}
	},
}
