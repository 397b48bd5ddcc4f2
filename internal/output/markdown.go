package output

import (
	"fmt"
	"io"

	"github.com/critique-dev/critique/internal/analyzer"
	"github.com/critique-dev/critique/internal/review"
)

// MarkdownWriter outputs a comment-friendly markdown review.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, rev *review.Review) error {
	name := analyzer.Language(rev.Language).DisplayName()
	fmt.Fprintf(w, "## Critique Code Review — %s\n\n", name)

	if rev.Clean() {
		fmt.Fprintln(w, "No issues found. :white_check_mark:")
		fmt.Fprintln(w)
	} else {
		fmt.Fprintf(w, "### Potential issues\n\n")
		for _, issue := range rev.PotentialIssues.Items {
			fmt.Fprintf(w, "- :warning: %s\n", issue)
		}
		fmt.Fprintln(w)
	}

	if len(rev.Improvements.Items) > 0 {
		fmt.Fprintf(w, "### Improvements\n\n")
		for _, imp := range rev.Improvements.Items {
			fmt.Fprintf(w, "- %s\n", imp)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "### Complexity\n\n")
	fmt.Fprintf(w, "| Time | Space |\n")
	fmt.Fprintf(w, "|------|-------|\n")
	fmt.Fprintf(w, "| %s | %s |\n\n", rev.Complexity.Time, rev.Complexity.Space)
	if rev.Complexity.Notes != "" {
		fmt.Fprintf(w, "> %s\n\n", rev.Complexity.Notes)
	}

	if !rev.Clean() && rev.SuggestedFix != "" {
		fmt.Fprintf(w, "### Suggested fix\n\n")
		fmt.Fprintf(w, "```%s\n%s\n```\n\n", rev.Language, rev.SuggestedFix)
	}

	fmt.Fprintf(w, "*Reviewed by %s in %dms*\n", rev.Engine, rev.ElapsedMs)

	return nil
}
