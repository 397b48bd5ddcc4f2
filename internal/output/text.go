package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/critique-dev/critique/internal/analyzer"
	"github.com/critique-dev/critique/internal/review"
)

const dividerWidth = 60

// TextWriter outputs a human-readable text review.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, rev *review.Review) error {
	var b strings.Builder
	divider := strings.Repeat("─", dividerWidth)

	name := analyzer.Language(rev.Language).DisplayName()
	fmt.Fprintf(&b, "Critique Code Review — %s\n", name)
	b.WriteString("Engine: " + rev.Engine)
	if rev.Model != "" {
		fmt.Fprintf(&b, " (%s)", rev.Model)
	}
	b.WriteString("\n" + divider + "\n")

	b.WriteString("\nPotential issues:\n")
	if rev.Clean() {
		fmt.Fprintf(&b, "  %s\n", analyzer.NoIssuesMessage)
	} else {
		for _, issue := range rev.PotentialIssues.Items {
			fmt.Fprintf(&b, "  [!] %s\n", issue)
		}
	}

	if len(rev.Improvements.Items) > 0 {
		b.WriteString("\nImprovements:\n")
		for _, imp := range rev.Improvements.Items {
			fmt.Fprintf(&b, "  - %s\n", imp)
		}
	}

	b.WriteString("\nComplexity:\n")
	fmt.Fprintf(&b, "  Time:  %s\n", rev.Complexity.Time)
	fmt.Fprintf(&b, "  Space: %s\n", rev.Complexity.Space)
	for _, line := range wrapText(rev.Complexity.Notes, 70) {
		fmt.Fprintf(&b, "  %s\n", line)
	}

	if !rev.Clean() && rev.SuggestedFix != "" {
		b.WriteString("\nSuggested fix:\n")
		for _, line := range strings.Split(rev.SuggestedFix, "\n") {
			fmt.Fprintf(&b, "    %s\n", line)
		}
	}

	fmt.Fprintf(&b, "\n%s\n", divider)
	fmt.Fprintf(&b, "Completed in %dms\n", rev.ElapsedMs)

	_, err := io.WriteString(w, b.String())
	return err
}

// wrapText breaks text into lines at word boundaries so no line
// exceeds width, except when a single word is longer than width.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}
	lines := []string{words[0]}
	for _, word := range words[1:] {
		last := lines[len(lines)-1]
		if len(last)+1+len(word) > width {
			lines = append(lines, word)
			continue
		}
		lines[len(lines)-1] = last + " " + word
	}
	return lines
}
