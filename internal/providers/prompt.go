package providers

import (
	"fmt"
	"strings"
)

// reviewSystemPrompt pins the model to the same four-field object the
// pattern engine produces, so the rest of the pipeline can treat both
// review paths alike.
const reviewSystemPrompt = `You are a strict, expert code reviewer. Your job is to review a single code snippet and produce a structured review in JSON format.

Rules:
1. Focus on bugs, unterminated constructs, security issues, and correctness. Mention style only when it significantly hurts readability.
2. Be concise and actionable. Every issue must be a single human-readable sentence.
3. Estimate time and space complexity from the snippet's structure. Use big-O labels such as "O(1)", "O(n)", "O(n^2)".
4. The suggested fix must be the complete rewritten snippet, not a fragment.

You MUST respond with ONLY a JSON object. No markdown, no explanation, no preamble. The object must have this exact structure:
{
  "potentialIssues": {"items": ["issue one", "issue two"]},
  "improvements": {"items": ["improvement one"]},
  "complexity": {"time": "O(n)", "space": "O(1)", "notes": "short explanation"},
  "suggestedFix": "the complete corrected snippet"
}

If there are no issues, use an empty "items" array for "potentialIssues" and return the snippet unchanged as "suggestedFix".`

// userMessage frames a snippet for review.
func userMessage(snip Snippet) string {
	var b strings.Builder

	b.WriteString("Review the following code snippet.\n\n")
	fmt.Fprintf(&b, "Language: %s\n", snip.Language.DisplayName())

	b.WriteString("\n--- BEGIN CODE ---\n")
	b.WriteString(snip.Code)
	b.WriteString("\n--- END CODE ---\n")

	return b.String()
}

// repairMessage asks the model to reissue a malformed previous response.
func repairMessage(previous, reason string) string {
	return fmt.Sprintf(
		"Your previous response was not valid JSON. The error was: %s\n\nPlease fix it and respond with ONLY the valid JSON object.\n\nYour previous response was:\n%s",
		reason, previous,
	)
}
