package analyzer

import (
	"fmt"
	"strings"
)

// CheckQuotes flags lines whose double-quote count is odd, indicating a
// probable unterminated string literal. Escaped quotes are counted as
// literal quote characters and multi-line strings are not tracked, so the
// check can produce false positives.
func CheckQuotes(code string) []string {
	var issues []string
	for i, line := range strings.Split(code, "\n") {
		if strings.Count(line, `"`)%2 != 0 {
			issues = append(issues, fmt.Sprintf(
				"line %d: string literal appears to be unterminated (odd number of quotes)", i+1))
		}
	}
	return issues
}
