package analyzer

import "fmt"

// openerFor maps each closing symbol to its expected opener.
var openerFor = map[rune]rune{
	')': '(',
	'}': '{',
	']': '[',
}

func isOpener(r rune) bool {
	return r == '(' || r == '{' || r == '['
}

// CheckBrackets scans code for mismatched or unclosed grouping symbols.
// The scan is character-level: brackets inside string or comment literals
// are treated like code brackets. Reported indexes count characters, not
// bytes.
func CheckBrackets(code string) []string {
	var issues []string
	var stack []rune

	pos := -1
	for _, r := range code {
		pos++
		if isOpener(r) {
			stack = append(stack, r)
			continue
		}
		want, ok := openerFor[r]
		if !ok {
			continue
		}
		if len(stack) == 0 {
			issues = append(issues, fmt.Sprintf(
				"unexpected %q at index %d: no matching opening bracket", r, pos))
			continue
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top != want {
			issues = append(issues, fmt.Sprintf(
				"unexpected %q at index %d: expected a closer for %q", r, pos, top))
		}
	}

	if len(stack) > 0 {
		issues = append(issues, fmt.Sprintf(
			"%d opening bracket(s) are never closed", len(stack)))
	}

	return issues
}
