package analyzer

import (
	"fmt"
	"strings"
)

// blockKeywords open a conditional, loop, class, or similar construct.
// Lines led by one of these never expect a statement terminator.
var blockKeywords = []string{
	"if", "else", "for", "while", "switch", "do",
	"try", "catch", "finally", "class", "function", "def",
	"case", "default",
}

// terminatorTriggers are substrings that mark a line as an ordinary
// statement: assignments, returns, and a fixed set of I/O and print/log
// call signatures.
var terminatorTriggers = []string{
	"=",
	"return",
	"console.log",
	"System.out.println",
	"System.out.print",
	"printf",
	"scanf",
	"cout",
	"cin",
	"print(",
	"println(",
}

// opensBlock reports whether the trimmed line starts a block construct.
func opensBlock(trimmed string) bool {
	for _, kw := range blockKeywords {
		if trimmed == kw ||
			strings.HasPrefix(trimmed, kw+" ") ||
			strings.HasPrefix(trimmed, kw+"(") ||
			strings.HasPrefix(trimmed, kw+"{") {
			return true
		}
	}
	return false
}

// expectsTerminator is the shared line classifier used by both the checker
// and the fix generator. It operates on the trimmed line: blank lines,
// line comments, lines ending in a block symbol or colon, and block-opening
// lines are out; of the rest, a line expects a terminator when it contains
// any trigger substring. Purely textual, with no string or comment context.
func expectsTerminator(trimmed string) bool {
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "#") {
		return false
	}
	switch trimmed[len(trimmed)-1] {
	case '{', '}', ':':
		return false
	}
	if opensBlock(trimmed) {
		return false
	}
	for _, trigger := range terminatorTriggers {
		if strings.Contains(trimmed, trigger) {
			return true
		}
	}
	return false
}

// CheckTerminators flags lines that look like statements but do not end
// with the terminator character. It only produces diagnostics for
// terminator-using languages; all other languages yield nil.
func CheckTerminators(lang Language, code string) []string {
	if !lang.UsesTerminator() {
		return nil
	}
	var issues []string
	for i, line := range strings.Split(code, "\n") {
		trimmed := strings.TrimSpace(line)
		if expectsTerminator(trimmed) && !strings.HasSuffix(trimmed, string(terminator)) {
			issues = append(issues, fmt.Sprintf("line %d: possible missing semicolon", i+1))
		}
	}
	return issues
}
