package analyzer

import "strings"

// SuggestFix returns a copy of code with superficial punctuation repairs:
// a closing quote appended to lines with an odd quote count, then a
// terminator appended to lines the shared classifier marks as statements.
// Quote repair runs first and terminator repair sees the repaired line.
// Languages outside the terminator-using set are returned unchanged.
//
// The result is a textual patch, not a semantic correction, and applying
// SuggestFix to its own output is a no-op.
func SuggestFix(lang Language, code string) string {
	if !lang.UsesTerminator() {
		return code
	}

	lines := strings.Split(code, "\n")
	for i, line := range lines {
		if strings.Count(line, `"`)%2 != 0 {
			line += `"`
		}
		trimmed := strings.TrimSpace(line)
		if expectsTerminator(trimmed) && !strings.HasSuffix(trimmed, string(terminator)) {
			line += string(terminator)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
