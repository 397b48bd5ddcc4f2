package analyzer

import "strings"

// debugCalls are call names whose presence usually means leftover debug
// output.
var debugCalls = []string{
	"console.log",
	"print(",
	"System.out.println",
	"fmt.Println",
	"cout <<",
	"debugger",
}

// genericImprovements is the fixed list of best-practice suggestions
// attached to every review.
var genericImprovements = []string{
	"Add comments to explain non-obvious logic.",
	"Use descriptive variable and function names.",
	"Handle error and edge cases explicitly.",
	"Add unit tests covering the main code paths.",
}

const pythonImprovement = "Add type hints and docstrings to function definitions."

// Review runs every checker against the snippet and composes one Result.
// Issue lists are concatenated in a fixed order: terminator, quote, bracket,
// then single free-text diagnostics for debug output and unresolved
// TODO/FIXME markers. The issue list is never empty; when nothing fired it
// holds exactly the no-issues placeholder.
func Review(lang Language, code string) *Result {
	var issues []string
	issues = append(issues, CheckTerminators(lang, code)...)
	issues = append(issues, CheckQuotes(code)...)
	issues = append(issues, CheckBrackets(code)...)

	for _, call := range debugCalls {
		if strings.Contains(code, call) {
			issues = append(issues, "debug output detected; remove logging statements before shipping")
			break
		}
	}

	lower := strings.ToLower(code)
	if strings.Contains(lower, "todo") || strings.Contains(lower, "fixme") {
		issues = append(issues, "unresolved TODO/FIXME marker found")
	}

	if len(issues) == 0 {
		issues = []string{NoIssuesMessage}
	}

	improvements := make([]string, 0, len(genericImprovements)+1)
	improvements = append(improvements, genericImprovements...)
	if lang == LangPython {
		improvements = append(improvements, pythonImprovement)
	}

	return &Result{
		PotentialIssues: StringList{Items: issues},
		Improvements:    StringList{Items: improvements},
		Complexity:      EstimateComplexity(code),
		SuggestedFix:    SuggestFix(lang, code),
	}
}
