package analyzer

// Request is a single snippet review request.
type Request struct {
	Language string `json:"language"`
	Code     string `json:"code"`
}

// StringList wraps an ordered list of human-readable strings. The wrapper
// exists so the wire shape exposes the list under an "items" key.
type StringList struct {
	Items []string `json:"items"`
}

// Complexity is a coarse time/space classification of a snippet.
type Complexity struct {
	Time  string `json:"time"`
	Space string `json:"space"`
	Notes string `json:"notes"`
}

// Result is the structured outcome of one review. It is created fresh per
// request and never mutated after being returned.
type Result struct {
	PotentialIssues StringList `json:"potentialIssues"`
	Improvements    StringList `json:"improvements"`
	Complexity      Complexity `json:"complexity"`
	SuggestedFix    string     `json:"suggestedFix"`
}

// NoIssuesMessage is substituted when no checker produced a diagnostic, so
// PotentialIssues is never empty.
const NoIssuesMessage = "No obvious issues detected."

// Clean reports whether the result contains no real diagnostics, i.e. the
// issue list is exactly the no-issues placeholder.
func (r *Result) Clean() bool {
	return len(r.PotentialIssues.Items) == 1 && r.PotentialIssues.Items[0] == NoIssuesMessage
}
