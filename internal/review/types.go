package review

import "github.com/critique-dev/critique/internal/analyzer"

// EngineHeuristic names the built-in pattern engine in Review.Engine.
const EngineHeuristic = "heuristic"

// Review is the outcome of a single snippet review. The embedded Result
// carries the four response fields; the remaining fields describe how the
// review was produced.
type Review struct {
	analyzer.Result
	Language  string `json:"language"`
	Engine    string `json:"engine"`
	Model     string `json:"model,omitempty"`
	ElapsedMs int64  `json:"elapsedMs"`
}
