package analyzer

import (
	"regexp"
	"strings"
)

const (
	complexityConstant  = "O(1)"
	complexityLinear    = "O(n)"
	complexityQuadratic = "O(n^2)"
)

const complexityNotes = "Estimated from loop and allocation patterns in the source text; " +
	"this is a heuristic, not a formal asymptotic analysis."

// loopPattern matches loop constructs: the for/while keywords plus common
// iteration call patterns.
var loopPattern = regexp.MustCompile(`\bfor\b|\bwhile\b|\.forEach\(|\.map\(`)

// allocationMarkers are substrings that suggest dynamic allocation or
// collection construction.
var allocationMarkers = []string{
	"new ",
	"make(",
	"append(",
	"malloc",
	"ArrayList",
	"vector<",
	"push_back",
	".push(",
	"list(",
	"dict(",
}

// EstimateComplexity produces a coarse time/space classification. One loop
// pattern upgrades time to linear; a second occurrence later in the text
// upgrades to quadratic. Any allocation marker upgrades space to linear.
// There is no loop-bound or call-graph reasoning; the estimate can be wrong
// in both directions.
func EstimateComplexity(code string) Complexity {
	c := Complexity{
		Time:  complexityConstant,
		Space: complexityConstant,
		Notes: complexityNotes,
	}

	switch loops := loopPattern.FindAllStringIndex(code, 2); len(loops) {
	case 1:
		c.Time = complexityLinear
	case 2:
		c.Time = complexityQuadratic
	}

	for _, marker := range allocationMarkers {
		if strings.Contains(code, marker) {
			c.Space = complexityLinear
			break
		}
	}

	return c
}
