// Package analyzer implements the heuristic static-analysis engine behind
// critique's reviews.
//
// Every checker is a pure function of (language, code): a bracket-balance
// scan with an explicit stack, per-line quote and statement-terminator
// heuristics, a coarse loop/allocation complexity estimate, and a line
// rewriter that patches superficial punctuation. Review composes them into a
// single immutable Result.
//
// The checkers are best-effort pattern scanners, not parsers. They have no
// awareness of string or comment context, so a bracket inside a string
// literal is scanned like any other bracket. That is a documented property
// of the engine, not a defect.
package analyzer
