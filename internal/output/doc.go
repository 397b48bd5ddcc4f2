// Package output formats reviews for display or machine consumption.
//
// Three formats are supported:
//   - text: human-readable terminal output (default)
//   - json: full structured JSON review
//   - markdown: comment-friendly markdown with a suggested-fix code fence
//
// Use [GetWriter] to obtain a [Writer] for a given format string, then call
// [Writer.Write] with an [io.Writer] and a [*review.Review]. [WriteReview]
// is a convenience helper that handles destination selection.
package output
