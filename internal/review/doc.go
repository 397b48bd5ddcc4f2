// Package review orchestrates a single snippet review.
//
// Run picks the engine from configuration: the "heuristic" pseudo-provider
// runs the pattern checkers in internal/analyzer directly, any real provider
// name sends the snippet to that LLM and parses the JSON object it returns.
// Parsed provider reviews are cached keyed by provider, model, language, and the
// redacted snippet; a provider or parse failure falls back to the heuristic
// engine so the caller always gets a review.
//
// Snippets are scrubbed with internal/redact before leaving the machine.
// The heuristic path never redacts and never touches the cache since it is
// local and deterministic.
package review
