// Package cache provides a file-based cache for LLM review results.
//
// Entries are keyed by a SHA-256 digest of the provider name, model,
// language, and redacted snippet. Each entry file stores the parsed
// review (not the raw model response) plus the key metadata and a
// creation timestamp; the TTL is applied on read, and stale or corrupt
// entries are removed on the way out.
//
// The default cache directory is a "critique" folder under the per-user
// cache directory. Everything stored here has already been through
// secret redaction. Heuristic reviews are never cached.
package cache
