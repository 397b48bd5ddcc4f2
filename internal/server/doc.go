// Package server exposes the review engine over HTTP for browser use.
//
// The server serves an embedded single-page UI at / and a JSON API at
// POST /api/review that accepts {"language": ..., "code": ...} and responds
// with the review result object. GET /healthz reports liveness. Requests are
// validated before the engine runs: language and code must be non-blank,
// code must meet the configured minimum length, and payloads are capped at
// the configured byte limit. A recover middleware turns any handler panic
// into a plain 500 so malformed input can never crash the process.
package server
