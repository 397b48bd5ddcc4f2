// Package redact removes secrets from pasted snippets before they are sent
// to any LLM provider.
//
// Detection uses regex heuristics covering common secret shapes: API keys,
// JWTs, private keys, AWS access key IDs and secret access keys, bearer
// tokens, and provider-specific tokens (Anthropic, OpenAI, GitHub, Slack).
// The heuristic review path never redacts; nothing leaves the machine there.
package redact
