// Package providers implements the Reviewer interface for each supported LLM
// provider.
//
// Supported providers: Anthropic (Claude), OpenAI (GPT), and Ollama /
// LM Studio for local models. A backend takes a [Snippet] and builds the
// review prompts itself; callers never hand it raw prompt strings.
//
// All providers share a common retry helper with exponential back-off that
// repeats rate-limited and 5xx attempts. Tests redirect calls to local
// httptest servers so no live API requests are made.
//
// Use [New] to obtain a Reviewer by provider name and model string.
package providers
