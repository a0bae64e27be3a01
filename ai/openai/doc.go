// Package openai implements the ai interfaces against OpenAI-compatible
// APIs (OpenAI, Ollama, LocalAI, vLLM).
//
// All chat-based services request JSON mode, validate responses against a
// JSON schema, and retry up to three times on malformed output before
// surfacing an error. Embedding calls retry with exponential backoff per
// the provider config.
package openai
