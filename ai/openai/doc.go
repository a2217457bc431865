// Package openai implements the ai interfaces using OpenAI-compatible APIs.
//
// The implementation works with any OpenAI-compatible embedding endpoint,
// including local services such as Ollama, LocalAI, and vLLM. The embedding
// client is built on langchaingo's openai integration.
package openai
