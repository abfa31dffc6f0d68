// Package model defines the provider-agnostic abstraction for streaming chat
// models.
//
// Core goals:
//   - Expose the upstream stream as raw, chunk-boundary-faithful increments
//     (Chunk) so downstream parsing stays provider independent
//   - Normalize tool / function call representation (ToolCall, ToolDefinition)
//   - Keep request/response shapes minimal and transport independent
//   - Facilitate deterministic scripting for tests (ScriptedModel)
//
// Providers (OpenAI, Anthropic) implement the Model interface from this
// package so the runner remains decoupled from vendor SDKs.
package model
