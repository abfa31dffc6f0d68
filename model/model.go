package model

import (
	"context"
	"sync"
)

// Finish reasons surfaced by providers. Anything other than stop/tool_calls
// is treated by callers as ordinary completion.
const (
	FinishReasonStop      = "stop"
	FinishReasonToolCalls = "tool_calls"
)

// Message is one role-tagged entry of the conversation passed to a model.
// Assistant messages may carry structured tool calls; tool messages reference
// the call they answer via ToolCallID.
type Message struct {
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
}

// ToolCall represents a complete function call request surfaced by a model.
// Unified across vendors so downstream logic does not need per-provider branching.
type ToolCall struct {
	ID       string           `json:"id"`
	Type     string           `json:"type"` // "function"
	Function ToolCallFunction `json:"function"`
}

// ToolCallFunction describes the concrete function target of a tool call.
type ToolCallFunction struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"` // JSON string of arguments
}

// ToolDefinition declaratively exposes a callable function to the model.
type ToolDefinition struct {
	Type     string             `json:"type"` // "function"
	Function FunctionDefinition `json:"function"`
}

// FunctionDefinition describes an individual function (tool) exposed to the model.
// Parameters is a JSON Schema object (draft agnostic, minimal subset expected).
type FunctionDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"` // JSON Schema
}

// Request captures one model invocation: the conversation so far plus the
// tools offered for this call. An empty Tools slice disables tool calling.
type Request struct {
	Messages []Message        `json:"messages"`
	Tools    []ToolDefinition `json:"tools,omitempty"`
}

// Chunk is one streamed increment of a model response. Content and ToolCalls
// are raw per-delta fragments, never aggregates; FinishReason is non-empty
// only on the terminal chunk of a turn.
type Chunk struct {
	Content      string          `json:"content,omitempty"`
	ToolCalls    []ToolCallDelta `json:"tool_calls,omitempty"`
	FinishReason string          `json:"finish_reason,omitempty"`
}

// ToolCallDelta is a partial tool-call fragment. ID and Name are set when the
// provider announces a call; Arguments carries an argument-string fragment.
type ToolCallDelta struct {
	Index     int64  `json:"index"`
	ID        string `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	Arguments string `json:"arguments,omitempty"`
}

// Info contains metadata about a model implementation.
type Info struct {
	Name          string `json:"name"`
	Provider      string `json:"provider"` // "openai", "anthropic", etc.
	SupportsTools bool   `json:"supports_tools"`
}

// Model is the minimal interface the runner needs to drive generation. Stream
// issues one model call and returns a channel of raw chunks plus an error
// channel; both are closed when the upstream stream ends.
type Model interface {
	Stream(ctx context.Context, req Request) (<-chan Chunk, <-chan error)

	// Info returns information about the model implementation.
	Info() Info
}

// scriptedTurn is one canned model call outcome: chunks to replay, then an
// optional terminal error.
type scriptedTurn struct {
	chunks []Chunk
	err    error
}

// ScriptedModel is a lightweight in-memory Model useful for tests. Successive
// Stream calls replay successive scripted turns; every received Request is
// recorded for inspection.
type ScriptedModel struct {
	mu    sync.Mutex
	info  Info
	turns []scriptedTurn
	calls []Request
}

// NewScriptedModel constructs a ScriptedModel with tool support enabled.
func NewScriptedModel() *ScriptedModel {
	return &ScriptedModel{
		info: Info{Name: "scripted", Provider: "test", SupportsTools: true},
	}
}

// AddTurn registers the chunk sequence replayed by the next unscripted Stream call.
func (m *ScriptedModel) AddTurn(chunks ...Chunk) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.turns = append(m.turns, scriptedTurn{chunks: chunks})
}

// AddFailingTurn registers a turn that replays chunks and then fails with err,
// simulating an upstream stream breaking mid-turn.
func (m *ScriptedModel) AddFailingTurn(err error, chunks ...Chunk) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.turns = append(m.turns, scriptedTurn{chunks: chunks, err: err})
}

// Requests returns the requests received so far, in call order.
func (m *ScriptedModel) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Request(nil), m.calls...)
}

// Stream implements Model by replaying the next scripted turn.
func (m *ScriptedModel) Stream(ctx context.Context, req Request) (<-chan Chunk, <-chan error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	var turn scriptedTurn
	if len(m.turns) > 0 {
		turn = m.turns[0]
		m.turns = m.turns[1:]
	} else {
		turn = scriptedTurn{chunks: []Chunk{{FinishReason: FinishReasonStop}}}
	}
	m.mu.Unlock()

	out := make(chan Chunk, len(turn.chunks))
	errCh := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errCh)
		for _, ck := range turn.chunks {
			select {
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			case out <- ck:
			}
		}
		if turn.err != nil {
			errCh <- turn.err
		}
	}()
	return out, errCh
}

// Info implements the Model interface.
func (m *ScriptedModel) Info() Info { return m.info }
