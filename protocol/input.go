package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/eyalcohen4/ag-ui-tests/internal/util"
)

// RunAgentInput is the request payload of the chat endpoint: the conversation
// so far plus run correlation identifiers.
type RunAgentInput struct {
	ThreadID       string          `json:"threadId"`
	RunID          string          `json:"runId"`
	Messages       []InputMessage  `json:"messages"`
	Tools          json.RawMessage `json:"tools,omitempty"`
	State          json.RawMessage `json:"state,omitempty"`
	Context        json.RawMessage `json:"context,omitempty"`
	ForwardedProps json.RawMessage `json:"forwardedProps,omitempty"`
}

// InputMessage is one role-tagged entry of the inbound conversation history.
// Assistant messages may carry tool calls; tool messages reference the call
// they respond to via ToolCallID.
type InputMessage struct {
	ID         string          `json:"id,omitempty"`
	Role       string          `json:"role"`
	Content    string          `json:"content,omitempty"`
	Name       string          `json:"name,omitempty"`
	ToolCalls  []InputToolCall `json:"toolCalls,omitempty"`
	ToolCallID string          `json:"toolCallId,omitempty"`
}

// InputToolCall is a completed tool invocation recorded in an assistant message.
type InputToolCall struct {
	ID       string            `json:"id"`
	Type     string            `json:"type"`
	Function InputToolCallFunc `json:"function"`
}

// InputToolCallFunc names the invoked function and its serialized arguments.
type InputToolCallFunc struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// ParseRunAgentInput decodes a request body into a RunAgentInput. Clients are
// inconsistent about key casing, so a failed or incomplete decode triggers a
// best-effort snake_case to camelCase normalization of the raw payload before
// one re-validation pass.
func ParseRunAgentInput(body []byte) (RunAgentInput, error) {
	var input RunAgentInput
	err := json.Unmarshal(body, &input)
	if err == nil && input.ThreadID != "" && input.RunID != "" {
		return input, nil
	}

	var raw map[string]any
	if mapErr := json.Unmarshal(body, &raw); mapErr != nil {
		return RunAgentInput{}, fmt.Errorf("invalid run input: %w", mapErr)
	}
	normalized, marshalErr := json.Marshal(util.NormalizeKeys(raw))
	if marshalErr != nil {
		return RunAgentInput{}, fmt.Errorf("invalid run input: %w", marshalErr)
	}

	input = RunAgentInput{}
	if err := json.Unmarshal(normalized, &input); err != nil {
		return RunAgentInput{}, fmt.Errorf("invalid run input: %w", err)
	}
	if input.ThreadID == "" || input.RunID == "" {
		return RunAgentInput{}, fmt.Errorf("invalid run input: threadId and runId are required")
	}
	return input, nil
}
