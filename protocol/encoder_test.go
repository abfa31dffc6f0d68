package protocol

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoder_DefaultsToSSE(t *testing.T) {
	enc := NewEncoder("")
	assert.Equal(t, "text/event-stream", enc.ContentType())

	enc = NewEncoder("text/event-stream")
	assert.Equal(t, "text/event-stream", enc.ContentType())

	// SSE wins when the client accepts both.
	enc = NewEncoder("text/event-stream, application/json")
	assert.Equal(t, "text/event-stream", enc.ContentType())
}

func TestEncoder_NegotiatesJSON(t *testing.T) {
	enc := NewEncoder("application/json")
	assert.Equal(t, "application/json", enc.ContentType())
}

func TestEncoder_SSEFraming(t *testing.T) {
	enc := NewEncoder("text/event-stream")
	frame, err := enc.Encode(NewRunStarted("thread-1", "run-1"))
	require.NoError(t, err)

	s := string(frame)
	assert.True(t, strings.HasPrefix(s, "data: "), "frame: %q", s)
	assert.True(t, strings.HasSuffix(s, "\n\n"), "frame: %q", s)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(strings.TrimSpace(s), "data: ")), &payload))
	assert.Equal(t, "RUN_STARTED", payload["type"])
	assert.Equal(t, "thread-1", payload["threadId"])
	assert.Equal(t, "run-1", payload["runId"])
}

func TestEncoder_JSONFraming(t *testing.T) {
	enc := NewEncoder("application/json")
	frame, err := enc.Encode(NewTextMessageContent("msg-1", "hello"))
	require.NoError(t, err)

	s := string(frame)
	assert.True(t, strings.HasSuffix(s, "\n"))
	assert.False(t, strings.HasPrefix(s, "data: "))

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &payload))
	assert.Equal(t, "TEXT_MESSAGE_CONTENT", payload["type"])
	assert.Equal(t, "msg-1", payload["messageId"])
	assert.Equal(t, "hello", payload["delta"])
}

func TestEventJSONShapes(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  map[string]any
	}{
		{
			name:  "run error",
			event: NewRunError("upstream failed"),
			want:  map[string]any{"type": "RUN_ERROR", "message": "upstream failed"},
		},
		{
			name:  "tool call start",
			event: NewToolCallStart("call-1", "calculate", "msg-1"),
			want: map[string]any{
				"type":            "TOOL_CALL_START",
				"toolCallId":      "call-1",
				"toolCallName":    "calculate",
				"parentMessageId": "msg-1",
			},
		},
		{
			name:  "tool call end",
			event: NewToolCallEnd("call-1", "4"),
			want:  map[string]any{"type": "TOOL_CALL_END", "toolCallId": "call-1", "result": "4"},
		},
		{
			name:  "thinking start",
			event: NewThinkingStart(),
			want:  map[string]any{"type": "THINKING_START"},
		},
		{
			name:  "thinking content",
			event: NewThinkingTextMessageContent("step1"),
			want:  map[string]any{"type": "THINKING_TEXT_MESSAGE_CONTENT", "delta": "step1"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data, err := json.Marshal(tc.event)
			require.NoError(t, err)
			var got map[string]any
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, tc.want, got)
		})
	}
}
