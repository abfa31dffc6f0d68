package protocol

// EventType identifies the kind of an AG-UI protocol event.
type EventType string

const (
	// EventTypeRunStarted marks the beginning of a run.
	EventTypeRunStarted EventType = "RUN_STARTED"
	// EventTypeRunFinished marks the normal completion of a run.
	EventTypeRunFinished EventType = "RUN_FINISHED"
	// EventTypeRunError marks abnormal termination of a run.
	EventTypeRunError EventType = "RUN_ERROR"
	// EventTypeTextMessageStart opens an assistant text message.
	EventTypeTextMessageStart EventType = "TEXT_MESSAGE_START"
	// EventTypeTextMessageContent carries a text delta for an open message.
	EventTypeTextMessageContent EventType = "TEXT_MESSAGE_CONTENT"
	// EventTypeTextMessageEnd closes an assistant text message.
	EventTypeTextMessageEnd EventType = "TEXT_MESSAGE_END"
	// EventTypeToolCallStart announces a tool invocation.
	EventTypeToolCallStart EventType = "TOOL_CALL_START"
	// EventTypeToolCallArgs streams a fragment of tool-call arguments.
	EventTypeToolCallArgs EventType = "TOOL_CALL_ARGS"
	// EventTypeToolCallEnd closes a tool invocation, carrying its result.
	EventTypeToolCallEnd EventType = "TOOL_CALL_END"
	// EventTypeThinkingStart opens a reasoning phase.
	EventTypeThinkingStart EventType = "THINKING_START"
	// EventTypeThinkingEnd closes a reasoning phase.
	EventTypeThinkingEnd EventType = "THINKING_END"
	// EventTypeThinkingTextMessageStart opens the reasoning message inside a phase.
	EventTypeThinkingTextMessageStart EventType = "THINKING_TEXT_MESSAGE_START"
	// EventTypeThinkingTextMessageContent carries a reasoning text delta.
	EventTypeThinkingTextMessageContent EventType = "THINKING_TEXT_MESSAGE_CONTENT"
	// EventTypeThinkingTextMessageEnd closes the reasoning message.
	EventTypeThinkingTextMessageEnd EventType = "THINKING_TEXT_MESSAGE_END"
)

// Event is the closed set of AG-UI protocol events. Concrete event types
// embed BaseEvent which provides the marker implementation.
type Event interface {
	EventType() EventType
	isEvent()
}

// BaseEvent carries the discriminating type tag shared by all events.
type BaseEvent struct {
	Type EventType `json:"type"`
}

// EventType returns the discriminating type tag.
func (e BaseEvent) EventType() EventType { return e.Type }

func (BaseEvent) isEvent() {}

// RunStartedEvent signals that a run has been accepted and processing begins.
type RunStartedEvent struct {
	BaseEvent
	ThreadID string `json:"threadId"`
	RunID    string `json:"runId"`
}

// RunFinishedEvent terminates a run after normal completion of its last turn.
type RunFinishedEvent struct {
	BaseEvent
	ThreadID string `json:"threadId"`
	RunID    string `json:"runId"`
}

// RunErrorEvent terminates a run abnormally with a short message string.
type RunErrorEvent struct {
	BaseEvent
	Message string `json:"message"`
}

// TextMessageStartEvent opens the assistant message identified by MessageID.
type TextMessageStartEvent struct {
	BaseEvent
	MessageID string `json:"messageId"`
	Role      string `json:"role,omitempty"`
}

// TextMessageContentEvent carries a visible answer fragment.
type TextMessageContentEvent struct {
	BaseEvent
	MessageID string `json:"messageId"`
	Delta     string `json:"delta"`
}

// TextMessageEndEvent closes the assistant message identified by MessageID.
type TextMessageEndEvent struct {
	BaseEvent
	MessageID string `json:"messageId"`
}

// ToolCallStartEvent announces a tool invocation correlated to its parent message.
type ToolCallStartEvent struct {
	BaseEvent
	ToolCallID      string `json:"toolCallId"`
	ToolCallName    string `json:"toolCallName"`
	ParentMessageID string `json:"parentMessageId,omitempty"`
}

// ToolCallArgsEvent streams an argument fragment for an announced tool call.
type ToolCallArgsEvent struct {
	BaseEvent
	ToolCallID string `json:"toolCallId"`
	Delta      string `json:"delta"`
}

// ToolCallEndEvent closes a tool invocation; Result holds the executor output
// (or its textual error description).
type ToolCallEndEvent struct {
	BaseEvent
	ToolCallID string `json:"toolCallId"`
	Result     string `json:"result,omitempty"`
}

// ThinkingStartEvent opens the reasoning phase of a turn.
type ThinkingStartEvent struct {
	BaseEvent
}

// ThinkingEndEvent closes the reasoning phase of a turn.
type ThinkingEndEvent struct {
	BaseEvent
}

// ThinkingTextMessageStartEvent opens the reasoning message inside a phase.
type ThinkingTextMessageStartEvent struct {
	BaseEvent
}

// ThinkingTextMessageContentEvent carries a reasoning text fragment.
type ThinkingTextMessageContentEvent struct {
	BaseEvent
	Delta string `json:"delta"`
}

// ThinkingTextMessageEndEvent closes the reasoning message.
type ThinkingTextMessageEndEvent struct {
	BaseEvent
}

// NewRunStarted constructs a RUN_STARTED event.
func NewRunStarted(threadID, runID string) RunStartedEvent {
	return RunStartedEvent{BaseEvent: BaseEvent{Type: EventTypeRunStarted}, ThreadID: threadID, RunID: runID}
}

// NewRunFinished constructs a RUN_FINISHED event.
func NewRunFinished(threadID, runID string) RunFinishedEvent {
	return RunFinishedEvent{BaseEvent: BaseEvent{Type: EventTypeRunFinished}, ThreadID: threadID, RunID: runID}
}

// NewRunError constructs a RUN_ERROR event.
func NewRunError(message string) RunErrorEvent {
	return RunErrorEvent{BaseEvent: BaseEvent{Type: EventTypeRunError}, Message: message}
}

// NewTextMessageStart constructs a TEXT_MESSAGE_START event.
func NewTextMessageStart(messageID, role string) TextMessageStartEvent {
	return TextMessageStartEvent{BaseEvent: BaseEvent{Type: EventTypeTextMessageStart}, MessageID: messageID, Role: role}
}

// NewTextMessageContent constructs a TEXT_MESSAGE_CONTENT event.
func NewTextMessageContent(messageID, delta string) TextMessageContentEvent {
	return TextMessageContentEvent{BaseEvent: BaseEvent{Type: EventTypeTextMessageContent}, MessageID: messageID, Delta: delta}
}

// NewTextMessageEnd constructs a TEXT_MESSAGE_END event.
func NewTextMessageEnd(messageID string) TextMessageEndEvent {
	return TextMessageEndEvent{BaseEvent: BaseEvent{Type: EventTypeTextMessageEnd}, MessageID: messageID}
}

// NewToolCallStart constructs a TOOL_CALL_START event.
func NewToolCallStart(toolCallID, name, parentMessageID string) ToolCallStartEvent {
	return ToolCallStartEvent{
		BaseEvent:       BaseEvent{Type: EventTypeToolCallStart},
		ToolCallID:      toolCallID,
		ToolCallName:    name,
		ParentMessageID: parentMessageID,
	}
}

// NewToolCallArgs constructs a TOOL_CALL_ARGS event.
func NewToolCallArgs(toolCallID, delta string) ToolCallArgsEvent {
	return ToolCallArgsEvent{BaseEvent: BaseEvent{Type: EventTypeToolCallArgs}, ToolCallID: toolCallID, Delta: delta}
}

// NewToolCallEnd constructs a TOOL_CALL_END event.
func NewToolCallEnd(toolCallID, result string) ToolCallEndEvent {
	return ToolCallEndEvent{BaseEvent: BaseEvent{Type: EventTypeToolCallEnd}, ToolCallID: toolCallID, Result: result}
}

// NewThinkingStart constructs a THINKING_START event.
func NewThinkingStart() ThinkingStartEvent {
	return ThinkingStartEvent{BaseEvent: BaseEvent{Type: EventTypeThinkingStart}}
}

// NewThinkingEnd constructs a THINKING_END event.
func NewThinkingEnd() ThinkingEndEvent {
	return ThinkingEndEvent{BaseEvent: BaseEvent{Type: EventTypeThinkingEnd}}
}

// NewThinkingTextMessageStart constructs a THINKING_TEXT_MESSAGE_START event.
func NewThinkingTextMessageStart() ThinkingTextMessageStartEvent {
	return ThinkingTextMessageStartEvent{BaseEvent: BaseEvent{Type: EventTypeThinkingTextMessageStart}}
}

// NewThinkingTextMessageContent constructs a THINKING_TEXT_MESSAGE_CONTENT event.
func NewThinkingTextMessageContent(delta string) ThinkingTextMessageContentEvent {
	return ThinkingTextMessageContentEvent{BaseEvent: BaseEvent{Type: EventTypeThinkingTextMessageContent}, Delta: delta}
}

// NewThinkingTextMessageEnd constructs a THINKING_TEXT_MESSAGE_END event.
func NewThinkingTextMessageEnd() ThinkingTextMessageEndEvent {
	return ThinkingTextMessageEndEvent{BaseEvent: BaseEvent{Type: EventTypeThinkingTextMessageEnd}}
}
