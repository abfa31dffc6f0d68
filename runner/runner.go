package runner

import (
	"context"
	"fmt"

	"github.com/eyalcohen4/ag-ui-tests/logging"
	"github.com/eyalcohen4/ag-ui-tests/model"
	"github.com/eyalcohen4/ag-ui-tests/protocol"
	"github.com/eyalcohen4/ag-ui-tests/stream"
	"github.com/eyalcohen4/ag-ui-tests/tool"
)

// DefaultSystemPrompt instructs the model to wrap its reasoning in thinking
// tags and describes the available tools.
const DefaultSystemPrompt = `You are a helpful AI assistant. When answering complex questions or performing calculations:

1. First, wrap your thinking/reasoning process in <thinking>...</thinking> tags
2. Then provide your final answer outside the tags

For simple questions, you can skip the thinking tags.

You have access to tools:
- calculate: for mathematical expressions
- get_weather: for weather information

Example for complex questions:
<thinking>
Let me break this down step by step...
First, I need to...
Then I'll calculate...
</thinking>

The answer is...`

// Options holds configuration overrides passed to New().
type Options struct {
	// SystemPrompt is prepended to every run's conversation.
	SystemPrompt string
	// Logger receives run lifecycle diagnostics.
	Logger logging.Logger
}

// EmitFunc delivers one protocol event to the transport. Implementations
// encode and flush immediately; a returned error (encoding failure, broken
// connection) is fatal to the run.
type EmitFunc func(ev protocol.Event) error

// Runner drives runs against a model and a tool catalog. Public methods are
// safe for concurrent use; runs share only read-only configuration.
type Runner struct {
	model        model.Model
	tools        *tool.Registry
	systemPrompt string
	logger       logging.Logger
}

// New constructs a Runner with optional overrides.
func New(m model.Model, tools *tool.Registry, optFns ...func(o *Options)) *Runner {
	opts := Options{
		SystemPrompt: DefaultSystemPrompt,
		Logger:       logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Runner{
		model:        m,
		tools:        tools,
		systemPrompt: opts.SystemPrompt,
		logger:       opts.Logger,
	}
}

// Run processes one run to completion. It emits RUN_STARTED, the turn events,
// and terminates the stream with exactly one of RUN_FINISHED or RUN_ERROR,
// even when the model stream fails mid-turn.
func (r *Runner) Run(ctx context.Context, input protocol.RunAgentInput, emit EmitFunc) {
	r.logger.Info("run.start", "thread_id", input.ThreadID, "run_id", input.RunID)

	if err := emit(protocol.NewRunStarted(input.ThreadID, input.RunID)); err != nil {
		r.logger.Error("run.emit_failed", "run_id", input.RunID, "error", err)
		return
	}

	if err := r.processRun(ctx, input, emit); err != nil {
		r.logger.Error("run.error", "run_id", input.RunID, "error", err)
		if emitErr := emit(protocol.NewRunError(err.Error())); emitErr != nil {
			r.logger.Error("run.emit_failed", "run_id", input.RunID, "error", emitErr)
		}
		return
	}

	if err := emit(protocol.NewRunFinished(input.ThreadID, input.RunID)); err != nil {
		r.logger.Error("run.emit_failed", "run_id", input.RunID, "error", err)
		return
	}
	r.logger.Info("run.finished", "run_id", input.RunID)
}

// processRun executes the first turn and, when it terminates in tool calls,
// exactly one continuation turn with the tool results appended and tools not
// re-offered.
func (r *Runner) processRun(ctx context.Context, input protocol.RunAgentInput, emit EmitFunc) error {
	messages := r.buildConversation(input)

	terminal, calls, err := r.processTurn(ctx, messages, r.tools.Definitions(), emit)
	if err != nil {
		return err
	}

	if terminal != model.FinishReasonToolCalls || len(calls) == 0 {
		return nil
	}

	r.logger.Info("run.continuation", "run_id", input.RunID, "tool_calls", len(calls))
	messages = appendToolResults(messages, calls)
	_, _, err = r.processTurn(ctx, messages, nil, emit)
	return err
}

// processTurn consumes one model stream as a turn, emitting events in the
// order produced. It returns the turn's terminal reason and executed calls.
func (r *Runner) processTurn(
	ctx context.Context,
	messages []model.Message,
	tools []model.ToolDefinition,
	emit EmitFunc,
) (string, []stream.ExecutedCall, error) {
	chunks, errCh := r.model.Stream(ctx, model.Request{Messages: messages, Tools: tools})

	t := newTurn(r.tools)
	r.logger.Debug("turn.start", "message_id", t.messageID, "tools_offered", len(tools))

	for chunk := range chunks {
		if t.done() {
			continue // chunks after the terminal reason carry nothing actionable
		}
		for _, ev := range t.onChunk(chunk) {
			if err := emit(ev); err != nil {
				return "", nil, err
			}
		}
	}
	if err := <-errCh; err != nil {
		return "", nil, fmt.Errorf("model stream: %w", err)
	}

	// Streams that end without a finish reason count as ordinary completion.
	if !t.done() {
		for _, ev := range t.onChunk(model.Chunk{FinishReason: model.FinishReasonStop}) {
			if err := emit(ev); err != nil {
				return "", nil, err
			}
		}
	}

	r.logger.Debug("turn.end", "message_id", t.messageID, "finish_reason", t.terminal)
	return t.terminal, t.acc.Calls(), nil
}

// buildConversation assembles the message buffer for the first model call:
// the system prompt followed by the inbound history, carrying assistant
// tool-call turns and tool results through.
func (r *Runner) buildConversation(input protocol.RunAgentInput) []model.Message {
	messages := make([]model.Message, 0, len(input.Messages)+1)
	messages = append(messages, model.Message{Role: "system", Content: r.systemPrompt})

	for _, m := range input.Messages {
		msg := model.Message{
			Role:       m.Role,
			Content:    m.Content,
			ToolCallID: m.ToolCallID,
		}
		for _, tc := range m.ToolCalls {
			msg.ToolCalls = append(msg.ToolCalls, model.ToolCall{
				ID:   tc.ID,
				Type: "function",
				Function: model.ToolCallFunction{
					Name:      tc.Function.Name,
					Arguments: tc.Function.Arguments,
				},
			})
		}
		messages = append(messages, msg)
	}
	return messages
}

// appendToolResults extends the message buffer with the assistant's tool-call
// turn and one tool-result message per executed call, the shape the model
// expects before a continuation.
func appendToolResults(messages []model.Message, calls []stream.ExecutedCall) []model.Message {
	assistant := model.Message{Role: "assistant"}
	for _, c := range calls {
		assistant.ToolCalls = append(assistant.ToolCalls, model.ToolCall{
			ID:   c.ID,
			Type: "function",
			Function: model.ToolCallFunction{
				Name:      c.Name,
				Arguments: c.Arguments,
			},
		})
	}
	messages = append(messages, assistant)

	for _, c := range calls {
		messages = append(messages, model.Message{
			Role:       "tool",
			Content:    c.Result,
			ToolCallID: c.ID,
		})
	}
	return messages
}
