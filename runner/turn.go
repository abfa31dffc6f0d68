package runner

import (
	"github.com/eyalcohen4/ag-ui-tests/internal/util"
	"github.com/eyalcohen4/ag-ui-tests/model"
	"github.com/eyalcohen4/ag-ui-tests/protocol"
	"github.com/eyalcohen4/ag-ui-tests/stream"
)

// turn tracks the state of one streamed model response: the demultiplexer and
// accumulator instances, which protocol messages are currently open, and the
// observed terminal reason.
type turn struct {
	messageID string
	demux     *stream.Demux
	acc       *stream.Accumulator

	textStarted     bool
	thinkingStarted bool
	thinkingOpen    bool

	terminal string
}

// newTurn creates a turn with a fresh message id for event correlation.
func newTurn(executor stream.Executor) *turn {
	id := util.NewID()
	return &turn{
		messageID: id,
		demux:     stream.NewDemux(),
		acc:       stream.NewAccumulator(executor, id),
	}
}

// done reports whether the turn has observed its terminal reason.
func (t *turn) done() bool { return t.terminal != "" }

// onChunk translates one model chunk into protocol events, preserving arrival
// order within the chunk: content first, then tool-call fragments, then the
// finish reason.
func (t *turn) onChunk(chunk model.Chunk) []protocol.Event {
	var events []protocol.Event

	if chunk.Content != "" {
		for _, span := range t.demux.Feed(chunk.Content) {
			events = append(events, t.spanEvents(span)...)
		}
	}

	for _, delta := range chunk.ToolCalls {
		events = append(events, t.acc.OnDelta(delta)...)
	}

	if chunk.FinishReason != "" && t.terminal == "" {
		t.terminal = chunk.FinishReason
		events = append(events, t.finishEvents()...)
	}

	return events
}

// spanEvents converts one classified span into protocol events, lazily
// opening the text message or the thinking phase on first use. The thinking
// start pair is emitted at most once per turn; the pair closes when visible
// text follows a reasoning span.
func (t *turn) spanEvents(span stream.Span) []protocol.Event {
	var events []protocol.Event

	switch span.Kind {
	case stream.SpanThinking:
		if !t.thinkingStarted {
			t.thinkingStarted = true
			t.thinkingOpen = true
			events = append(events,
				protocol.NewThinkingStart(),
				protocol.NewThinkingTextMessageStart(),
			)
		}
		events = append(events, protocol.NewThinkingTextMessageContent(span.Text))
	case stream.SpanPlain:
		if t.thinkingOpen {
			t.thinkingOpen = false
			events = append(events,
				protocol.NewThinkingTextMessageEnd(),
				protocol.NewThinkingEnd(),
			)
		}
		if !t.textStarted {
			t.textStarted = true
			events = append(events, protocol.NewTextMessageStart(t.messageID, "assistant"))
		}
		events = append(events, protocol.NewTextMessageContent(t.messageID, span.Text))
	}

	return events
}

// finishEvents closes the turn when its terminal reason fires: drain the
// demultiplexer, execute any pending tool call, then close whatever messages
// are still open so every opened span precedes the terminal event.
func (t *turn) finishEvents() []protocol.Event {
	var events []protocol.Event

	for _, span := range t.demux.Flush() {
		events = append(events, t.spanEvents(span)...)
	}

	events = append(events, t.acc.Close()...)

	if t.thinkingOpen {
		t.thinkingOpen = false
		events = append(events,
			protocol.NewThinkingTextMessageEnd(),
			protocol.NewThinkingEnd(),
		)
	}
	if t.textStarted {
		events = append(events, protocol.NewTextMessageEnd(t.messageID))
	}

	return events
}
